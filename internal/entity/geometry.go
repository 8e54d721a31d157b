package entity

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/vmath"
)

// Triangle is three vertices in chunk-local space.
type Triangle [3]rl.Vector3

// Chunk is one piece of an entity mesh. Each chunk gets its own hit-box.
type Chunk struct {
	Name      string
	Location  rl.Vector3 // offset of the chunk origin in entity space
	Rotation  rl.Vector3 // chunk sub-rotation in degrees, may be animated
	Triangles []Triangle
}

// Geometry is the collision-relevant part of a model: its chunks.
type Geometry struct {
	Chunks []Chunk
}

// Empty reports whether the geometry has no triangles at all.
func (g Geometry) Empty() bool {
	for _, c := range g.Chunks {
		if len(c.Triangles) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, so animated chunk rotations don't leak between
// entities sharing a catalog geometry.
func (g Geometry) Clone() Geometry {
	out := Geometry{Chunks: make([]Chunk, len(g.Chunks))}
	for i, c := range g.Chunks {
		c.Triangles = append([]Triangle(nil), c.Triangles...)
		out.Chunks[i] = c
	}
	return out
}

// BoxPart describes an axis-aligned box chunk for procedural geometry.
type BoxPart struct {
	Name     string
	Location rl.Vector3
	Size     rl.Vector3
	Rotation rl.Vector3
}

// BoxGeometry builds one box chunk per part.
func BoxGeometry(parts ...BoxPart) Geometry {
	g := Geometry{Chunks: make([]Chunk, 0, len(parts))}
	for _, p := range parts {
		half := rl.Vector3Scale(p.Size, 0.5)
		g.Chunks = append(g.Chunks, Chunk{
			Name:      p.Name,
			Location:  p.Location,
			Rotation:  p.Rotation,
			Triangles: boxTriangles(rl.Vector3Negate(half), half),
		})
	}
	return g
}

// boxFaces indexes vmath.BoxCorners: +Z, -Z, +X, -X, +Y, -Y.
var boxFaces = [6][4]int{
	{0, 1, 2, 3},
	{4, 7, 6, 5},
	{0, 3, 7, 4},
	{1, 5, 6, 2},
	{0, 4, 5, 1},
	{3, 2, 6, 7},
}

func boxTriangles(lo, hi rl.Vector3) []Triangle {
	c := vmath.BoxCorners(lo, hi)
	tris := make([]Triangle, 0, 12)
	for _, f := range boxFaces {
		tris = append(tris,
			Triangle{c[f[0]], c[f[1]], c[f[2]]},
			Triangle{c[f[0]], c[f[2]], c[f[3]]},
		)
	}
	return tris
}

// OctaGeometry builds a single-chunk octahedron, the stand-in mesh for rocks.
func OctaGeometry(name string, radius float32) Geometry {
	px := rl.Vector3{X: radius}
	nx := rl.Vector3{X: -radius}
	py := rl.Vector3{Y: radius}
	ny := rl.Vector3{Y: -radius}
	pz := rl.Vector3{Z: radius}
	nz := rl.Vector3{Z: -radius}

	return Geometry{Chunks: []Chunk{{
		Name: name,
		Triangles: []Triangle{
			{px, py, pz}, {py, nx, pz}, {nx, ny, pz}, {ny, px, pz},
			{py, px, nz}, {nx, py, nz}, {ny, nx, nz}, {px, ny, nz},
		},
	}}}
}
