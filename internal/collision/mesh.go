package collision

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/entity"
	"astrocore/internal/vmath"
)

// HitBBMesh tests the hit-boxes of a against every triangle of b, for b
// without hit-boxes of its own. Triangles go through b's chunk transforms,
// sub-rotations included, into the frame of each hit-box of a. A triangle
// hits when a vertex is inside the box, or when its bounds overlap the box
// and no separating axis exists.
func HitBBMesh(a, b *entity.Object3D) (int, bool) {
	for i := range a.HitBB {
		if !a.HasHitBB(i) {
			continue
		}
		if !radiiTouch(a.HitBBCenter(i), a.HitBB[i].Radius2, b.Location, b.Radius*b.Radius) {
			continue
		}

		box := HitBBOf(a, i)
		for c := range b.Chunks {
			rot, origin := b.ChunkTransform(c)
			for _, t := range b.Chunks[c].Triangles {
				var local entity.Triangle
				for k, v := range t {
					local[k] = box.ToLocal(rl.Vector3Add(origin, rot.Apply(v)))
				}
				if triangleHitsBox(local, box.HalfSize) {
					return i, true
				}
			}
		}
	}
	return -1, false
}

// triangleHitsBox tests a triangle given in box space against the box
// [-e, e].
func triangleHitsBox(t entity.Triangle, e rl.Vector3) bool {
	for _, v := range t {
		if vmath.Abs(v.X) <= e.X && vmath.Abs(v.Y) <= e.Y && vmath.Abs(v.Z) <= e.Z {
			return true
		}
	}

	lo, hi := vmath.MinMax(t[:])
	if lo.X > e.X || hi.X < -e.X || lo.Y > e.Y || hi.Y < -e.Y || lo.Z > e.Z || hi.Z < -e.Z {
		return false
	}
	return triangleBoxSAT(t, e)
}

var boxAxes = [3]rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}}

// triangleBoxSAT checks the triangle normal and the 9 edge cross axes. The
// box face axes are covered by the bounds test in triangleHitsBox.
func triangleBoxSAT(t entity.Triangle, e rl.Vector3) bool {
	edges := [3]rl.Vector3{
		rl.Vector3Subtract(t[1], t[0]),
		rl.Vector3Subtract(t[2], t[1]),
		rl.Vector3Subtract(t[0], t[2]),
	}

	if separatedOn(rl.Vector3CrossProduct(edges[0], edges[1]), t, e) {
		return false
	}
	for _, u := range boxAxes {
		for _, f := range edges {
			if separatedOn(rl.Vector3CrossProduct(u, f), t, e) {
				return false
			}
		}
	}
	return true
}

func separatedOn(axis rl.Vector3, t entity.Triangle, e rl.Vector3) bool {
	if rl.Vector3DotProduct(axis, axis) < satEpsilon*satEpsilon {
		return false
	}
	p0 := rl.Vector3DotProduct(t[0], axis)
	p1 := rl.Vector3DotProduct(t[1], axis)
	p2 := rl.Vector3DotProduct(t[2], axis)
	r := e.X*vmath.Abs(axis.X) + e.Y*vmath.Abs(axis.Y) + e.Z*vmath.Abs(axis.Z)
	return min(p0, p1, p2) > r || max(p0, p1, p2) < -r
}
