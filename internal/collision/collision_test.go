package collision

import (
	"math"
	"math/rand"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrocore/internal/entity"
	"astrocore/internal/vmath"
)

func box(loc, half rl.Vector3, parts ...entity.BoxPart) *entity.Object3D {
	o := entity.NewObject3D(entity.KindShip, entity.StatusNone, 0)
	if len(parts) == 0 {
		parts = []entity.BoxPart{{Size: rl.Vector3Scale(half, 2)}}
	}
	o.SetGeometry(entity.BoxGeometry(parts...))
	o.SetLocation(loc)
	return &o
}

func mesh(loc rl.Vector3, chunks ...entity.Chunk) *entity.Object3D {
	o := entity.NewObject3D(entity.KindGroundObject, entity.StatusNone, 0)
	o.SetGeometry(entity.Geometry{Chunks: chunks})
	o.SetLocation(loc)
	return &o
}

var unit = rl.Vector3{X: 1, Y: 1, Z: 1}

func TestHitBBHitBBOverlapAndGap(t *testing.T) {
	a := box(rl.Vector3{}, unit)

	b := box(rl.Vector3{X: 1.5}, unit)
	i, j, ok := HitBBHitBB(a, b)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, j)

	b = box(rl.Vector3{X: 2.5}, unit)
	_, _, ok = HitBBHitBB(a, b)
	assert.False(t, ok)
}

func TestOBBTouchingFacesIntersect(t *testing.T) {
	a := NewOBB(rl.Vector3{}, unit, vmath.Identity33())
	b := NewOBB(rl.Vector3{X: 2}, unit, vmath.Identity33())
	assert.True(t, a.Intersects(b))
}

func TestOBBRotatedReach(t *testing.T) {
	a := NewOBB(rl.Vector3{}, unit, vmath.Identity33())
	rot := vmath.RotationMat33(rl.Vector3{Y: 45})

	// The rotated box reaches sqrt(2) along X.
	assert.True(t, a.Intersects(NewOBB(rl.Vector3{X: 2.3}, unit, rot)))
	assert.False(t, a.Intersects(NewOBB(rl.Vector3{X: 2.5}, unit, rot)))
}

func TestOBBCrossingSticks(t *testing.T) {
	// Two sticks crossing over each other at right angles.
	a := NewOBB(rl.Vector3{}, rl.Vector3{X: 5, Y: 0.1, Z: 0.1}, vmath.Identity33())
	b := NewOBB(rl.Vector3{Y: 0.3}, rl.Vector3{X: 5, Y: 0.1, Z: 0.1}, vmath.RotationMat33(rl.Vector3{Y: 90}))
	assert.False(t, a.Intersects(b))

	b.Center.Y = 0.15
	assert.True(t, a.Intersects(b))
}

func randomOBB(r *rand.Rand) OBB {
	f := func(lo, hi float64) float32 { return float32(lo + r.Float64()*(hi-lo)) }
	return NewOBB(
		rl.Vector3{X: f(-3, 3), Y: f(-3, 3), Z: f(-3, 3)},
		rl.Vector3{X: f(0.1, 2), Y: f(0.1, 2), Z: f(0.1, 2)},
		vmath.RotationMat33(rl.Vector3{X: f(-180, 180), Y: f(-180, 180), Z: f(-180, 180)}),
	)
}

// referenceIntersects is the textbook projection test over 15 normalized axes.
func referenceIntersects(a, b OBB) bool {
	project := func(o OBB, axis rl.Vector3) float32 {
		return o.HalfSize.X*vmath.Abs(rl.Vector3DotProduct(o.Axes[0], axis)) +
			o.HalfSize.Y*vmath.Abs(rl.Vector3DotProduct(o.Axes[1], axis)) +
			o.HalfSize.Z*vmath.Abs(rl.Vector3DotProduct(o.Axes[2], axis))
	}
	d := rl.Vector3Subtract(b.Center, a.Center)
	axes := append([]rl.Vector3{}, a.Axes[:]...)
	axes = append(axes, b.Axes[:]...)
	for i := range 3 {
		for j := range 3 {
			c := rl.Vector3CrossProduct(a.Axes[i], b.Axes[j])
			if rl.Vector3Length(c) > 1e-4 {
				axes = append(axes, rl.Vector3Normalize(c))
			}
		}
	}
	for _, axis := range axes {
		if vmath.Abs(rl.Vector3DotProduct(d, axis)) > project(a, axis)+project(b, axis) {
			return false
		}
	}
	return true
}

func TestOBBRandomizedSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	hits := 0
	for n := range 2000 {
		a, b := randomOBB(r), randomOBB(r)
		ab := a.Intersects(b)
		require.Equal(t, ab, b.Intersects(a), "pair %d", n)
		require.Equal(t, referenceIntersects(a, b), ab, "pair %d", n)
		if ab {
			hits++
		}
	}
	// Both outcomes must actually be exercised.
	assert.Greater(t, hits, 100)
	assert.Less(t, hits, 1900)
}

func TestHitBBHitBBRandomizedSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	f := func(lo, hi float64) float32 { return float32(lo + r.Float64()*(hi-lo)) }
	for n := range 300 {
		a := box(rl.Vector3{X: f(-4, 4), Y: f(-4, 4), Z: f(-4, 4)}, rl.Vector3{},
			entity.BoxPart{Size: rl.Vector3{X: f(0.5, 3), Y: f(0.5, 3), Z: f(0.5, 3)}},
			entity.BoxPart{Location: rl.Vector3{X: 2}, Size: rl.Vector3{X: f(0.5, 2), Y: f(0.5, 2), Z: f(0.5, 2)}},
		)
		b := box(rl.Vector3{X: f(-4, 4), Y: f(-4, 4), Z: f(-4, 4)}, rl.Vector3{X: f(0.3, 2), Y: f(0.3, 2), Z: f(0.3, 2)})
		a.SetRotation(rl.Vector3{X: f(-180, 180), Y: f(-180, 180)})
		b.SetRotation(rl.Vector3{Y: f(-180, 180), Z: f(-180, 180)})

		_, _, ab := HitBBHitBB(a, b)
		_, _, ba := HitBBHitBB(b, a)
		require.Equal(t, ab, ba, "pair %d", n)
	}
}

func TestHitBBHitBBFirstPieceWins(t *testing.T) {
	a := box(rl.Vector3{}, rl.Vector3{},
		entity.BoxPart{Name: "left", Location: rl.Vector3{X: -1}, Size: rl.Vector3{X: 2, Y: 2, Z: 2}},
		entity.BoxPart{Name: "right", Location: rl.Vector3{X: 1}, Size: rl.Vector3{X: 2, Y: 2, Z: 2}},
	)
	b := box(rl.Vector3{}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	i, _, ok := HitBBHitBB(a, b)
	require.True(t, ok)
	assert.Equal(t, 0, i)

	b.SetLocation(rl.Vector3{X: 2.4})
	i, _, ok = HitBBHitBB(a, b)
	require.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestHitBBOBB(t *testing.T) {
	rock := entity.NewObject3D(entity.KindSpaceObject, entity.StatusNone, 0)
	rock.SetGeometry(entity.OctaGeometry("rock", 2))

	a := box(rl.Vector3{X: 2.5}, unit)
	i, ok := HitBBOBB(a, &rock)
	require.True(t, ok)
	assert.Equal(t, 0, i)

	a.SetLocation(rl.Vector3{X: 3.5})
	_, ok = HitBBOBB(a, &rock)
	assert.False(t, ok)
}

func TestMeshSphereStatic(t *testing.T) {
	target := box(rl.Vector3{}, unit)

	c := rl.Vector3{X: 1.2}
	piece, contact, ok := MeshSphere(target, c, c, 0.5)
	require.True(t, ok)
	assert.Equal(t, 0, piece)
	assert.InDelta(t, 1, contact.X, 1e-5)

	c = rl.Vector3{X: 2}
	_, _, ok = MeshSphere(target, c, c, 0.5)
	assert.False(t, ok)
}

func TestMeshSphereCatchesTunnelling(t *testing.T) {
	target := box(rl.Vector3{}, unit)

	// A fast bullet that jumped over the whole box in one frame.
	_, contact, ok := MeshSphere(target, rl.Vector3{X: 5, Y: 0.3, Z: 0.2}, rl.Vector3{X: -5, Y: 0.3, Z: 0.2}, 0.1)
	require.True(t, ok)
	assert.InDelta(t, 1, math.Abs(float64(contact.X)), 1e-5)

	_, _, ok = MeshSphere(target, rl.Vector3{X: 5, Y: 3}, rl.Vector3{X: -5, Y: 3}, 0.1)
	assert.False(t, ok)
}

func TestMeshSphereFollowsRotation(t *testing.T) {
	target := box(rl.Vector3{}, rl.Vector3{}, entity.BoxPart{Location: rl.Vector3{Z: 5}, Size: unit})
	c := rl.Vector3{X: 5}
	_, _, ok := MeshSphere(target, c, c, 0.6)
	assert.False(t, ok)

	target.SetRotation(rl.Vector3{Y: 90})
	_, _, ok = MeshSphere(target, c, c, 0.6)
	assert.True(t, ok)
}

func TestSegmentHitsBoxPreTest(t *testing.T) {
	b := NewOBB(rl.Vector3{}, unit, vmath.Identity33())
	assert.True(t, segmentHitsBox(b, rl.Vector3{X: -5}, rl.Vector3{X: 5}, 0))
	assert.True(t, segmentHitsBox(b, rl.Vector3{X: -5, Y: 1.4}, rl.Vector3{X: 5, Y: 1.4}, 0.5))
	assert.False(t, segmentHitsBox(b, rl.Vector3{X: -5, Y: 1.6}, rl.Vector3{X: 5, Y: 1.6}, 0.5))
	// Diagonal segment passing the corner, rejected only by a cross axis.
	assert.False(t, segmentHitsBox(b, rl.Vector3{X: 3, Y: 0, Z: 0}, rl.Vector3{X: 0, Y: 3, Z: 0}, 0))
}

func TestClosestPointTriangleRegions(t *testing.T) {
	tri := entity.Triangle{{}, {X: 2}, {Y: 2}}
	cases := []struct {
		p, want rl.Vector3
	}{
		{rl.Vector3{X: -1, Y: -1}, rl.Vector3{}},
		{rl.Vector3{X: 3, Y: -1}, rl.Vector3{X: 2}},
		{rl.Vector3{X: 1, Y: -1}, rl.Vector3{X: 1}},
		{rl.Vector3{X: 2, Y: 2}, rl.Vector3{X: 1, Y: 1}},
		{rl.Vector3{X: 0.5, Y: 0.5, Z: 3}, rl.Vector3{X: 0.5, Y: 0.5}},
	}
	for _, c := range cases {
		got := closestPointTriangle(c.p, tri)
		assert.InDelta(t, c.want.X, got.X, 1e-5, "%v", c.p)
		assert.InDelta(t, c.want.Y, got.Y, 1e-5, "%v", c.p)
		assert.InDelta(t, c.want.Z, got.Z, 1e-5, "%v", c.p)
	}
}

func groundPlane(y float32) entity.Chunk {
	return entity.Chunk{Triangles: []entity.Triangle{
		{{X: -10, Y: y, Z: -10}, {X: 10, Y: y, Z: -10}, {X: 10, Y: y, Z: 10}},
		{{X: -10, Y: y, Z: -10}, {X: 10, Y: y, Z: 10}, {X: -10, Y: y, Z: 10}},
	}}
}

func TestHitBBMeshLargeTriangle(t *testing.T) {
	a := box(rl.Vector3{}, unit)

	// No vertex is inside the box but the plane cuts through it.
	i, ok := HitBBMesh(a, mesh(rl.Vector3{}, groundPlane(-0.5)))
	require.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = HitBBMesh(a, mesh(rl.Vector3{}, groundPlane(-1.5)))
	assert.False(t, ok)
}

func TestHitBBMeshVertexInside(t *testing.T) {
	a := box(rl.Vector3{X: 3}, unit)
	small := entity.Chunk{Triangles: []entity.Triangle{{{X: 3}, {X: 3.1}, {X: 3, Y: 0.1}}}}
	_, ok := HitBBMesh(a, mesh(rl.Vector3{}, small))
	assert.True(t, ok)
}

func TestHitBBMeshBoundsOverlapButSeparated(t *testing.T) {
	a := box(rl.Vector3{}, unit)
	corner := entity.Chunk{Triangles: []entity.Triangle{{{X: 2.5}, {Y: 2.5}, {X: 2.5, Y: 2.5}}}}
	_, ok := HitBBMesh(a, mesh(rl.Vector3{}, corner))
	assert.False(t, ok)
}

func TestHitBBMeshUsesChunkSubRotation(t *testing.T) {
	a := box(rl.Vector3{X: 5}, unit)
	tip := entity.Chunk{Triangles: []entity.Triangle{{{Z: 5}, {X: 0.2, Z: 5}, {Y: 0.2, Z: 5}}}}
	b := mesh(rl.Vector3{}, tip)

	_, ok := HitBBMesh(a, b)
	assert.False(t, ok)

	b.Chunks[0].Rotation = rl.Vector3{Y: 90}
	_, ok = HitBBMesh(a, b)
	assert.True(t, ok)
}

func TestSpheres(t *testing.T) {
	a := box(rl.Vector3{}, unit)
	b := box(rl.Vector3{X: 3}, unit)
	assert.True(t, Spheres(a, b))
	b.SetLocation(rl.Vector3{X: 4})
	assert.False(t, Spheres(a, b))
}
