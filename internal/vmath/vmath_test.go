package vmath

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-5, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-5, "z")
}

func TestRotationZeroIsIdentity(t *testing.T) {
	assert.Equal(t, Identity33(), RotationMat33(rl.Vector3{}))
}

func TestRotationYawTurnsForwardTowardRight(t *testing.T) {
	m := RotationMat33(rl.Vector3{Y: 90})
	assertVec(t, Right, m.Apply(Forward))
}

func TestRotationPitchTurnsForwardDown(t *testing.T) {
	m := RotationMat33(rl.Vector3{X: 90})
	assertVec(t, rl.Vector3{Y: -1}, m.Apply(Forward))
}

func TestInverseUndoesRotation(t *testing.T) {
	m := RotationMat33(rl.Vector3{X: 17, Y: -42, Z: 133})
	v := rl.Vector3{X: 1.5, Y: -2, Z: 3}

	assertVec(t, v, m.Inverse().Apply(m.Apply(v)))
	assertVec(t, v, m.ApplyInv(m.Apply(v)))

	id := m.Mul(m.Inverse())
	for i := range id {
		assert.InDelta(t, Identity33()[i], id[i], 1e-5)
	}
}

func TestAxisMatchesApply(t *testing.T) {
	m := RotationMat33(rl.Vector3{X: 30, Y: 60, Z: 10})
	assertVec(t, m.Apply(Right), m.Axis(0))
	assertVec(t, m.Apply(Up), m.Axis(1))
	assertVec(t, m.Apply(Forward), m.Axis(2))
}

func TestMatrixAgreesWithRaylibTransform(t *testing.T) {
	m := RotationMat33(rl.Vector3{X: 10, Y: 20, Z: 30})
	loc := rl.Vector3{X: 5, Y: -1, Z: 2}
	v := rl.Vector3{X: 1, Y: 2, Z: 3}

	want := rl.Vector3Add(m.Apply(v), loc)
	assertVec(t, want, rl.Vector3Transform(v, m.Matrix(loc)))
}

func TestPlaneFromPoints(t *testing.T) {
	// XZ plane through y=2, normal +Y because (p2-p1)x(p3-p1) = Z x X = +Y.
	p := PlaneFromPoints(
		rl.Vector3{X: 0, Y: 2, Z: 0},
		rl.Vector3{X: 0, Y: 2, Z: 1},
		rl.Vector3{X: 1, Y: 2, Z: 0},
	)
	assert.Greater(t, p.Distance(rl.Vector3{Y: 5}), float32(0))
	assert.Less(t, p.Distance(rl.Vector3{Y: -5}), float32(0))
	assert.InDelta(t, 0, p.Distance(rl.Vector3{X: 7, Y: 2, Z: -3}), 1e-6)
}

func TestDihedralAngle(t *testing.T) {
	p := PlaneFromPoints(rl.Vector3{}, rl.Vector3{Z: 1}, rl.Vector3{X: 1})
	origin := rl.Vector3{}

	assert.InDelta(t, math.Pi/4, DihedralAngle(p, origin, rl.Vector3{Y: 1, Z: 1}), 1e-5)
	assert.InDelta(t, -math.Pi/2, DihedralAngle(p, origin, rl.Vector3{Y: -3}), 1e-5)
	assert.Equal(t, float32(0), DihedralAngle(p, origin, origin))
}

func TestDihedralAngleNeverNaN(t *testing.T) {
	// A tiny vector straight along the normal pushes the ratio past 1 in float32.
	p := Plane{A: 0, B: 1e-3, C: 0, D: 0}
	got := DihedralAngle(p, rl.Vector3{}, rl.Vector3{Y: 1e-20})
	assert.False(t, math.IsNaN(float64(got)))
	assert.LessOrEqual(t, float64(got), math.Pi/2+1e-6)
}

func TestApproach(t *testing.T) {
	v, step := Approach(0, 10, 3)
	assert.Equal(t, float32(3), v)
	assert.Equal(t, float32(3), step)

	v, step = Approach(5, 4, 3)
	assert.Equal(t, float32(4), v)
	assert.Equal(t, float32(-1), step)

	v, _ = Approach(0, -10, 2)
	assert.Equal(t, float32(-2), v)
}

func TestMinMaxAndCorners(t *testing.T) {
	lo, hi := MinMax([]rl.Vector3{{X: 1, Y: -2, Z: 3}, {X: -1, Y: 4, Z: 0}})
	assert.Equal(t, rl.Vector3{X: -1, Y: -2, Z: 0}, lo)
	assert.Equal(t, rl.Vector3{X: 1, Y: 4, Z: 3}, hi)

	c := BoxCorners(lo, hi)
	l2, h2 := MinMax(c[:])
	assert.Equal(t, lo, l2)
	assert.Equal(t, hi, h2)
}
