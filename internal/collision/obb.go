// Package collision implements the bounding-volume tests run between
// entities: swept sphere against mesh, hit-box against hit-box, hit-box
// against a whole-entity OBB and hit-box against raw mesh triangles.
//
// Every test returns the first hit found with pieces visited in storage
// order.
package collision

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/entity"
	"astrocore/internal/vmath"
)

// satEpsilon pads |R| so nearly parallel edge pairs don't produce a
// degenerate cross axis.
const satEpsilon = 1e-6

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, half-size and rotation matrix
func NewOBB(center, halfSize rl.Vector3, rot vmath.Mat33) OBB {
	return OBB{
		Center:   center,
		HalfSize: halfSize,
		Axes:     [3]rl.Vector3{rot.Axis(0), rot.Axis(1), rot.Axis(2)},
	}
}

// HitBBOf returns hit-box i of o in world space
func HitBBOf(o *entity.Object3D, i int) OBB {
	return NewOBB(o.HitBBCenter(i), o.HitBB[i].HalfSize(), o.CurrentRotationMat)
}

// OBBOf returns the whole-entity box of o in world space
func OBBOf(o *entity.Object3D) OBB {
	return NewOBB(o.OBBCenter(), o.OBB.HalfSize(), o.CurrentRotationMat)
}

func half(b OBB, i int) float32 {
	switch i {
	case 0:
		return b.HalfSize.X
	case 1:
		return b.HalfSize.Y
	}
	return b.HalfSize.Z
}

// Intersects tests if two OBBs intersect using the Separating Axis Theorem.
// Everything is expressed in a's frame: R[i][j] = a.Axes[i]·b.Axes[j].
// Touching boxes intersect.
func (a OBB) Intersects(b OBB) bool {
	var r, absR [3][3]float32
	for i := range 3 {
		for j := range 3 {
			r[i][j] = rl.Vector3DotProduct(a.Axes[i], b.Axes[j])
			absR[i][j] = vmath.Abs(r[i][j]) + satEpsilon
		}
	}

	d := rl.Vector3Subtract(b.Center, a.Center)
	t := [3]float32{
		rl.Vector3DotProduct(d, a.Axes[0]),
		rl.Vector3DotProduct(d, a.Axes[1]),
		rl.Vector3DotProduct(d, a.Axes[2]),
	}
	ea := [3]float32{half(a, 0), half(a, 1), half(a, 2)}
	eb := [3]float32{half(b, 0), half(b, 1), half(b, 2)}

	// Test A's face normals
	for i := range 3 {
		rb := eb[0]*absR[i][0] + eb[1]*absR[i][1] + eb[2]*absR[i][2]
		if vmath.Abs(t[i]) > ea[i]+rb {
			return false
		}
	}

	// Test B's face normals
	for j := range 3 {
		ra := ea[0]*absR[0][j] + ea[1]*absR[1][j] + ea[2]*absR[2][j]
		if vmath.Abs(t[0]*r[0][j]+t[1]*r[1][j]+t[2]*r[2][j]) > ra+eb[j] {
			return false
		}
	}

	// Test cross products of edges: A[i] x B[j]
	for i := range 3 {
		i1, i2 := (i+1)%3, (i+2)%3
		for j := range 3 {
			j1, j2 := (j+1)%3, (j+2)%3
			ra := ea[i1]*absR[i2][j] + ea[i2]*absR[i1][j]
			rb := eb[j1]*absR[i][j2] + eb[j2]*absR[i][j1]
			if vmath.Abs(t[i2]*r[i1][j]-t[i1]*r[i2][j]) > ra+rb {
				return false
			}
		}
	}

	return true
}

// ToLocal transforms a world point into the box frame, origin at the center
func (o OBB) ToLocal(p rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(p, o.Center)
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

// ContainsPoint reports whether p is inside or on the box
func (o OBB) ContainsPoint(p rl.Vector3) bool {
	l := o.ToLocal(p)
	return vmath.Abs(l.X) <= o.HalfSize.X && vmath.Abs(l.Y) <= o.HalfSize.Y && vmath.Abs(l.Z) <= o.HalfSize.Z
}

// IntersectsSphere tests if an OBB intersects with a sphere
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	l := o.ToLocal(center)
	closest := rl.Vector3{
		X: vmath.Clamp(l.X, -o.HalfSize.X, o.HalfSize.X),
		Y: vmath.Clamp(l.Y, -o.HalfSize.Y, o.HalfSize.Y),
		Z: vmath.Clamp(l.Z, -o.HalfSize.Z, o.HalfSize.Z),
	}
	d := rl.Vector3Subtract(l, closest)
	return rl.Vector3DotProduct(d, d) <= radius*radius
}

// Spheres is the coarse test run before any of the precise ones
func Spheres(a, b *entity.Object3D) bool {
	d := rl.Vector3Subtract(a.Location, b.Location)
	r := a.Radius + b.Radius
	return rl.Vector3DotProduct(d, d) <= r*r
}
