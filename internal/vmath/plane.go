package vmath

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Plane is the plane equation Ax + By + Cz + D = 0.
type Plane struct {
	A, B, C, D float32
}

// PlaneFromPoints computes the ABCD plane through three points. The normal
// follows (p2-p1) x (p3-p1).
func PlaneFromPoints(p1, p2, p3 rl.Vector3) Plane {
	n := rl.Vector3CrossProduct(rl.Vector3Subtract(p2, p1), rl.Vector3Subtract(p3, p1))
	return Plane{
		A: n.X,
		B: n.Y,
		C: n.Z,
		D: -(n.X*p1.X + n.Y*p1.Y + n.Z*p1.Z),
	}
}

// Normal returns the (unnormalized) plane normal.
func (p Plane) Normal() rl.Vector3 {
	return rl.Vector3{X: p.A, Y: p.B, Z: p.C}
}

// Distance evaluates the plane equation at v. The sign tells the side; the
// magnitude is a true distance only for a unit normal.
func (p Plane) Distance(v rl.Vector3) float32 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

// DihedralAngle returns the angle in radians between the vector origin->point
// and the plane, where origin lies on the plane. The asin argument is clamped
// to [-1, 1]; degenerate inputs (zero normal or point == origin) return 0.
func DihedralAngle(p Plane, origin, point rl.Vector3) float32 {
	nLen := rl.Vector3Length(p.Normal())
	vLen := rl.Vector3Length(rl.Vector3Subtract(point, origin))
	if nLen == 0 || vLen == 0 {
		return 0
	}
	sin := p.Distance(point) / (nLen * vLen)
	return float32(math.Asin(float64(ClampUnit(sin))))
}
