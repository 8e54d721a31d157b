// Package vmath holds the rotation and plane math shared by the simulation core.
//
// Vectors are raylib's rl.Vector3. Rotations are kept as row-major 3x3 matrices
// because every entity caches one (and its inverse) and rebuilds it only when its
// Euler angles change.
package vmath

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mat33 is a row-major 3x3 matrix: element (r, c) lives at index r*3+c.
type Mat33 [9]float32

// Identity33 returns the identity rotation.
func Identity33() Mat33 {
	return Mat33{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// RotationMat33 builds a rotation from Euler angles in degrees.
// Roll (Z) is applied first, then pitch (X), then yaw (Y): M = Ry * Rx * Rz.
// With zero angles forward is +Z, up is +Y and right is +X.
func RotationMat33(angles rl.Vector3) Mat33 {
	return RotateY(angles.Y).Mul(RotateX(angles.X)).Mul(RotateZ(angles.Z))
}

// RotateX returns a rotation of deg degrees around the X axis.
func RotateX(deg float32) Mat33 {
	s, c := sincos(deg)
	return Mat33{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotateY returns a rotation of deg degrees around the Y axis.
func RotateY(deg float32) Mat33 {
	s, c := sincos(deg)
	return Mat33{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotateZ returns a rotation of deg degrees around the Z axis.
func RotateZ(deg float32) Mat33 {
	s, c := sincos(deg)
	return Mat33{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

func sincos(deg float32) (float32, float32) {
	if deg == 0 {
		return 0, 1
	}
	s, c := math.Sincos(float64(deg) * rl.Deg2rad)
	return float32(s), float32(c)
}

// Mul returns m * n.
func (m Mat33) Mul(n Mat33) Mat33 {
	var r Mat33
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3]*n[col] + m[row*3+1]*n[3+col] + m[row*3+2]*n[6+col]
		}
	}
	return r
}

// Transpose returns the transposed matrix.
func (m Mat33) Transpose() Mat33 {
	return Mat33{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Inverse returns the inverse of a rotation matrix. For orthonormal matrices
// this is the transpose.
func (m Mat33) Inverse() Mat33 {
	return m.Transpose()
}

// Apply transforms point v by m.
func (m Mat33) Apply(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// ApplyInv transforms v by the inverse (transpose) of m without building it.
func (m Mat33) ApplyInv(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Axis returns column i, the world direction of local axis i (0=X, 1=Y, 2=Z).
func (m Mat33) Axis(i int) rl.Vector3 {
	return rl.Vector3{X: m[i], Y: m[3+i], Z: m[6+i]}
}

// Matrix converts the rotation plus a translation into a raylib 4x4 matrix,
// suitable for rl.Vector3Transform and DrawModelEx-style calls.
func (m Mat33) Matrix(loc rl.Vector3) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[1], M8: m[2], M12: loc.X,
		M1: m[3], M5: m[4], M9: m[5], M13: loc.Y,
		M2: m[6], M6: m[7], M10: m[8], M14: loc.Z,
		M15: 1,
	}
}

// ChunkMatrix builds the local transform of a mesh chunk: rotate by the chunk's
// own Euler angles (same convention as RotationMat33), then offset by location.
func ChunkMatrix(location, rotation rl.Vector3) rl.Matrix {
	return RotationMat33(rotation).Matrix(location)
}
