package vmath

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Forward, Up and Right are the local axes of an unrotated entity.
var (
	Forward = rl.Vector3{X: 0, Y: 0, Z: 1}
	Up      = rl.Vector3{X: 0, Y: 1, Z: 0}
	Right   = rl.Vector3{X: 1, Y: 0, Z: 0}
)

// ClampUnit restricts v to [-1, 1].
func ClampUnit(v float32) float32 {
	return Clamp(v, -1, 1)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns |v|.
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Approach moves current toward target by at most maxStep and returns the new
// value together with the step actually taken.
func Approach(current, target, maxStep float32) (float32, float32) {
	diff := target - current
	if Abs(diff) <= maxStep {
		return target, diff
	}
	if diff > 0 {
		return current + maxStep, maxStep
	}
	return current - maxStep, -maxStep
}

// MinMax returns the componentwise bounds of a non-empty point set.
func MinMax(points []rl.Vector3) (rl.Vector3, rl.Vector3) {
	if len(points) == 0 {
		return rl.Vector3{}, rl.Vector3{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = rl.Vector3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = rl.Vector3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return lo, hi
}

// BoxCorners returns the 8 corners of an axis-aligned box given its bounds.
// Order: the 4 corners of the max-Z face counter-clockwise, then the min-Z face.
func BoxCorners(lo, hi rl.Vector3) [8]rl.Vector3 {
	return [8]rl.Vector3{
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
	}
}
