package collision

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/entity"
)

// HitBBHitBB tests every hit-box of a against every hit-box of b and
// returns the first overlapping pair.
func HitBBHitBB(a, b *entity.Object3D) (int, int, bool) {
	for i := range a.HitBB {
		if !a.HasHitBB(i) {
			continue
		}
		ca := a.HitBBCenter(i)
		for j := range b.HitBB {
			if !b.HasHitBB(j) {
				continue
			}
			if !radiiTouch(ca, a.HitBB[i].Radius2, b.HitBBCenter(j), b.HitBB[j].Radius2) {
				continue
			}
			if HitBBOf(a, i).Intersects(HitBBOf(b, j)) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

// HitBBOBB tests the hit-boxes of a against the single box around b.
func HitBBOBB(a, b *entity.Object3D) (int, bool) {
	ob := OBBOf(b)
	hb := ob.HalfSize
	r2b := rl.Vector3DotProduct(hb, hb)

	for i := range a.HitBB {
		if !a.HasHitBB(i) {
			continue
		}
		if !radiiTouch(a.HitBBCenter(i), a.HitBB[i].Radius2, ob.Center, r2b) {
			continue
		}
		if HitBBOf(a, i).Intersects(ob) {
			return i, true
		}
	}
	return -1, false
}

// radiiTouch compares the center distance against the sum of two radii
// given squared.
func radiiTouch(ca rl.Vector3, r2a float32, cb rl.Vector3, r2b float32) bool {
	d := rl.Vector3Subtract(ca, cb)
	dist2 := rl.Vector3DotProduct(d, d)
	sum := r2a + r2b + 2*float32(math.Sqrt(float64(r2a)*float64(r2b)))
	return dist2 <= sum
}
