package collision

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/entity"
	"astrocore/internal/vmath"
)

// MeshSphere tests a sphere that moved from prev to center this frame
// against the mesh of o. Pieces with a hit-box are first checked with a
// segment against the box grown by radius; only then are the piece's
// triangles tested. It returns the first hit piece and the contact point.
func MeshSphere(o *entity.Object3D, center, prev rl.Vector3, radius float32) (int, rl.Vector3, bool) {
	for i := range o.Chunks {
		if !o.HasHitBB(i) {
			continue
		}
		if !segmentHitsBox(HitBBOf(o, i), prev, center, radius) {
			continue
		}
		if contact, ok := sphereHitsChunk(o, i, center, prev, radius); ok {
			return i, contact, true
		}
	}
	return -1, rl.Vector3{}, false
}

// segmentHitsBox is the separating-axis test of the segment p0-p1 against
// the box with its extents grown by radius: the 3 box axes, then the 3
// cross products of the box axes with the segment direction.
func segmentHitsBox(b OBB, p0, p1 rl.Vector3, radius float32) bool {
	l0, l1 := b.ToLocal(p0), b.ToLocal(p1)
	m := rl.Vector3Scale(rl.Vector3Add(l0, l1), 0.5) // segment midpoint
	h := rl.Vector3Subtract(l1, m)                   // segment half-vector
	e := grow(b.HalfSize, radius)

	ah := rl.Vector3{X: vmath.Abs(h.X), Y: vmath.Abs(h.Y), Z: vmath.Abs(h.Z)}
	if vmath.Abs(m.X) > e.X+ah.X || vmath.Abs(m.Y) > e.Y+ah.Y || vmath.Abs(m.Z) > e.Z+ah.Z {
		return false
	}

	ah = grow(ah, satEpsilon)
	if vmath.Abs(m.Y*h.Z-m.Z*h.Y) > e.Y*ah.Z+e.Z*ah.Y {
		return false
	}
	if vmath.Abs(m.Z*h.X-m.X*h.Z) > e.X*ah.Z+e.Z*ah.X {
		return false
	}
	if vmath.Abs(m.X*h.Y-m.Y*h.X) > e.X*ah.Y+e.Y*ah.X {
		return false
	}
	return true
}

func grow(v rl.Vector3, s float32) rl.Vector3 {
	return rl.Vector3{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

func sphereHitsChunk(o *entity.Object3D, piece int, center, prev rl.Vector3, radius float32) (rl.Vector3, bool) {
	moved := rl.Vector3Subtract(center, prev)
	swept := rl.Vector3DotProduct(moved, moved) > 0
	r2 := radius * radius

	for t := range o.Chunks[piece].Triangles {
		tri := o.ChunkWorldTriangle(piece, t)

		// Crossed the surface between frames.
		if swept {
			if p, ok := segmentTriangle(prev, center, tri); ok {
				return p, true
			}
		}

		cp := closestPointTriangle(center, tri)
		d := rl.Vector3Subtract(center, cp)
		if rl.Vector3DotProduct(d, d) <= r2 {
			return cp, true
		}
	}
	return rl.Vector3{}, false
}

// segmentTriangle is a Möller-Trumbore intersection test limited to the segment.
func segmentTriangle(p0, p1 rl.Vector3, tri entity.Triangle) (rl.Vector3, bool) {
	const eps = 1e-7

	dir := rl.Vector3Subtract(p1, p0)
	e1 := rl.Vector3Subtract(tri[1], tri[0])
	e2 := rl.Vector3Subtract(tri[2], tri[0])

	pv := rl.Vector3CrossProduct(dir, e2)
	det := rl.Vector3DotProduct(e1, pv)
	if vmath.Abs(det) < eps {
		return rl.Vector3{}, false
	}
	inv := 1 / det

	tv := rl.Vector3Subtract(p0, tri[0])
	u := rl.Vector3DotProduct(tv, pv) * inv
	if u < 0 || u > 1 {
		return rl.Vector3{}, false
	}
	qv := rl.Vector3CrossProduct(tv, e1)
	v := rl.Vector3DotProduct(dir, qv) * inv
	if v < 0 || u+v > 1 {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(e2, qv) * inv
	if t < 0 || t > 1 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(p0, rl.Vector3Scale(dir, t)), true
}

// closestPointTriangle returns the point of tri nearest to p, by Voronoi
// region of the triangle.
func closestPointTriangle(p rl.Vector3, tri entity.Triangle) rl.Vector3 {
	a, b, c := tri[0], tri[1], tri[2]
	ab := rl.Vector3Subtract(b, a)
	ac := rl.Vector3Subtract(c, a)

	ap := rl.Vector3Subtract(p, a)
	d1 := rl.Vector3DotProduct(ab, ap)
	d2 := rl.Vector3DotProduct(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := rl.Vector3Subtract(p, b)
	d3 := rl.Vector3DotProduct(ab, bp)
	d4 := rl.Vector3DotProduct(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return rl.Vector3Add(a, rl.Vector3Scale(ab, d1/(d1-d3)))
	}

	cp := rl.Vector3Subtract(p, c)
	d5 := rl.Vector3DotProduct(ab, cp)
	d6 := rl.Vector3DotProduct(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return rl.Vector3Add(a, rl.Vector3Scale(ac, d2/(d2-d6)))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return rl.Vector3Add(b, rl.Vector3Scale(rl.Vector3Subtract(c, b), w))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return rl.Vector3Add(a, rl.Vector3Add(rl.Vector3Scale(ab, v), rl.Vector3Scale(ac, w)))
}
