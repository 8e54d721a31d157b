// Package targeting finds and tracks homing targets. Candidates must lie
// ahead of the missile and inside its targeting zone: within ZoneAngle of
// the forward axis, measured separately in the vertical and horizontal
// planes as dihedral angles.
package targeting

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"astrocore/internal/entity"
	"astrocore/internal/vmath"
)

// ZoneAngle is the half-angle of the targeting zone, in radians. The
// boundary belongs to the zone.
const ZoneAngle = 1.0

// Class is a group of candidates searched together.
type Class int

const (
	ClassFlare Class = iota
	ClassGround
	ClassShip
	ClassSpace
)

func (c Class) String() string {
	switch c {
	case ClassFlare:
		return "flare"
	case ClassGround:
		return "ground"
	case ClassShip:
		return "ship"
	case ClassSpace:
		return "space"
	}
	return "unknown"
}

// priority lists classes in search order with the weight applied to the
// squared distance of a later class competing against an earlier lock.
var priority = []struct {
	class  Class
	weight float32
}{
	{ClassFlare, 1},
	{ClassGround, 3},
	{ClassShip, 6},
	{ClassSpace, 10},
}

// ClassOf maps an entity kind to its candidate class.
func ClassOf(k entity.Kind) Class {
	switch k {
	case entity.KindProjectile:
		return ClassFlare
	case entity.KindGroundObject:
		return ClassGround
	case entity.KindSpaceObject:
		return ClassSpace
	}
	return ClassShip
}

// Source enumerates candidates and resolves references. Candidates of
// ClassFlare are flare projectiles only, ClassSpace leaves out debris.
// Iteration stops when fn returns false.
type Source interface {
	Candidates(c Class, fn func(ref entity.Ref, o *entity.Object3D) bool)
	Resolve(ref entity.Ref) (*entity.Object3D, bool)
}

// Finder implements entity.TargetFinder over a Source.
type Finder struct {
	Source Source
	Log    zerolog.Logger
}

var _ entity.TargetFinder = (*Finder)(nil)

// frame holds the three reference planes of a missile.
type frame struct {
	origin     rl.Vector3
	forward    vmath.Plane // normal along forward; positive distance is ahead
	horizontal vmath.Plane // normal along up
	vertical   vmath.Plane // normal along right
}

func newFrame(m entity.Missile) frame {
	fwd := rl.Vector3Add(m.Location, m.RotationMat.Apply(vmath.Forward))
	up := rl.Vector3Add(m.Location, m.RotationMat.Apply(vmath.Up))
	right := rl.Vector3Add(m.Location, m.RotationMat.Apply(vmath.Right))
	return frame{
		origin:     m.Location,
		forward:    vmath.PlaneFromPoints(m.Location, right, up),
		horizontal: vmath.PlaneFromPoints(m.Location, fwd, right),
		vertical:   vmath.PlaneFromPoints(m.Location, up, fwd),
	}
}

func (f frame) ahead(p rl.Vector3) bool {
	return f.forward.Distance(p) > 0
}

// angles returns the elevation and bearing of p, in radians.
func (f frame) angles(p rl.Vector3) (float32, float32) {
	return vmath.DihedralAngle(f.horizontal, f.origin, p), vmath.DihedralAngle(f.vertical, f.origin, p)
}

// zoneSlack absorbs float32 rounding of positions placed on the boundary.
const zoneSlack = 1e-5

func inZone(vertical, horizontal float32) bool {
	return vmath.Abs(vertical) <= ZoneAngle+zoneSlack && vmath.Abs(horizontal) <= ZoneAngle+zoneSlack
}

// course returns the rotation that points m at p.
func (f frame) course(m entity.Missile, p rl.Vector3) rl.Vector3 {
	vertical, horizontal := f.angles(p)
	return rl.Vector3{
		X: m.Rotation.X - vertical*rl.Rad2deg,
		Y: m.Rotation.Y + horizontal*rl.Rad2deg,
		Z: m.Rotation.Z,
	}
}

// intercept leads a moving target by the time the missile needs to cover
// the current distance.
func intercept(m entity.Missile, o *entity.Object3D) rl.Vector3 {
	if m.Speed <= 0 {
		return o.Location
	}
	dist := rl.Vector3Distance(m.Location, o.Location)
	return rl.Vector3Add(o.Location, rl.Vector3Scale(o.Velocity, dist/m.Speed))
}

type candidate struct {
	ref  entity.Ref
	obj  *entity.Object3D
	dist float32 // squared
}

// FindTargetAndInterceptCourse picks a foe for m within maxDistance and
// returns it together with the rotation that steers onto its intercept
// point. Classes are searched in priority order; inside a class the closest
// candidate wins, and a later class takes over only when its weighted
// squared distance beats the squared distance already locked.
func (fd *Finder) FindTargetAndInterceptCourse(m entity.Missile, maxDistance float32) (entity.Ref, rl.Vector3, bool) {
	f := newFrame(m)
	max2 := maxDistance * maxDistance

	var best candidate
	var bestClass Class
	locked := false
	for _, p := range priority {
		c, ok := fd.closest(p.class, m.Status, max2, func(o *entity.Object3D) bool {
			if !f.ahead(o.Location) {
				return false
			}
			return inZone(f.angles(o.Location))
		}, m.Location)
		if !ok {
			continue
		}
		if !locked || c.dist*p.weight < best.dist {
			best, bestClass, locked = c, p.class, true
		}
	}
	if !locked {
		return entity.Ref{}, m.Rotation, false
	}

	fd.Log.Trace().
		Stringer("target", best.ref).
		Stringer("class", bestClass).
		Float64("distance", math.Sqrt(float64(best.dist))).
		Msg("target locked")
	return best.ref, f.course(m, intercept(m, best.obj)), true
}

// closest returns the nearest foe of status in class within max2 that
// passes accept.
func (fd *Finder) closest(class Class, status entity.Status, max2 float32, accept func(*entity.Object3D) bool, from rl.Vector3) (candidate, bool) {
	var best candidate
	found := false
	fd.Source.Candidates(class, func(ref entity.Ref, o *entity.Object3D) bool {
		if !status.Foe(o.Status) {
			return true
		}
		d := rl.Vector3Subtract(o.Location, from)
		d2 := rl.Vector3DotProduct(d, d)
		if d2 > max2 || (found && d2 >= best.dist) {
			return true
		}
		if accept != nil && !accept(o) {
			return true
		}
		best, found = candidate{ref: ref, obj: o, dist: d2}, true
		return true
	})
	return best, found
}

// CorrectTargetInterceptCourse recomputes the course to a locked target. It
// fails when the target is gone or behind the missile.
func (fd *Finder) CorrectTargetInterceptCourse(m entity.Missile, target entity.Ref) (rl.Vector3, bool) {
	o, ok := fd.Source.Resolve(target)
	if !ok {
		return m.Rotation, false
	}
	f := newFrame(m)
	if !f.ahead(o.Location) {
		return m.Rotation, false
	}
	return f.course(m, intercept(m, o)), true
}

// CheckMissileTarget reports whether target still exists and is ahead of m.
func (fd *Finder) CheckMissileTarget(m entity.Missile, target entity.Ref) bool {
	if !target.IsValid() {
		return false
	}
	o, ok := fd.Source.Resolve(target)
	if !ok {
		return false
	}
	return newFrame(m).ahead(o.Location)
}

// FindNearest returns the closest foe of status among kinds within
// maxDistance of location, regardless of direction.
func (fd *Finder) FindNearest(status entity.Status, location rl.Vector3, maxDistance float32, kinds ...entity.Kind) (entity.Ref, *entity.Object3D, bool) {
	max2 := maxDistance * maxDistance
	var best candidate
	found := false
	for _, k := range kinds {
		c, ok := fd.closest(ClassOf(k), status, max2, nil, location)
		if ok && (!found || c.dist < best.dist) {
			best, found = c, true
		}
	}
	if !found {
		return entity.Ref{}, nil, false
	}
	return best.ref, best.obj, true
}
