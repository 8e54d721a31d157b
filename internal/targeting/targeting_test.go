package targeting

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrocore/internal/engine"
	"astrocore/internal/entity"
	"astrocore/internal/vmath"
)

type entry struct {
	ref entity.Ref
	obj *entity.Object3D
}

// fakeSource keeps candidates per class, backed by a real list so refs
// go stale on release.
type fakeSource struct {
	list    *engine.List[entity.Object3D]
	classes map[Class][]entry
}

func newFakeSource() *fakeSource {
	return &fakeSource{list: engine.NewList[entity.Object3D](), classes: map[Class][]entry{}}
}

func (s *fakeSource) add(c Class, status entity.Status, loc rl.Vector3) entity.Ref {
	o := entity.NewObject3D(entity.KindShip, status, 0)
	o.SetLocation(loc)
	ref := entity.Ref{Kind: entity.KindShip, Handle: s.list.Create(&o)}
	s.classes[c] = append(s.classes[c], entry{ref, &o})
	return ref
}

func (s *fakeSource) Candidates(c Class, fn func(entity.Ref, *entity.Object3D) bool) {
	for _, e := range s.classes[c] {
		if !s.list.Alive(e.ref.Handle) {
			continue
		}
		if !fn(e.ref, e.obj) {
			return
		}
	}
}

func (s *fakeSource) Resolve(ref entity.Ref) (*entity.Object3D, bool) {
	return s.list.Get(ref.Handle)
}

func missileAt(loc, rot rl.Vector3) entity.Missile {
	return entity.Missile{
		Status:      entity.StatusPlayer,
		Location:    loc,
		Rotation:    rot,
		RotationMat: vmath.RotationMat33(rot),
		Speed:       50,
	}
}

func dir(deg float64, dist float32) rl.Vector3 {
	r := deg * math.Pi / 180
	return rl.Vector3{X: float32(math.Sin(r)) * dist, Z: float32(math.Cos(r)) * dist}
}

func TestTargetDeadAheadNeedsNoCorrection(t *testing.T) {
	src := newFakeSource()
	want := src.add(ClassShip, entity.StatusEnemy, rl.Vector3{Z: 100})
	fd := &Finder{Source: src}

	ref, angle, ok := fd.FindTargetAndInterceptCourse(missileAt(rl.Vector3{}, rl.Vector3{}), 500)
	require.True(t, ok)
	assert.Equal(t, want, ref)
	assert.InDelta(t, 0, angle.X, 1e-4)
	assert.InDelta(t, 0, angle.Y, 1e-4)
	assert.InDelta(t, 0, angle.Z, 1e-4)
}

func TestCourseTurnsTowardTarget(t *testing.T) {
	src := newFakeSource()
	src.add(ClassShip, entity.StatusEnemy, rl.Vector3{X: 100, Z: 100})
	fd := &Finder{Source: src}

	_, angle, ok := fd.FindTargetAndInterceptCourse(missileAt(rl.Vector3{}, rl.Vector3{}), 500)
	require.True(t, ok)
	assert.InDelta(t, 45, angle.Y, 1e-3)
	assert.InDelta(t, 0, angle.X, 1e-3)

	src = newFakeSource()
	src.add(ClassShip, entity.StatusEnemy, rl.Vector3{Y: 100, Z: 100})
	fd.Source = src
	_, angle, ok = fd.FindTargetAndInterceptCourse(missileAt(rl.Vector3{}, rl.Vector3{}), 500)
	require.True(t, ok)
	assert.InDelta(t, -45, angle.X, 1e-3)
	assert.InDelta(t, 0, angle.Y, 1e-3)
}

func TestCourseIsRelativeToMissileRotation(t *testing.T) {
	src := newFakeSource()
	src.add(ClassShip, entity.StatusEnemy, rl.Vector3{X: 100})
	fd := &Finder{Source: src}

	_, angle, ok := fd.FindTargetAndInterceptCourse(missileAt(rl.Vector3{}, rl.Vector3{Y: 90}), 500)
	require.True(t, ok)
	assert.InDelta(t, 90, angle.Y, 1e-3)
	assert.InDelta(t, 0, angle.X, 1e-3)
}

func TestRejectedCandidates(t *testing.T) {
	cases := map[string]struct {
		status entity.Status
		loc    rl.Vector3
	}{
		"behind":       {entity.StatusEnemy, rl.Vector3{Z: -100}},
		"out of range": {entity.StatusEnemy, rl.Vector3{Z: 600}},
		"outside zone": {entity.StatusEnemy, dir(60, 100)},
		"friendly":     {entity.StatusAlly, rl.Vector3{Z: 100}},
		"neutral":      {entity.StatusNone, rl.Vector3{Z: 100}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			src := newFakeSource()
			src.add(ClassShip, c.status, c.loc)
			fd := &Finder{Source: src}
			_, _, ok := fd.FindTargetAndInterceptCourse(missileAt(rl.Vector3{}, rl.Vector3{}), 500)
			assert.False(t, ok)
		})
	}
}

func TestZoneBoundaryIncluded(t *testing.T) {
	assert.True(t, inZone(ZoneAngle, -ZoneAngle))
	assert.True(t, inZone(-ZoneAngle, ZoneAngle))
	assert.False(t, inZone(ZoneAngle+1e-4, 0))
	assert.False(t, inZone(0, -ZoneAngle-1e-4))

	deg := ZoneAngle * 180 / math.Pi
	for _, c := range []struct {
		deg  float64
		want bool
	}{
		{deg - 0.01, true},
		{-(deg - 0.01), true},
		{deg + 0.01, false},
	} {
		src := newFakeSource()
		src.add(ClassShip, entity.StatusEnemy, dir(c.deg, 100))
		fd := &Finder{Source: src}
		_, _, ok := fd.FindTargetAndInterceptCourse(missileAt(rl.Vector3{}, rl.Vector3{}), 500)
		assert.Equal(t, c.want, ok, "%v deg", c.deg)
	}
}

func TestCandidateExactlyOnZoneBoundary(t *testing.T) {
	sin, cos := float32(math.Sin(ZoneAngle)), float32(math.Cos(ZoneAngle))
	for name, loc := range map[string]rl.Vector3{
		"right": {X: sin * 100, Z: cos * 100},
		"left":  {X: -sin * 100, Z: cos * 100},
		"up":    {Y: sin * 100, Z: cos * 100},
		"down":  {Y: -sin * 100, Z: cos * 100},
	} {
		t.Run(name, func(t *testing.T) {
			src := newFakeSource()
			want := src.add(ClassShip, entity.StatusEnemy, loc)
			fd := &Finder{Source: src}

			ref, angle, ok := fd.FindTargetAndInterceptCourse(missileAt(rl.Vector3{}, rl.Vector3{}), 500)
			require.True(t, ok, "the boundary belongs to the zone")
			assert.Equal(t, want, ref)
			deg := float32(ZoneAngle * 180 / math.Pi)
			assert.InDelta(t, deg, vmath.Abs(angle.X)+vmath.Abs(angle.Y), 1e-2)
		})
	}
}

func TestClosestWithinClass(t *testing.T) {
	src := newFakeSource()
	src.add(ClassShip, entity.StatusEnemy, rl.Vector3{Z: 300})
	near := src.add(ClassShip, entity.StatusEnemy, rl.Vector3{X: 10, Z: 80})
	src.add(ClassShip, entity.StatusEnemy, rl.Vector3{Z: 150})
	fd := &Finder{Source: src}

	ref, _, ok := fd.FindTargetAndInterceptCourse(missileAt(rl.Vector3{}, rl.Vector3{}), 500)
	require.True(t, ok)
	assert.Equal(t, near, ref)
}

func TestFlaresTakePriority(t *testing.T) {
	src := newFakeSource()
	flare := src.add(ClassFlare, entity.StatusEnemy, rl.Vector3{Z: 200})
	src.add(ClassShip, entity.StatusEnemy, rl.Vector3{Z: 100})
	fd := &Finder{Source: src}

	ref, _, ok := fd.FindTargetAndInterceptCourse(missileAt(rl.Vector3{}, rl.Vector3{}), 500)
	require.True(t, ok)
	assert.Equal(t, flare, ref)

	// A much closer ship outweighs the flare.
	ship := src.add(ClassShip, entity.StatusEnemy, rl.Vector3{Z: 50})
	ref, _, ok = fd.FindTargetAndInterceptCourse(missileAt(rl.Vector3{}, rl.Vector3{}), 500)
	require.True(t, ok)
	assert.Equal(t, ship, ref)
}

func TestInterceptLeadsMovingTarget(t *testing.T) {
	src := newFakeSource()
	ref := src.add(ClassShip, entity.StatusEnemy, rl.Vector3{Z: 100})
	obj, _ := src.Resolve(ref)
	obj.Velocity = rl.Vector3{X: 10}
	fd := &Finder{Source: src}

	// 100 units at speed 50: aim 2s ahead, at (20, 0, 100).
	_, angle, ok := fd.FindTargetAndInterceptCourse(missileAt(rl.Vector3{}, rl.Vector3{}), 500)
	require.True(t, ok)
	assert.InDelta(t, math.Atan(0.2)*180/math.Pi, angle.Y, 1e-3)
}

func TestCorrectAndCheckLockedTarget(t *testing.T) {
	src := newFakeSource()
	ref := src.add(ClassShip, entity.StatusEnemy, rl.Vector3{X: 50, Z: 50})
	fd := &Finder{Source: src}
	m := missileAt(rl.Vector3{}, rl.Vector3{})

	assert.True(t, fd.CheckMissileTarget(m, ref))
	angle, ok := fd.CorrectTargetInterceptCourse(m, ref)
	require.True(t, ok)
	assert.InDelta(t, 45, angle.Y, 1e-3)

	// Passed it: the target is behind now.
	m = missileAt(rl.Vector3{Z: 80}, rl.Vector3{})
	assert.False(t, fd.CheckMissileTarget(m, ref))
	_, ok = fd.CorrectTargetInterceptCourse(m, ref)
	assert.False(t, ok)

	// Destroyed.
	m = missileAt(rl.Vector3{}, rl.Vector3{})
	src.list.Release(ref.Handle)
	assert.False(t, fd.CheckMissileTarget(m, ref))
	_, ok = fd.CorrectTargetInterceptCourse(m, ref)
	assert.False(t, ok)
	assert.False(t, fd.CheckMissileTarget(m, entity.Ref{}))
}

func TestFindNearestIgnoresDirection(t *testing.T) {
	src := newFakeSource()
	src.add(ClassShip, entity.StatusAlly, rl.Vector3{Y: 20, Z: -120})
	behind := src.add(ClassShip, entity.StatusAlly, rl.Vector3{Z: -30})
	src.add(ClassGround, entity.StatusAlly, rl.Vector3{Z: 10})
	fd := &Finder{Source: src}

	ref, obj, ok := fd.FindNearest(entity.StatusEnemy, rl.Vector3{}, 100, entity.KindShip)
	require.True(t, ok)
	assert.Equal(t, behind, ref)
	assert.Equal(t, float32(-30), obj.Location.Z)

	ref, _, ok = fd.FindNearest(entity.StatusEnemy, rl.Vector3{}, 100, entity.KindShip, entity.KindGroundObject)
	require.True(t, ok)
	assert.NotEqual(t, behind, ref)

	_, _, ok = fd.FindNearest(entity.StatusEnemy, rl.Vector3{}, 20, entity.KindShip)
	assert.False(t, ok)
}
