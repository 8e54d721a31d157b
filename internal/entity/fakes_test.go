package entity

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"astrocore/internal/config"
	"astrocore/internal/engine"
)

func assertVec(t *testing.T, want, got rl.Vector3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, 1e-4, msgAndArgs...)
}

type fakeView struct{ visible bool }

func (v *fakeView) Visible(rl.Vector3, float32) bool { return v.visible }

type fakeSounds struct{ played []string }

func (s *fakeSounds) Play(name string) { s.played = append(s.played, name) }

type spawnCall struct {
	id       int
	status   Status
	location rl.Vector3
	rotation rl.Vector3
	owner    Ref
}

type fakeSpawner struct{ calls []spawnCall }

func (s *fakeSpawner) SpawnProjectile(id int, status Status, loc, rot rl.Vector3, owner Ref) (Ref, error) {
	s.calls = append(s.calls, spawnCall{id, status, loc, rot, owner})
	return Ref{Kind: KindProjectile}, nil
}

// fakeTargets hands out a fixed target and course.
type fakeTargets struct {
	ref     Ref
	angle   rl.Vector3
	nearest *Object3D
	keep    bool

	searches int
}

func (f *fakeTargets) FindTargetAndInterceptCourse(Missile, float32) (Ref, rl.Vector3, bool) {
	f.searches++
	return f.ref, f.angle, f.ref.IsValid()
}

func (f *fakeTargets) CorrectTargetInterceptCourse(_ Missile, ref Ref) (rl.Vector3, bool) {
	return f.angle, f.keep && ref == f.ref
}

func (f *fakeTargets) CheckMissileTarget(_ Missile, ref Ref) bool {
	return f.keep && ref == f.ref
}

func (f *fakeTargets) FindNearest(Status, rl.Vector3, float32, ...Kind) (Ref, *Object3D, bool) {
	if f.nearest == nil {
		return Ref{}, nil, false
	}
	return f.ref, f.nearest, true
}

var testRef = Ref{Kind: KindShip, Handle: testHandle()}

func testHandle() engine.Handle {
	l := engine.NewList[int]()
	v := 0
	return l.Create(&v)
}

func frameAt(t float32) *Frame {
	m := config.Default()
	return &Frame{Time: t, Mission: &m}
}
