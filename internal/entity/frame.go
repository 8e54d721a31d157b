package entity

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"astrocore/internal/config"
	"astrocore/internal/vmath"
)

// Visibility answers whether a bounding sphere is inside the rendered scene.
type Visibility interface {
	Visible(center rl.Vector3, radius float32) bool
}

// Missile is the view of a homing projectile the target finder works on.
type Missile struct {
	Status      Status
	Location    rl.Vector3
	Rotation    rl.Vector3
	RotationMat vmath.Mat33
	Speed       float32
}

// TargetFinder searches and tracks homing targets.
type TargetFinder interface {
	FindTargetAndInterceptCourse(m Missile, maxDistance float32) (Ref, rl.Vector3, bool)
	CorrectTargetInterceptCourse(m Missile, target Ref) (rl.Vector3, bool)
	CheckMissileTarget(m Missile, target Ref) bool
	FindNearest(status Status, location rl.Vector3, maxDistance float32, kinds ...Kind) (Ref, *Object3D, bool)
}

// Spawner creates projectiles on behalf of weapons and gun mines.
type Spawner interface {
	SpawnProjectile(id int, status Status, location, rotation rl.Vector3, owner Ref) (Ref, error)
}

// SoundPlayer plays a named sound and forgets about it.
type SoundPlayer interface {
	Play(name string)
}

// Frame carries the time and collaborators of one simulation step. Nil
// collaborators have no effect; a nil View treats everything as visible.
type Frame struct {
	Time    float32
	Mission *config.Mission
	View    Visibility
	Targets TargetFinder
	Spawner Spawner
	Sounds  SoundPlayer
	Log     zerolog.Logger

	// Self is the reference of the entity being updated, set by the
	// owning list before each Update.
	Self Ref
}

func (f *Frame) visible(o *Object3D) bool {
	if f.View == nil {
		return true
	}
	return f.View.Visible(o.Location, o.Radius)
}

func (f *Frame) mission() config.Mission {
	if f.Mission == nil {
		return config.Default()
	}
	return *f.Mission
}

func (f *Frame) leaveSceneDelay() float32 {
	return f.mission().Scene.LeaveSceneDelay
}

func (f *Frame) play(name string) {
	if f.Sounds != nil {
		f.Sounds.Play(name)
	}
}
