package entity

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/vmath"
)

// Mount is a point attached to an entity body: engine nozzles, weapon
// barrels, particle emitters.
type Mount struct {
	Local     rl.Vector3 // entity space
	Location  rl.Vector3 // world space
	Direction rl.Vector3 // world space, unit
}

// NewMount returns a mount at local pointing along entity forward.
func NewMount(local rl.Vector3) Mount {
	return Mount{Local: local, Location: local, Direction: vmath.Forward}
}

func (m *Mount) place(o *Object3D) {
	m.Location = rl.Vector3Add(o.Location, o.CurrentRotationMat.Apply(m.Local))
}

// rotate applies the last rotation increment: back through the old inverse,
// then forward through the current matrix.
func (m *Mount) rotate(o *Object3D) {
	m.Direction = o.CurrentRotationMat.Apply(o.OldInvRotationMat.Apply(m.Direction))
	m.place(o)
}

func placeMounts(o *Object3D, mounts []Mount) {
	for i := range mounts {
		mounts[i].place(o)
	}
}

func rotateMounts(o *Object3D, mounts []Mount) {
	for i := range mounts {
		mounts[i].rotate(o)
	}
}
