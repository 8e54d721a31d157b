// Package entity holds the simulated objects of a mission: ships, projectiles,
// ground objects and space objects, their geometry, bounding volumes and per-frame
// update rules.
//
// Entities never reach into other entities directly. Everything that needs the
// rest of the world (target search, spawning, sound, visibility) comes in
// through the Frame passed to Update.
package entity

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/engine"
)

// ErrUnknownKind is returned by constructors given a catalog id that does not exist.
var ErrUnknownKind = errors.New("unknown catalog id")

// Kind identifies which ownership list an entity lives in.
type Kind int

const (
	KindProjectile Kind = iota
	KindSpaceObject
	KindGroundObject
	KindShip
)

func (k Kind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindSpaceObject:
		return "space_object"
	case KindGroundObject:
		return "ground_object"
	case KindShip:
		return "ship"
	}
	return "unknown"
}

// Status is the faction of an entity.
type Status int

const (
	StatusNone Status = iota
	StatusEnemy
	StatusAlly
	StatusPlayer
)

func (s Status) String() string {
	switch s {
	case StatusEnemy:
		return "enemy"
	case StatusAlly:
		return "ally"
	case StatusPlayer:
		return "player"
	}
	return "none"
}

// Foe reports whether an entity of status s treats other as hostile.
// Allies and the player share a side; neutral entities are nobody's foe.
func (s Status) Foe(other Status) bool {
	switch s {
	case StatusEnemy:
		return other == StatusAlly || other == StatusPlayer
	case StatusAlly, StatusPlayer:
		return other == StatusEnemy
	}
	return false
}

// Ref is a non-owning reference to an entity in any of the ownership lists.
type Ref struct {
	Kind   Kind
	Handle engine.Handle
}

// IsValid reports whether the reference points at something. The referent may
// still be gone; resolve it before use.
func (r Ref) IsValid() bool {
	return r.Handle.IsValid()
}

// Clear empties the reference.
func (r *Ref) Clear() {
	*r = Ref{}
}

func (r Ref) String() string {
	return r.Kind.String() + ":" + r.Handle.String()
}

// Entity is implemented by every kind. Kinds override SetLocation and
// SetRotation to keep attached mounts in step with the body.
type Entity interface {
	Object() *Object3D
	Update(f *Frame) bool
	SetLocation(v rl.Vector3)
	SetRotation(delta rl.Vector3)
}
