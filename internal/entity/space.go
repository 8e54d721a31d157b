package entity

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/config"
)

// SpaceClass groups space objects.
type SpaceClass int

const (
	SpaceAsteroid SpaceClass = iota
	SpaceBigAsteroid
	SpaceDebris
	SpaceBasePart
	SpacePlanet
)

func (c SpaceClass) String() string {
	switch c {
	case SpaceAsteroid:
		return "asteroid"
	case SpaceBigAsteroid:
		return "big_asteroid"
	case SpaceDebris:
		return "debris"
	case SpaceBasePart:
		return "base_part"
	case SpacePlanet:
		return "planet"
	}
	return "unknown"
}

// SpaceSpec is one space catalog entry.
type SpaceSpec struct {
	Name     string
	Class    SpaceClass
	Geometry Geometry
	Armor    float32
	Spin     rl.Vector3 // deg/s
	Emitters []rl.Vector3
}

// SpaceObject is an asteroid, piece of debris, space base part or planet.
type SpaceObject struct {
	Object3D

	Class SpaceClass
	Spin  rl.Vector3 // deg/s
	Drift rl.Vector3 // units/s

	// Emitters are particle emitter attachment points, kept in step with
	// the body like ship engines.
	Emitters []Mount

	spec *SpaceSpec
}

// NewSpaceObject builds space object id from the catalog.
func NewSpaceObject(id int, status Status, m config.Mission) (*SpaceObject, error) {
	s := &SpaceObject{Object3D: NewObject3D(KindSpaceObject, status, id)}

	spec, ok := spaceCatalog[id]
	if !ok {
		return s, fmt.Errorf("space object %d: %w", id, ErrUnknownKind)
	}
	s.spec = spec
	s.Class = spec.Class
	s.Spin = spec.Spin
	s.SetGeometry(spec.Geometry)

	penalty := float32(1)
	if status == StatusEnemy {
		penalty = config.Penalty(m.Difficulty.EnemyArmorPenalty)
	}
	s.setArmor(spec.Armor, 0, 0, penalty)

	for _, e := range spec.Emitters {
		s.Emitters = append(s.Emitters, NewMount(e))
	}
	return s, nil
}

// Spec returns the catalog entry, nil for a degenerate object.
func (s *SpaceObject) Spec() *SpaceSpec {
	return s.spec
}

// Targetable reports whether homing missiles may lock onto s.
func (s *SpaceObject) Targetable() bool {
	return s.Class != SpaceDebris
}

// SetLocation moves the object and its emitters.
func (s *SpaceObject) SetLocation(v rl.Vector3) {
	s.Object3D.SetLocation(v)
	placeMounts(&s.Object3D, s.Emitters)
}

// SetRotation turns the object and its emitters.
func (s *SpaceObject) SetRotation(delta rl.Vector3) {
	if delta == (rl.Vector3{}) {
		return
	}
	s.Object3D.SetRotation(delta)
	rotateMounts(&s.Object3D, s.Emitters)
}

// Update spins and drifts the object.
func (s *SpaceObject) Update(f *Frame) bool {
	if !s.Object3D.Update(f) {
		return false
	}
	if s.TimeDelta == 0 {
		return true
	}
	start := s.Location

	s.SetRotation(rl.Vector3Scale(s.Spin, s.TimeDelta))
	if s.Drift != (rl.Vector3{}) {
		s.SetLocation(rl.Vector3Add(s.Location, rl.Vector3Scale(s.Drift, s.TimeDelta)))
	}
	s.endStep(start)
	return true
}

var spaceCatalog = map[int]*SpaceSpec{
	1: {
		Name:     "small asteroid",
		Class:    SpaceAsteroid,
		Armor:    50,
		Spin:     rl.Vector3{Y: 20, Z: 10},
		Geometry: OctaGeometry("rock", 2),
	},
	2: {
		Name:     "asteroid",
		Class:    SpaceAsteroid,
		Armor:    120,
		Spin:     rl.Vector3{X: 8, Y: 12},
		Geometry: OctaGeometry("rock", 4),
	},
	3: {
		Name:     "big asteroid",
		Class:    SpaceBigAsteroid,
		Spin:     rl.Vector3{Y: 3},
		Geometry: OctaGeometry("rock", 12),
	},
	11: {
		Name:     "debris",
		Class:    SpaceDebris,
		Armor:    5,
		Spin:     rl.Vector3{X: 45, Y: 30},
		Geometry: BoxGeometry(BoxPart{Name: "plate", Size: rl.Vector3{X: 1.5, Y: 0.2, Z: 1}}),
	},
	21: {
		Name:  "base hub",
		Class: SpaceBasePart,
		Geometry: BoxGeometry(
			BoxPart{Name: "core", Size: rl.Vector3{X: 20, Y: 20, Z: 20}},
			BoxPart{Name: "dock", Location: rl.Vector3{Z: 14}, Size: rl.Vector3{X: 8, Y: 8, Z: 8}},
		),
		Emitters: []rl.Vector3{{X: 10, Y: 10, Z: 10}, {X: -10, Y: 10, Z: 10}},
	},
	22: {
		Name:  "base arm",
		Class: SpaceBasePart,
		Armor: 600,
		Geometry: BoxGeometry(
			BoxPart{Name: "truss", Size: rl.Vector3{X: 4, Y: 4, Z: 30}},
			BoxPart{Name: "panel", Location: rl.Vector3{X: 6, Z: 10}, Size: rl.Vector3{X: 8, Y: 0.5, Z: 6}},
		),
		Emitters: []rl.Vector3{{Z: 15}},
	},
	23: {
		Name:  "base antenna",
		Class: SpaceBasePart,
		Armor: 200,
		Spin:  rl.Vector3{Y: 10},
		Geometry: BoxGeometry(
			BoxPart{Name: "mast", Size: rl.Vector3{X: 1, Y: 12, Z: 1}},
			BoxPart{Name: "dish", Location: rl.Vector3{Y: 6}, Size: rl.Vector3{X: 6, Y: 1, Z: 6}},
		),
		Emitters: []rl.Vector3{{Y: 6.5}},
	},
	31: {
		Name:     "planetoid",
		Class:    SpacePlanet,
		Spin:     rl.Vector3{Y: 2},
		Geometry: OctaGeometry("surface", 60),
	},
}

// SpaceIDs returns the catalog ids in ascending order.
func SpaceIDs() []int {
	return sortedKeys(spaceCatalog)
}
