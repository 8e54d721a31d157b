package entity

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/config"
	"astrocore/internal/vmath"
)

// GroundClass groups ground objects by how they behave.
type GroundClass int

const (
	GroundBuilding GroundClass = iota
	GroundTurret
	GroundVehicle
)

// TurretSpec arms a ground object with an aimed weapon.
type TurretSpec struct {
	Chunk        int // chunk index that turns toward the target
	ProjectileID int
	Reload       float32
	TurnSpeed    float32 // deg/s
	Range        float32
	Muzzle       rl.Vector3 // barrel tip, in chunk space
}

// GroundSpec is one ground catalog entry.
type GroundSpec struct {
	Name     string
	Class    GroundClass
	Geometry Geometry
	Armor    float32
	MaxSpeed float32
	Turret   *TurretSpec
}

// Turret aims one chunk of its ground object at the nearest foe ship and
// fires when lined up.
type Turret struct {
	TurretSpec
	Aim      rl.Vector3 // world pitch/yaw the barrel points at, degrees
	Target   Ref
	cooldown float32
}

// GroundObject is a building, turret or vehicle.
type GroundObject struct {
	Object3D

	Class  GroundClass
	Speed  float32
	Turret *Turret

	spec *GroundSpec
}

// NewGroundObject builds ground object id from the catalog.
func NewGroundObject(id int, status Status, m config.Mission) (*GroundObject, error) {
	g := &GroundObject{Object3D: NewObject3D(KindGroundObject, status, id)}

	spec, ok := groundCatalog[id]
	if !ok {
		return g, fmt.Errorf("ground object %d: %w", id, ErrUnknownKind)
	}
	g.spec = spec
	g.Class = spec.Class
	g.SetGeometry(spec.Geometry)

	penalty := float32(1)
	if status == StatusEnemy {
		penalty = config.Penalty(m.Difficulty.EnemyArmorPenalty)
	}
	g.setArmor(spec.Armor, 0, 0, penalty)

	if spec.Turret != nil {
		g.Turret = &Turret{TurretSpec: *spec.Turret}
	}
	return g, nil
}

// Spec returns the catalog entry, nil for a degenerate object.
func (g *GroundObject) Spec() *GroundSpec {
	return g.spec
}

// Update moves vehicles along their time sheets and runs the turret.
func (g *GroundObject) Update(f *Frame) bool {
	if !g.Object3D.Update(f) {
		return false
	}
	if g.TimeDelta == 0 {
		return true
	}
	start := g.Location

	rot, fire := g.runTimeSheet(&g.Speed)
	if g.Class == GroundVehicle {
		if g.spec != nil && g.spec.MaxSpeed > 0 {
			g.Speed = min(g.Speed, g.spec.MaxSpeed)
		}
		g.SetRotation(rot)
		if g.Speed != 0 {
			g.SetLocation(rl.Vector3Add(g.Location, rl.Vector3Scale(g.Orientation, g.Speed*g.TimeDelta)))
		}
	}
	g.endStep(start)

	if g.Turret != nil {
		g.updateTurret(f, fire || len(g.TimeSheets) == 0)
	}
	return true
}

func (g *GroundObject) updateTurret(f *Frame, allowFire bool) {
	t := g.Turret
	if t.cooldown > 0 {
		t.cooldown -= g.TimeDelta
	}
	if f.Targets == nil || t.Chunk >= len(g.Chunks) {
		return
	}

	rot, origin := g.ChunkTransform(t.Chunk)
	muzzle := rl.Vector3Add(origin, rot.Apply(t.Muzzle))

	ref, target, ok := f.Targets.FindNearest(g.Status, muzzle, t.Range, KindShip)
	if !ok {
		t.Target.Clear()
		return
	}
	t.Target = ref

	want := aimAngles(rl.Vector3Subtract(target.Location, muzzle))
	step := t.TurnSpeed * g.TimeDelta
	_, dx := vmath.Approach(0, wrap180(want.X-t.Aim.X), step)
	_, dy := vmath.Approach(0, wrap180(want.Y-t.Aim.Y), step)
	t.Aim.X = wrapAngle(t.Aim.X + dx)
	t.Aim.Y = wrapAngle(t.Aim.Y + dy)

	// Chunk rotation is relative to the body; only body yaw is compensated.
	g.Chunks[t.Chunk].Rotation = rl.Vector3{X: t.Aim.X, Y: wrap180(t.Aim.Y - g.Rotation.Y)}

	lined := vmath.Abs(wrap180(want.X-t.Aim.X)) < 2 && vmath.Abs(wrap180(want.Y-t.Aim.Y)) < 2
	if !allowFire || !lined || t.cooldown > 0 || f.Spawner == nil {
		return
	}
	t.cooldown = t.Reload
	if _, err := f.Spawner.SpawnProjectile(t.ProjectileID, g.Status, muzzle, t.Aim, f.Self); err != nil {
		f.Log.Error().Err(err).Int("ground", g.ID).Msg("turret fire")
	}
}

// aimAngles returns the pitch and yaw, in degrees, that make the forward
// axis point along d.
func aimAngles(d rl.Vector3) rl.Vector3 {
	horiz := math.Hypot(float64(d.X), float64(d.Z))
	return rl.Vector3{
		X: float32(-math.Atan2(float64(d.Y), horiz) * rl.Rad2deg),
		Y: float32(math.Atan2(float64(d.X), float64(d.Z)) * rl.Rad2deg),
	}
}

var groundCatalog = map[int]*GroundSpec{
	1: {
		Name:  "bunker",
		Class: GroundBuilding,
		Armor: 400,
		Geometry: BoxGeometry(
			BoxPart{Name: "base", Size: rl.Vector3{X: 8, Y: 3, Z: 8}},
			BoxPart{Name: "dome", Location: rl.Vector3{Y: 2}, Size: rl.Vector3{X: 4, Y: 1.5, Z: 4}},
		),
	},
	2: {
		Name:  "hangar",
		Class: GroundBuilding,
		Geometry: BoxGeometry(
			BoxPart{Name: "hall", Size: rl.Vector3{X: 20, Y: 6, Z: 12}},
		),
	},
	11: {
		Name:  "flak turret",
		Class: GroundTurret,
		Armor: 150,
		Geometry: BoxGeometry(
			BoxPart{Name: "base", Size: rl.Vector3{X: 3, Y: 1.5, Z: 3}},
			BoxPart{Name: "barrel", Location: rl.Vector3{Y: 1.5}, Size: rl.Vector3{X: 0.6, Y: 0.6, Z: 3}},
		),
		Turret: &TurretSpec{Chunk: 1, ProjectileID: 2, Reload: 0.8, TurnSpeed: 60, Range: 250, Muzzle: rl.Vector3{Z: 1.6}},
	},
	12: {
		Name:  "missile turret",
		Class: GroundTurret,
		Armor: 200,
		Geometry: BoxGeometry(
			BoxPart{Name: "base", Size: rl.Vector3{X: 4, Y: 2, Z: 4}},
			BoxPart{Name: "launcher", Location: rl.Vector3{Y: 2}, Size: rl.Vector3{X: 2, Y: 1, Z: 2.5}},
		),
		Turret: &TurretSpec{Chunk: 1, ProjectileID: 11, Reload: 5, TurnSpeed: 30, Range: 350, Muzzle: rl.Vector3{Z: 1.4}},
	},
	21: {
		Name:     "tank",
		Class:    GroundVehicle,
		Armor:    180,
		MaxSpeed: 8,
		Geometry: BoxGeometry(
			BoxPart{Name: "hull", Size: rl.Vector3{X: 3, Y: 1.2, Z: 5}},
			BoxPart{Name: "gun", Location: rl.Vector3{Y: 1.1}, Size: rl.Vector3{X: 0.5, Y: 0.5, Z: 3}},
		),
		Turret: &TurretSpec{Chunk: 1, ProjectileID: 3, Reload: 1.5, TurnSpeed: 45, Range: 200, Muzzle: rl.Vector3{Z: 1.6}},
	},
	22: {
		Name:     "transport",
		Class:    GroundVehicle,
		Armor:    90,
		MaxSpeed: 12,
		Geometry: BoxGeometry(
			BoxPart{Name: "cab", Location: rl.Vector3{Z: 2}, Size: rl.Vector3{X: 2.5, Y: 2, Z: 2}},
			BoxPart{Name: "cargo", Location: rl.Vector3{Z: -1}, Size: rl.Vector3{X: 2.5, Y: 2.5, Z: 4}},
		),
	},
}

// GroundIDs returns the catalog ids in ascending order.
func GroundIDs() []int {
	return sortedKeys(groundCatalog)
}
