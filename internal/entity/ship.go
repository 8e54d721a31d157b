package entity

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/config"
)

// lowArmorLevel is the armor fraction below which a player ship warns.
const lowArmorLevel = 0.2

// WeaponSlot is a mount that fires one projectile type.
type WeaponSlot struct {
	Mount
	ProjectileID int
	Reload       float32 // seconds between shots
	cooldown     float32
}

// Ready reports whether the weapon has reloaded.
func (w *WeaponSlot) Ready() bool {
	return w.cooldown <= 0
}

// Ship is a flying craft driven by time sheets.
type Ship struct {
	Object3D

	Speed    float32
	MaxSpeed float32

	Engines []Mount
	Weapons []WeaponSlot

	spec           *ShipSpec
	lowArmorWarned bool
}

// NewShip builds ship id from the catalog. Enemy ships get their armor and
// shield divided by the armor penalty. An unknown id yields a degenerate,
// indestructible ship together with an error wrapping ErrUnknownKind.
func NewShip(id int, status Status, m config.Mission) (*Ship, error) {
	s := &Ship{Object3D: NewObject3D(KindShip, status, id)}

	spec, ok := shipCatalog[id]
	if !ok {
		return s, fmt.Errorf("ship %d: %w", id, ErrUnknownKind)
	}
	s.spec = spec
	s.SetGeometry(spec.Geometry)

	penalty := float32(1)
	if status == StatusEnemy {
		penalty = config.Penalty(m.Difficulty.EnemyArmorPenalty)
	}
	s.setArmor(spec.Armor, spec.Shield, spec.ShieldRecharge, penalty)
	s.MaxSpeed = spec.MaxSpeed

	for _, e := range spec.Engines {
		s.Engines = append(s.Engines, NewMount(e))
	}
	for _, w := range spec.Weapons {
		s.Weapons = append(s.Weapons, WeaponSlot{
			Mount:        NewMount(w.Location),
			ProjectileID: w.ProjectileID,
			Reload:       w.Reload,
		})
	}
	return s, nil
}

// Spec returns the catalog entry, nil for a degenerate ship.
func (s *Ship) Spec() *ShipSpec {
	return s.spec
}

// SetLocation moves the ship and every mount.
func (s *Ship) SetLocation(v rl.Vector3) {
	s.Object3D.SetLocation(v)
	placeMounts(&s.Object3D, s.Engines)
	for i := range s.Weapons {
		s.Weapons[i].place(&s.Object3D)
	}
}

// SetRotation turns the ship and every mount.
func (s *Ship) SetRotation(delta rl.Vector3) {
	if delta == (rl.Vector3{}) {
		return
	}
	s.Object3D.SetRotation(delta)
	rotateMounts(&s.Object3D, s.Engines)
	for i := range s.Weapons {
		s.Weapons[i].rotate(&s.Object3D)
	}
}

// Update advances the ship along its time sheets.
func (s *Ship) Update(f *Frame) bool {
	if !s.Object3D.Update(f) {
		return false
	}
	if s.TimeDelta == 0 {
		return true
	}
	start := s.Location

	for i := range s.Weapons {
		if s.Weapons[i].cooldown > 0 {
			s.Weapons[i].cooldown -= s.TimeDelta
		}
	}

	rot, fire := s.runTimeSheet(&s.Speed)
	if s.MaxSpeed > 0 {
		s.Speed = min(s.Speed, s.MaxSpeed)
	}
	s.SetRotation(rot)
	if s.Speed != 0 {
		s.SetLocation(rl.Vector3Add(s.Location, rl.Vector3Scale(s.Orientation, s.Speed*s.TimeDelta)))
	}
	s.endStep(start)

	if fire {
		s.Fire(f)
	}
	s.checkLowArmor(f)
	return true
}

// Fire shoots every reloaded weapon. It returns the number of shots.
func (s *Ship) Fire(f *Frame) int {
	if f.Spawner == nil {
		return 0
	}
	shots := 0
	for i := range s.Weapons {
		w := &s.Weapons[i]
		if !w.Ready() {
			continue
		}
		w.cooldown = w.Reload
		if _, err := f.Spawner.SpawnProjectile(w.ProjectileID, s.Status, w.Location, s.Rotation, f.Self); err != nil {
			f.Log.Error().Err(err).Int("ship", s.ID).Int("slot", i).Msg("weapon fire")
			continue
		}
		shots++
	}
	return shots
}

func (s *Ship) checkLowArmor(f *Frame) {
	if s.Status != StatusPlayer || s.Indestructible() {
		return
	}
	low := s.ArmorCurrent < s.ArmorInitial*lowArmorLevel
	if low && !s.lowArmorWarned {
		f.play("warning_low_armor")
	}
	s.lowArmorWarned = low
}
