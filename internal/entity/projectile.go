package entity

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/config"
	"astrocore/internal/vmath"
)

// ProjectileType selects how a projectile flies and what it can hit.
type ProjectileType int

const (
	ProjectileBullet ProjectileType = iota
	ProjectileMissile
	ProjectileBeam
	ProjectileFlare
	ProjectileMine
)

func (t ProjectileType) String() string {
	switch t {
	case ProjectileBullet:
		return "bullet"
	case ProjectileMissile:
		return "missile"
	case ProjectileBeam:
		return "beam"
	case ProjectileFlare:
		return "flare"
	case ProjectileMine:
		return "mine"
	}
	return "unknown"
}

// Projectile is anything fired or dropped: bullets, beams, missiles, flares
// and mines.
type Projectile struct {
	Object3D

	Type   ProjectileType
	Damage Damage

	Speed         float32
	SpeedStart    float32
	SpeedEnd      float32
	LifetimeTotal float32

	Target         Ref
	NeedAngle      rl.Vector3
	RotationSpeed  float32 // deg/s
	MaxTargetRange float32

	Owner Ref

	// Trails are the attachment points of exhaust effects; FX holds the
	// opaque graphics handles the renderer keeps for them.
	Trails []Mount
	FX     []any

	spec     *ProjectileSpec
	behavior projectileBehavior
	reload   float32
}

// NewProjectile builds projectile id from the catalog for a shooter of the
// given status. Enemy projectiles are weakened by the mission penalties. An
// unknown id yields a degenerate projectile that expires on its next update,
// together with an error wrapping ErrUnknownKind.
func NewProjectile(id int, status Status, m config.Mission) (*Projectile, error) {
	p := &Projectile{Object3D: NewObject3D(KindProjectile, status, id)}

	spec, ok := projectileCatalog[id]
	if !ok {
		p.Lifetime = 0
		return p, fmt.Errorf("projectile %d: %w", id, ErrUnknownKind)
	}
	p.spec = spec

	p.Type = spec.Type
	p.Damage = spec.Damage
	p.SpeedStart, p.SpeedEnd = spec.SpeedStart, spec.SpeedEnd
	p.Speed = spec.SpeedStart
	p.Lifetime = spec.Lifetime
	p.LifetimeTotal = spec.Lifetime
	p.RotationSpeed = spec.RotationSpeed
	p.MaxTargetRange = spec.MaxTargetRange

	if !spec.Geometry.Empty() {
		p.SetGeometry(spec.Geometry)
	} else {
		p.SetRadius(spec.Radius)
	}

	armorPenalty := float32(1)
	if status == StatusEnemy {
		weapon := config.Penalty(m.Difficulty.EnemyWeaponPenalty)
		p.Damage = p.Damage.Div(weapon)
		p.RotationSpeed /= weapon
		p.MaxTargetRange /= config.Penalty(m.Difficulty.EnemyTargetingPenalty)
		armorPenalty = config.Penalty(m.Difficulty.EnemyArmorPenalty)
	}
	p.setArmor(spec.Armor, 0, 0, armorPenalty)

	for _, t := range spec.Trails {
		p.Trails = append(p.Trails, NewMount(t))
	}
	p.behavior = newProjectileBehavior(spec)
	p.reload = spec.Reload
	return p, nil
}

// Spec returns the catalog entry the projectile was built from, nil for a
// degenerate projectile.
func (p *Projectile) Spec() *ProjectileSpec {
	return p.spec
}

// SetLocation moves the projectile and its trail mounts.
func (p *Projectile) SetLocation(v rl.Vector3) {
	p.Object3D.SetLocation(v)
	placeMounts(&p.Object3D, p.Trails)
}

// SetRotation turns the projectile and its trail mounts.
func (p *Projectile) SetRotation(delta rl.Vector3) {
	p.Object3D.SetRotation(delta)
	if delta != (rl.Vector3{}) {
		rotateMounts(&p.Object3D, p.Trails)
	}
}

// Update advances the projectile one frame.
func (p *Projectile) Update(f *Frame) bool {
	if !p.Object3D.Update(f) {
		return false
	}
	if p.TimeDelta == 0 {
		return true
	}
	start := p.Location

	p.updateSpeed()
	if p.behavior != nil {
		p.behavior.update(p, f)
	}
	if p.Type != ProjectileBeam && p.Speed != 0 {
		step := rl.Vector3Scale(p.Orientation, p.Speed*p.TimeDelta)
		p.SetLocation(rl.Vector3Add(p.Location, step))
	}

	p.endStep(start)
	return true
}

// updateSpeed blends from SpeedStart to SpeedEnd over the lifetime.
func (p *Projectile) updateSpeed() {
	if p.LifetimeTotal <= 0 || p.Lifetime == Unlimited {
		p.Speed = p.SpeedStart
		return
	}
	ratio := vmath.Clamp(p.Lifetime/p.LifetimeTotal, 0, 1)
	p.Speed = p.SpeedEnd + (p.SpeedStart-p.SpeedEnd)*ratio
}

// missile returns the targeting view of p.
func (p *Projectile) missile() Missile {
	return Missile{
		Status:      p.Status,
		Location:    p.Location,
		Rotation:    p.Rotation,
		RotationMat: p.CurrentRotationMat,
		Speed:       p.Speed,
	}
}

// turnToward rotates pitch and yaw toward angle, each by at most maxStep degrees.
func (p *Projectile) turnToward(angle rl.Vector3, maxStep float32) {
	_, dx := vmath.Approach(0, wrap180(angle.X-p.Rotation.X), maxStep)
	_, dy := vmath.Approach(0, wrap180(angle.Y-p.Rotation.Y), maxStep)
	p.SetRotation(rl.Vector3{X: dx, Y: dy})
}
