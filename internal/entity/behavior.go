package entity

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/vmath"
)

// Behavior names the flight logic layered on top of plain integration.
type Behavior int

const (
	BehaviorBallistic Behavior = iota
	BehaviorHoming
	BehaviorHoverMine
	BehaviorGunMine
	BehaviorFlare
)

type projectileBehavior interface {
	update(p *Projectile, f *Frame)
}

func newProjectileBehavior(spec *ProjectileSpec) projectileBehavior {
	switch spec.Behavior {
	case BehaviorHoming:
		return homingMissile{}
	case BehaviorHoverMine:
		return hoverMine{}
	case BehaviorGunMine:
		return gunMine{}
	case BehaviorFlare:
		return flareDrift{}
	}
	return nil
}

// homingMissile keeps a target while it stays valid and ahead, re-searches
// otherwise, and turns toward the intercept course at RotationSpeed.
type homingMissile struct{}

func (homingMissile) update(p *Projectile, f *Frame) {
	if f.Targets == nil {
		return
	}
	m := p.missile()

	locked := false
	if p.Target.IsValid() && f.Targets.CheckMissileTarget(m, p.Target) {
		if angle, ok := f.Targets.CorrectTargetInterceptCourse(m, p.Target); ok {
			p.NeedAngle = angle
			locked = true
		}
	}
	if !locked {
		if p.Target.IsValid() {
			f.Log.Trace().Stringer("target", p.Target).Msg("missile lost target")
			p.Target.Clear()
		}
		if ref, angle, ok := f.Targets.FindTargetAndInterceptCourse(m, p.MaxTargetRange); ok {
			f.Log.Trace().Stringer("target", ref).Msg("missile acquired target")
			p.Target = ref
			p.NeedAngle = angle
			locked = true
		}
	}
	if !locked {
		p.NeedAngle = p.Rotation
		return
	}
	p.turnToward(p.NeedAngle, p.RotationSpeed*p.TimeDelta)
}

// hoverMine tracks the nearest foe ship and matches its altitude, spinning
// its rotor chunk.
type hoverMine struct{}

func (hoverMine) update(p *Projectile, f *Frame) {
	spinChunk(p)

	if f.Targets == nil {
		return
	}
	ref, target, ok := f.Targets.FindNearest(p.Status, p.Location, p.MaxTargetRange, KindShip)
	if !ok {
		p.Target.Clear()
		return
	}
	p.Target = ref

	_, dy := vmath.Approach(0, target.Location.Y-p.Location.Y, p.spec.MineSpeed*p.TimeDelta)
	if dy != 0 {
		p.SetLocation(rl.Vector3Add(p.Location, rl.Vector3{Y: dy}))
	}
}

func spinChunk(p *Projectile) {
	i := p.spec.SpinChunk
	if p.spec.SpinSpeed == 0 || i < 0 || i >= len(p.Chunks) {
		return
	}
	p.Chunks[i].Rotation.Y = wrapAngle(p.Chunks[i].Rotation.Y + p.spec.SpinSpeed*p.TimeDelta)
}

// gunMine is a hover mine that shoots its child projectile along its
// orientation whenever it holds a target and has reloaded.
type gunMine struct{}

func (gunMine) update(p *Projectile, f *Frame) {
	hoverMine{}.update(p, f)

	if p.reload > 0 {
		p.reload -= p.TimeDelta
	}
	if !p.Target.IsValid() || p.reload > 0 || f.Spawner == nil {
		return
	}
	p.reload = p.spec.Reload
	if _, err := f.Spawner.SpawnProjectile(p.spec.ChildProjectileID, p.Status, p.Location, p.Rotation, f.Self); err != nil {
		f.Log.Error().Err(err).Int("mine", p.ID).Msg("gun mine fire")
	}
}

// flareDrift slows down through the speed blend and sinks.
type flareDrift struct{}

func (flareDrift) update(p *Projectile, _ *Frame) {
	if p.spec.FallSpeed == 0 {
		return
	}
	p.SetLocation(rl.Vector3Add(p.Location, rl.Vector3{Y: -p.spec.FallSpeed * p.TimeDelta}))
}
