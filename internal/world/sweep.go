package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/collision"
	"astrocore/internal/engine"
	"astrocore/internal/entity"
)

// RamDamage is the kinetic damage per second of contact between two bodies.
const RamDamage = 50

// Destruction is raised when an entity is destroyed by damage. Entities that
// expire or leave the scene are not destroyed.
type Destruction struct {
	Ref      entity.Ref
	ID       int
	Status   entity.Status
	Location rl.Vector3
	By       entity.Ref // what dealt the final blow
}

// HitEvent is raised for every contact that dealt damage.
type HitEvent struct {
	Source  entity.Ref
	Target  entity.Ref
	Piece   int // hit-box or chunk of the target that was hit
	Contact rl.Vector3
	Damage  entity.Damage
}

// sweep runs all collision passes in a fixed order.
func (w *World) sweep() {
	w.projectileHits()
	w.projectileIntercepts()
	w.shipCollisions()
	w.shipSpaceCollisions()
	w.shipGroundCollisions()
}

// hittable reports whether a shot of status damages o. Neutral objects such
// as rocks are hit by everybody.
func hittable(status entity.Status, o *entity.Object3D) bool {
	return o.Status == entity.StatusNone || status.Foe(o.Status)
}

// projectileHits tests every live projectile against ships, ground objects
// and space objects.
func (w *World) projectileHits() {
	w.Projectiles.ForEachManaged(func(h engine.Handle, p *entity.Projectile) engine.Command {
		if p.Type == entity.ProjectileFlare || p.Spec() == nil {
			return engine.Continue
		}
		self := entity.Ref{Kind: entity.KindProjectile, Handle: h}

		consumed := false
		visit := func(ref entity.Ref, o *entity.Object3D) bool {
			if ref == p.Owner || !hittable(p.Status, o) {
				return true
			}
			piece, contact, ok := w.projectileContact(p, o)
			if !ok {
				return true
			}
			d := p.Damage
			if p.Type == entity.ProjectileBeam && p.LifetimeTotal > 0 {
				d = d.Mul(p.TimeDelta / p.LifetimeTotal)
			} else {
				consumed = true
			}
			w.damage(self, ref, o, piece, contact, d)
			return !consumed
		}

		forEachObject(&w.Ships, entity.KindShip, visit)
		if !consumed {
			forEachObject(&w.GroundObjects, entity.KindGroundObject, visit)
		}
		if !consumed {
			forEachObject(&w.SpaceObjects, entity.KindSpaceObject, visit)
		}
		if consumed {
			return engine.DeleteAndContinue
		}
		return engine.Continue
	})
}

// projectileContact picks the test by projectile type: point-like shots are
// swept spheres against the target mesh, bodies with hit-boxes are boxes.
func (w *World) projectileContact(p *entity.Projectile, o *entity.Object3D) (int, rl.Vector3, bool) {
	switch p.Type {
	case entity.ProjectileBeam:
		end := rl.Vector3Add(p.Location, rl.Vector3Scale(p.Orientation, p.Spec().BeamLength))
		return collision.MeshSphere(o, end, p.Location, p.Radius)
	case entity.ProjectileMissile, entity.ProjectileMine:
		if len(p.HitBB) > 0 && len(o.HitBB) > 0 {
			if !collision.Spheres(o, &p.Object3D) {
				return 0, rl.Vector3{}, false
			}
			piece, _, ok := collision.HitBBHitBB(o, &p.Object3D)
			return piece, p.Location, ok
		}
	}
	return collision.MeshSphere(o, p.Location, p.PrevLocation, p.Radius)
}

// projectileIntercepts lets bullets shoot down hostile missiles and mines.
func (w *World) projectileIntercepts() {
	w.Projectiles.ForEachManaged(func(h engine.Handle, bullet *entity.Projectile) engine.Command {
		if bullet.Type != entity.ProjectileBullet {
			return engine.Continue
		}
		self := entity.Ref{Kind: entity.KindProjectile, Handle: h}

		consumed := false
		w.Projectiles.ForEachManaged(func(th engine.Handle, t *entity.Projectile) engine.Command {
			if t.Type != entity.ProjectileMissile && t.Type != entity.ProjectileMine {
				return engine.Continue
			}
			if t.Indestructible() || !bullet.Status.Foe(t.Status) {
				return engine.Continue
			}
			piece, contact, ok := collision.MeshSphere(&t.Object3D, bullet.Location, bullet.PrevLocation, bullet.Radius)
			if !ok {
				return engine.Continue
			}
			consumed = true
			w.damage(self, entity.Ref{Kind: entity.KindProjectile, Handle: th}, &t.Object3D, piece, contact, bullet.Damage)
			return engine.Break
		})
		if consumed {
			return engine.DeleteAndContinue
		}
		return engine.Continue
	})
}

// shipCollisions rams every pair of overlapping ships. A ship destroyed by
// one contact takes part in no further pairs.
func (w *World) shipCollisions() {
	w.Ships.ForEachPair(func(ha engine.Handle, a *entity.Ship, hb engine.Handle, b *entity.Ship) engine.PairCommand {
		if !collision.Spheres(&a.Object3D, &b.Object3D) {
			return engine.PairContinue
		}
		pa, pb, ok := collision.HitBBHitBB(&a.Object3D, &b.Object3D)
		if !ok {
			return engine.PairContinue
		}
		w.ram(
			entity.Ref{Kind: entity.KindShip, Handle: ha}, &a.Object3D, pa,
			entity.Ref{Kind: entity.KindShip, Handle: hb}, &b.Object3D, pb,
		)
		return engine.PairContinue
	})
}

// shipSpaceCollisions tests ships against rocks by their OBB and against
// base parts by their hit-boxes.
func (w *World) shipSpaceCollisions() {
	w.Ships.ForEach(func(sh engine.Handle, s *entity.Ship) {
		ship := entity.Ref{Kind: entity.KindShip, Handle: sh}
		w.SpaceObjects.ForEach(func(oh engine.Handle, o *entity.SpaceObject) {
			if !w.Ships.Alive(sh) || !collision.Spheres(&s.Object3D, &o.Object3D) {
				return
			}
			var piece, other int
			var ok bool
			if o.Class == entity.SpaceBasePart {
				piece, other, ok = collision.HitBBHitBB(&s.Object3D, &o.Object3D)
			} else {
				piece, ok = collision.HitBBOBB(&s.Object3D, &o.Object3D)
			}
			if ok {
				w.ram(ship, &s.Object3D, piece, entity.Ref{Kind: entity.KindSpaceObject, Handle: oh}, &o.Object3D, other)
			}
		})
	})
}

// shipGroundCollisions tests ship hit-boxes against ground meshes.
func (w *World) shipGroundCollisions() {
	w.Ships.ForEach(func(sh engine.Handle, s *entity.Ship) {
		ship := entity.Ref{Kind: entity.KindShip, Handle: sh}
		w.GroundObjects.ForEach(func(gh engine.Handle, g *entity.GroundObject) {
			if !w.Ships.Alive(sh) || !collision.Spheres(&s.Object3D, &g.Object3D) {
				return
			}
			if piece, ok := collision.HitBBMesh(&s.Object3D, &g.Object3D); ok {
				w.ram(ship, &s.Object3D, piece, entity.Ref{Kind: entity.KindGroundObject, Handle: gh}, &g.Object3D, 0)
			}
		})
	})
}

// ram damages both sides of a contact by RamDamage scaled to the frame time.
// The first frame deals nothing.
func (w *World) ram(ra entity.Ref, a *entity.Object3D, pa int, rb entity.Ref, b *entity.Object3D, pb int) {
	dt := w.dt()
	if dt <= 0 || !w.bothAlive(ra, rb) {
		return
	}
	d := entity.NewDamage(RamDamage*dt, 0)
	contact := rl.Vector3Scale(rl.Vector3Add(a.Location, b.Location), 0.5)
	w.damage(rb, ra, a, pa, contact, d)
	w.damage(ra, rb, b, pb, contact, d)
}

// bothAlive reports whether neither side of a contact has been destroyed.
func (w *World) bothAlive(ra, rb entity.Ref) bool {
	_, okA := w.Resolve(ra)
	_, okB := w.Resolve(rb)
	return okA && okB
}

// damage applies d to o, raises Hit, and destroys o when its armor runs out.
func (w *World) damage(source, target entity.Ref, o *entity.Object3D, piece int, contact rl.Vector3, d entity.Damage) {
	if _, alive := w.Resolve(target); !alive {
		return
	}
	destroyed := o.ApplyDamage(d)
	w.Hit.Invoke(HitEvent{Source: source, Target: target, Piece: piece, Contact: contact, Damage: d})
	if destroyed {
		w.destroy(target, o, source)
	}
}

func (w *World) destroy(ref entity.Ref, o *entity.Object3D, by entity.Ref) {
	if err := w.Release(ref); err != nil {
		return
	}
	w.Log.Debug().Stringer("ref", ref).Int("id", o.ID).Stringer("status", o.Status).Stringer("by", by).Msg("destroyed")
	w.play("explosion")
	w.Destroyed.Invoke(Destruction{Ref: ref, ID: o.ID, Status: o.Status, Location: o.Location, By: by})
}
