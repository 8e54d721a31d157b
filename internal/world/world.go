// Package world owns every live entity of a mission. It runs the frame step
// across the four ownership lists, then the collision sweep, and is the
// target source homing projectiles search.
package world

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"astrocore/internal/config"
	"astrocore/internal/engine"
	"astrocore/internal/entity"
	"astrocore/internal/targeting"
)

// ErrStaleHandle is returned when a reference no longer resolves.
var ErrStaleHandle = errors.New("stale entity handle")

// World holds the ownership lists and the collaborators passed to every
// entity update. It is not safe for concurrent use.
type World struct {
	Projectiles   engine.List[entity.Projectile]
	SpaceObjects  engine.List[entity.SpaceObject]
	GroundObjects engine.List[entity.GroundObject]
	Ships         engine.List[entity.Ship]

	Mission config.Mission
	Log     zerolog.Logger
	View    entity.Visibility  // nil treats everything as visible
	Sounds  entity.SoundPlayer // nil is silent

	Destroyed engine.Event[Destruction]
	Hit       engine.Event[HitEvent]

	targets  *targeting.Finder
	time     float32
	lastTime float32
	started  bool
}

var (
	_ targeting.Source = (*World)(nil)
	_ entity.Spawner   = (*World)(nil)
)

// New creates an empty world for one mission.
func New(m config.Mission, log zerolog.Logger) *World {
	w := &World{Mission: m, Log: log}
	w.targets = &targeting.Finder{Source: w, Log: log}
	return w
}

// Targets returns the target finder handed to homing projectiles and mines.
func (w *World) Targets() *targeting.Finder {
	return w.targets
}

// Time returns the time of the last Update.
func (w *World) Time() float32 {
	return w.time
}

func (w *World) created(kind entity.Kind, id int, err error) {
	if err != nil {
		w.Log.Error().Err(err).Stringer("kind", kind).Int("id", id).Msg("create")
	}
}

// CreateProjectile builds projectile id and takes ownership of it. An unknown
// id still yields a handle to a degenerate projectile, together with the error.
func (w *World) CreateProjectile(id int, status entity.Status) (entity.Ref, error) {
	p, err := entity.NewProjectile(id, status, w.Mission)
	w.created(entity.KindProjectile, id, err)
	return entity.Ref{Kind: entity.KindProjectile, Handle: w.Projectiles.Create(p)}, err
}

// CreateShip builds ship id and takes ownership of it.
func (w *World) CreateShip(id int, status entity.Status) (entity.Ref, error) {
	s, err := entity.NewShip(id, status, w.Mission)
	w.created(entity.KindShip, id, err)
	return entity.Ref{Kind: entity.KindShip, Handle: w.Ships.Create(s)}, err
}

// CreateGroundObject builds ground object id and takes ownership of it.
func (w *World) CreateGroundObject(id int, status entity.Status) (entity.Ref, error) {
	g, err := entity.NewGroundObject(id, status, w.Mission)
	w.created(entity.KindGroundObject, id, err)
	return entity.Ref{Kind: entity.KindGroundObject, Handle: w.GroundObjects.Create(g)}, err
}

// CreateSpaceObject builds space object id and takes ownership of it.
func (w *World) CreateSpaceObject(id int, status entity.Status) (entity.Ref, error) {
	s, err := entity.NewSpaceObject(id, status, w.Mission)
	w.created(entity.KindSpaceObject, id, err)
	return entity.Ref{Kind: entity.KindSpaceObject, Handle: w.SpaceObjects.Create(s)}, err
}

// Create dispatches to the factory of kind.
func (w *World) Create(kind entity.Kind, id int, status entity.Status) (entity.Ref, error) {
	switch kind {
	case entity.KindProjectile:
		return w.CreateProjectile(id, status)
	case entity.KindShip:
		return w.CreateShip(id, status)
	case entity.KindGroundObject:
		return w.CreateGroundObject(id, status)
	case entity.KindSpaceObject:
		return w.CreateSpaceObject(id, status)
	}
	return entity.Ref{}, fmt.Errorf("kind %d: %w", kind, entity.ErrUnknownKind)
}

// SpawnProjectile creates projectile id at location, turned by rotation, and
// records owner so the shot never hits whoever fired it.
func (w *World) SpawnProjectile(id int, status entity.Status, location, rotation rl.Vector3, owner entity.Ref) (entity.Ref, error) {
	ref, err := w.CreateProjectile(id, status)
	if err != nil {
		return ref, err
	}
	p, _ := w.Projectiles.Get(ref.Handle)
	p.SetRotation(rotation)
	p.SetLocation(location)
	p.Owner = owner
	if spec := p.Spec(); spec.Sound != "" {
		w.play(spec.Sound)
	}
	return ref, nil
}

// Entity resolves ref to the live entity it names.
func (w *World) Entity(ref entity.Ref) (entity.Entity, bool) {
	switch ref.Kind {
	case entity.KindProjectile:
		if p, ok := w.Projectiles.Get(ref.Handle); ok {
			return p, true
		}
	case entity.KindShip:
		if s, ok := w.Ships.Get(ref.Handle); ok {
			return s, true
		}
	case entity.KindGroundObject:
		if g, ok := w.GroundObjects.Get(ref.Handle); ok {
			return g, true
		}
	case entity.KindSpaceObject:
		if s, ok := w.SpaceObjects.Get(ref.Handle); ok {
			return s, true
		}
	}
	return nil, false
}

// Resolve returns the shared state of ref, or false once it is gone.
func (w *World) Resolve(ref entity.Ref) (*entity.Object3D, bool) {
	e, ok := w.Entity(ref)
	if !ok {
		return nil, false
	}
	return e.Object(), true
}

// Release erases the entity ref names. Releasing during an update or the
// collision sweep is safe.
func (w *World) Release(ref entity.Ref) error {
	var ok bool
	switch ref.Kind {
	case entity.KindProjectile:
		ok = w.Projectiles.Release(ref.Handle)
	case entity.KindShip:
		ok = w.Ships.Release(ref.Handle)
	case entity.KindGroundObject:
		ok = w.GroundObjects.Release(ref.Handle)
	case entity.KindSpaceObject:
		ok = w.SpaceObjects.Release(ref.Handle)
	}
	if !ok {
		return fmt.Errorf("release %s: %w", ref, ErrStaleHandle)
	}
	return nil
}

// ReleaseAll empties every list.
func (w *World) ReleaseAll() {
	w.Projectiles.ReleaseAll()
	w.SpaceObjects.ReleaseAll()
	w.GroundObjects.ReleaseAll()
	w.Ships.ReleaseAll()
}

// Count returns the number of live entities of kind.
func (w *World) Count(kind entity.Kind) int {
	switch kind {
	case entity.KindProjectile:
		return w.Projectiles.Len()
	case entity.KindShip:
		return w.Ships.Len()
	case entity.KindGroundObject:
		return w.GroundObjects.Len()
	case entity.KindSpaceObject:
		return w.SpaceObjects.Len()
	}
	return 0
}

// HasLivingFoes reports whether any ship or ground object hostile to status
// is still alive. Projectiles and space objects do not count.
func (w *World) HasLivingFoes(status entity.Status) bool {
	found := false
	stop := func(_ entity.Ref, o *entity.Object3D) bool {
		found = status.Foe(o.Status)
		return !found
	}
	forEachObject(&w.Ships, entity.KindShip, stop)
	if !found {
		forEachObject(&w.GroundObjects, entity.KindGroundObject, stop)
	}
	return found
}

// Candidates implements targeting.Source.
func (w *World) Candidates(c targeting.Class, fn func(entity.Ref, *entity.Object3D) bool) {
	switch c {
	case targeting.ClassFlare:
		w.Projectiles.ForEachManaged(func(h engine.Handle, p *entity.Projectile) engine.Command {
			if p.Type != entity.ProjectileFlare {
				return engine.Continue
			}
			if !fn(entity.Ref{Kind: entity.KindProjectile, Handle: h}, &p.Object3D) {
				return engine.Break
			}
			return engine.Continue
		})
	case targeting.ClassGround:
		forEachObject(&w.GroundObjects, entity.KindGroundObject, fn)
	case targeting.ClassShip:
		forEachObject(&w.Ships, entity.KindShip, fn)
	case targeting.ClassSpace:
		w.SpaceObjects.ForEachManaged(func(h engine.Handle, s *entity.SpaceObject) engine.Command {
			if !s.Targetable() {
				return engine.Continue
			}
			if !fn(entity.Ref{Kind: entity.KindSpaceObject, Handle: h}, &s.Object3D) {
				return engine.Break
			}
			return engine.Continue
		})
	}
}

// object is satisfied by a pointer to any entity kind.
type object[T any] interface {
	*T
	Object() *entity.Object3D
}

// forEachObject visits the shared state of every entry of l until fn returns false.
func forEachObject[T any, P object[T]](l *engine.List[T], kind entity.Kind, fn func(entity.Ref, *entity.Object3D) bool) {
	l.ForEachManaged(func(h engine.Handle, item *T) engine.Command {
		if !fn(entity.Ref{Kind: kind, Handle: h}, P(item).Object()) {
			return engine.Break
		}
		return engine.Continue
	})
}

// Update advances every entity to time, ships first and projectiles last,
// then runs the collision sweep on the settled positions. Entities whose
// update reports death are erased.
func (w *World) Update(time float32) {
	if w.started {
		w.lastTime = w.time
	} else {
		w.lastTime = time
		w.started = true
	}
	w.time = time

	f := &entity.Frame{
		Time:    time,
		Mission: &w.Mission,
		View:    w.View,
		Targets: w.targets,
		Spawner: w,
		Sounds:  w.Sounds,
		Log:     w.Log,
	}
	updateList(w, &w.Ships, entity.KindShip, f)
	updateList(w, &w.GroundObjects, entity.KindGroundObject, f)
	updateList(w, &w.SpaceObjects, entity.KindSpaceObject, f)
	updateList(w, &w.Projectiles, entity.KindProjectile, f)

	w.sweep()
}

type updatable[T any] interface {
	*T
	Object() *entity.Object3D
	Update(f *entity.Frame) bool
}

func updateList[T any, P updatable[T]](w *World, l *engine.List[T], kind entity.Kind, f *entity.Frame) {
	l.ForEachManaged(func(h engine.Handle, item *T) engine.Command {
		f.Self = entity.Ref{Kind: kind, Handle: h}
		if P(item).Update(f) {
			return engine.Continue
		}
		o := P(item).Object()
		w.Log.Debug().Stringer("kind", kind).Int("id", o.ID).Stringer("ref", f.Self).Msg("expired")
		return engine.DeleteAndContinue
	})
	f.Self = entity.Ref{}
}

// dt is the time between the last two updates.
func (w *World) dt() float32 {
	return w.time - w.lastTime
}

func (w *World) play(name string) {
	if w.Sounds != nil {
		w.Sounds.Play(name)
	}
}
