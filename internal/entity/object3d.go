package entity

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/vmath"
)

// Unlimited marks an entity without a lifetime limit.
const Unlimited float32 = -1

// LeaveSceneState drives deferred destruction of entities that fly off screen.
type LeaveSceneState int

const (
	// LeaveSceneDisabled never removes the entity for leaving view.
	LeaveSceneDisabled LeaveSceneState = iota
	// LeaveSceneEnabled waits for the entity to appear on screen once.
	LeaveSceneEnabled
	// LeaveSceneShowed has been on screen at least once.
	LeaveSceneShowed
	// LeaveSceneNeedDelete has just left the visible scene.
	LeaveSceneNeedDelete
	// LeaveSceneWaitDelay counts down the grace period; re-entering view cancels it.
	LeaveSceneWaitDelay
)

// OBB is the oriented box around the whole entity.
type OBB struct {
	Box      [8]rl.Vector3 // rotated corners, relative to Location
	Location rl.Vector3    // rotated center offset from the entity location
	Size     rl.Vector3    // full extents in entity space

	baseLocation rl.Vector3
}

// HalfSize returns half the box extents.
func (b OBB) HalfSize() rl.Vector3 {
	return rl.Vector3Scale(b.Size, 0.5)
}

// HitBB is the oriented box around one chunk.
type HitBB struct {
	Box      [8]rl.Vector3 // rotated corners, relative to Location
	Location rl.Vector3    // rotated center offset from the entity location
	Size     rl.Vector3    // full extents in entity space
	Radius2  float32       // squared bounding radius, for cheap rejection

	baseLocation rl.Vector3
}

// HalfSize returns half the box extents.
func (b HitBB) HalfSize() rl.Vector3 {
	return rl.Vector3Scale(b.Size, 0.5)
}

// Object3D is the state shared by every entity kind.
type Object3D struct {
	Kind   Kind
	Status Status
	ID     int // catalog id the entity was built from

	Location     rl.Vector3
	PrevLocation rl.Vector3
	Velocity     rl.Vector3 // current linear velocity, used for interception

	Rotation           rl.Vector3 // Euler angles, degrees
	Orientation        rl.Vector3 // forward axis in world space
	CurrentRotationMat vmath.Mat33
	OldInvRotationMat  vmath.Mat33 // inverse of the matrix before the last SetRotation

	Chunks []Chunk

	AABB   [8]rl.Vector3 // world-axis-aligned corners relative to Location
	OBB    OBB
	HitBB  []HitBB
	Radius float32 // distance from Location to the farthest vertex

	Width, Height, Length float32

	// ArmorInitial <= 0 means indestructible.
	ArmorCurrent, ArmorInitial   float32
	ShieldCurrent, ShieldInitial float32
	ShieldRecharge               float32 // per second

	Lifetime float32 // seconds left, Unlimited for none

	LeaveScene      LeaveSceneState
	leaveSceneDelay float32

	TimeLastUpdate float32 // -1 before the first update
	TimeDelta      float32

	TimeSheets []TimeSheet

	placed bool
}

// NewObject3D returns the shared state of a fresh, unplaced entity.
func NewObject3D(kind Kind, status Status, id int) Object3D {
	return Object3D{
		Kind:               kind,
		Status:             status,
		ID:                 id,
		Orientation:        vmath.Forward,
		CurrentRotationMat: vmath.Identity33(),
		OldInvRotationMat:  vmath.Identity33(),
		Lifetime:           Unlimited,
		TimeLastUpdate:     -1,
	}
}

// Object returns the shared state. It lets callers holding an Entity reach the
// common fields.
func (o *Object3D) Object() *Object3D {
	return o
}

// SetGeometry installs the chunks and precomputes the entity OBB, AABB and one
// hit-box per chunk. Hit-boxes are computed once here and only rotated later.
func (o *Object3D) SetGeometry(g Geometry) {
	o.Chunks = g.Clone().Chunks
	o.HitBB = o.HitBB[:0]
	o.Radius = 0

	var all []rl.Vector3
	for _, c := range o.Chunks {
		rot := vmath.RotationMat33(c.Rotation)
		pts := make([]rl.Vector3, 0, len(c.Triangles)*3)
		for _, t := range c.Triangles {
			for _, v := range t {
				p := rl.Vector3Add(c.Location, rot.Apply(v))
				pts = append(pts, p)
				if d := rl.Vector3Length(p); d > o.Radius {
					o.Radius = d
				}
			}
		}
		all = append(all, pts...)

		lo, hi := vmath.MinMax(pts)
		size := rl.Vector3Subtract(hi, lo)
		half := rl.Vector3Scale(size, 0.5)
		o.HitBB = append(o.HitBB, HitBB{
			Size:         size,
			Radius2:      rl.Vector3DotProduct(half, half),
			baseLocation: rl.Vector3Scale(rl.Vector3Add(lo, hi), 0.5),
		})
	}

	lo, hi := vmath.MinMax(all)
	o.OBB = OBB{
		Size:         rl.Vector3Subtract(hi, lo),
		baseLocation: rl.Vector3Scale(rl.Vector3Add(lo, hi), 0.5),
	}
	o.Width, o.Height, o.Length = o.OBB.Size.X, o.OBB.Size.Y, o.OBB.Size.Z

	o.refreshBounds()
}

// SetRadius overrides the bounding radius, for entities without geometry.
func (o *Object3D) SetRadius(r float32) {
	o.Radius = r
}

// SetLocation moves the entity. The first call also sets PrevLocation so that
// placement is not mistaken for motion by swept tests.
func (o *Object3D) SetLocation(v rl.Vector3) {
	if !o.placed {
		o.PrevLocation = v
		o.placed = true
	} else {
		o.PrevLocation = o.Location
	}
	o.Location = v
}

// SetRotation adds delta (degrees) to the rotation. OldInvRotationMat keeps the
// inverse of the previous matrix for overlays that rotate attached data
// incrementally; bounding volumes are rebuilt from their unrotated form.
func (o *Object3D) SetRotation(delta rl.Vector3) {
	if delta == (rl.Vector3{}) {
		return
	}
	o.OldInvRotationMat = o.CurrentRotationMat.Inverse()
	o.Rotation = rl.Vector3{
		X: wrapAngle(o.Rotation.X + delta.X),
		Y: wrapAngle(o.Rotation.Y + delta.Y),
		Z: wrapAngle(o.Rotation.Z + delta.Z),
	}
	o.CurrentRotationMat = vmath.RotationMat33(o.Rotation)
	o.refreshBounds()
}

func wrapAngle(a float32) float32 {
	if a > 360 || a < -360 {
		return float32(math.Mod(float64(a), 360))
	}
	return a
}

func (o *Object3D) refreshBounds() {
	r := o.CurrentRotationMat
	o.Orientation = r.Apply(vmath.Forward)

	o.OBB.Location = r.Apply(o.OBB.baseLocation)
	o.OBB.Box = rotatedBox(r, o.OBB.HalfSize())

	for i := range o.HitBB {
		hb := &o.HitBB[i]
		hb.Location = r.Apply(hb.baseLocation)
		hb.Box = rotatedBox(r, hb.HalfSize())
	}

	var pts [8]rl.Vector3
	for i, c := range o.OBB.Box {
		pts[i] = rl.Vector3Add(o.OBB.Location, c)
	}
	lo, hi := vmath.MinMax(pts[:])
	o.AABB = vmath.BoxCorners(lo, hi)
}

func rotatedBox(r vmath.Mat33, half rl.Vector3) [8]rl.Vector3 {
	box := vmath.BoxCorners(rl.Vector3Negate(half), half)
	for i := range box {
		box[i] = r.Apply(box[i])
	}
	return box
}

// HitBBCenter returns the world center of hit-box i.
func (o *Object3D) HitBBCenter(i int) rl.Vector3 {
	return rl.Vector3Add(o.Location, o.HitBB[i].Location)
}

// OBBCenter returns the world center of the entity OBB.
func (o *Object3D) OBBCenter() rl.Vector3 {
	return rl.Vector3Add(o.Location, o.OBB.Location)
}

// AABBBounds returns the world min and max corners of the AABB.
func (o *Object3D) AABBBounds() (rl.Vector3, rl.Vector3) {
	lo, hi := o.AABB[6], o.AABB[0]
	return rl.Vector3Add(o.Location, lo), rl.Vector3Add(o.Location, hi)
}

// ChunkTransform returns the world rotation and origin of chunk i, including
// its own sub-rotation. A vertex v maps to origin + rot.Apply(v).
func (o *Object3D) ChunkTransform(i int) (vmath.Mat33, rl.Vector3) {
	c := &o.Chunks[i]
	rot := o.CurrentRotationMat.Mul(vmath.RotationMat33(c.Rotation))
	origin := rl.Vector3Add(o.Location, o.CurrentRotationMat.Apply(c.Location))
	return rot, origin
}

// HasHitBB reports whether piece i can take part in hit-box tests.
func (o *Object3D) HasHitBB(i int) bool {
	return i < len(o.HitBB) && o.HitBB[i].Radius2 > 0
}

// Indestructible reports whether damage is ignored.
func (o *Object3D) Indestructible() bool {
	return o.ArmorInitial <= 0
}

// ApplyDamage takes d on the shield first and the rest on the armor. It
// returns true when the armor is depleted.
func (o *Object3D) ApplyDamage(d Damage) bool {
	if o.Indestructible() {
		return false
	}
	full := d.Full()
	if o.ShieldCurrent > 0 {
		absorbed := min(o.ShieldCurrent, full)
		o.ShieldCurrent -= absorbed
		full -= absorbed
	}
	o.ArmorCurrent -= full
	return o.ArmorCurrent <= 0
}

// Repair restores armor, never past the initial value.
func (o *Object3D) Repair(amount float32) {
	o.ArmorCurrent = min(o.ArmorCurrent+amount, o.ArmorInitial)
}

// Destroyed reports whether a destructible entity has no armor left.
func (o *Object3D) Destroyed() bool {
	return !o.Indestructible() && o.ArmorCurrent <= 0
}

// setArmor initializes armor and shield, divided by penalty.
func (o *Object3D) setArmor(armor, shield, recharge, penalty float32) {
	o.ArmorInitial = armor / penalty
	o.ArmorCurrent = o.ArmorInitial
	o.ShieldInitial = shield / penalty
	o.ShieldCurrent = o.ShieldInitial
	o.ShieldRecharge = recharge / penalty
}

// Update advances the shared state to f.Time and reports whether the entity
// is still alive. The first call only records the timestamp. A zero time
// delta is a no-op.
func (o *Object3D) Update(f *Frame) bool {
	if o.TimeLastUpdate < 0 {
		o.TimeLastUpdate = f.Time
		o.TimeDelta = 0
		return true
	}

	o.TimeDelta = f.Time - o.TimeLastUpdate
	if o.TimeDelta == 0 {
		return true
	}
	o.TimeLastUpdate = f.Time

	if o.Lifetime != Unlimited {
		o.Lifetime -= o.TimeDelta
		if o.Lifetime <= 0 {
			return false
		}
	}

	if !o.updateLeaveScene(f) {
		return false
	}

	if o.ShieldCurrent < o.ShieldInitial {
		o.ShieldCurrent = min(o.ShieldCurrent+o.ShieldRecharge*o.TimeDelta, o.ShieldInitial)
	}
	return true
}

func (o *Object3D) updateLeaveScene(f *Frame) bool {
	switch o.LeaveScene {
	case LeaveSceneEnabled:
		if f.visible(o) {
			o.LeaveScene = LeaveSceneShowed
		}
	case LeaveSceneShowed:
		if !f.visible(o) {
			o.LeaveScene = LeaveSceneNeedDelete
		}
	case LeaveSceneNeedDelete:
		if f.visible(o) {
			o.LeaveScene = LeaveSceneShowed
			break
		}
		// the frame spent in NeedDelete counts toward the delay
		o.leaveSceneDelay = f.leaveSceneDelay() - o.TimeDelta
		o.LeaveScene = LeaveSceneWaitDelay
		if o.leaveSceneDelay <= 0 {
			return false
		}
	case LeaveSceneWaitDelay:
		if f.visible(o) {
			o.LeaveScene = LeaveSceneShowed
			break
		}
		o.leaveSceneDelay -= o.TimeDelta
		if o.leaveSceneDelay <= 0 {
			return false
		}
	}
	return true
}

// LeaveSceneDelay returns the remaining grace period while waiting.
func (o *Object3D) LeaveSceneDelay() float32 {
	return o.leaveSceneDelay
}

// ChunkWorldTriangle returns triangle t of chunk c in world space.
func (o *Object3D) ChunkWorldTriangle(c, t int) Triangle {
	rot, origin := o.ChunkTransform(c)
	var out Triangle
	for i, v := range o.Chunks[c].Triangles[t] {
		out[i] = rl.Vector3Add(origin, rot.Apply(v))
	}
	return out
}

// endStep makes the whole frame's motion one segment from start, so swept
// collision tests see where the entity came from, and derives Velocity.
func (o *Object3D) endStep(start rl.Vector3) {
	o.PrevLocation = start
	if o.TimeDelta > 0 {
		o.Velocity = rl.Vector3Scale(rl.Vector3Subtract(o.Location, start), 1/o.TimeDelta)
	}
}

// wrap180 maps an angle difference into [-180, 180].
func wrap180(a float32) float32 {
	a = float32(math.Mod(float64(a), 360))
	switch {
	case a > 180:
		a -= 360
	case a < -180:
		a += 360
	}
	return a
}
