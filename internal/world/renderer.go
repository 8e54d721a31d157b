package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/engine"
	"astrocore/internal/entity"
)

// Renderer draws the world as wireframes. It must be used between
// rl.BeginMode3D and rl.EndMode3D.
type Renderer struct {
	ShowHitBB bool
	ShowOBB   bool
	Frustum   *Frustum // entities outside are skipped; nil draws everything
}

func NewRenderer() *Renderer {
	return &Renderer{ShowHitBB: true}
}

var statusColor = map[entity.Status]rl.Color{
	entity.StatusNone:   rl.Gray,
	entity.StatusEnemy:  rl.Red,
	entity.StatusAlly:   rl.SkyBlue,
	entity.StatusPlayer: rl.Lime,
}

// Draw renders every live entity.
func (r *Renderer) Draw(w *World) {
	drawList(r, &w.SpaceObjects)
	drawList(r, &w.GroundObjects)
	drawList(r, &w.Ships)
	w.Projectiles.ForEach(func(_ engine.Handle, p *entity.Projectile) {
		if len(p.Chunks) == 0 {
			if r.inView(&p.Object3D) {
				rl.DrawSphereWires(p.Location, p.Radius, 4, 4, statusColor[p.Status])
			}
			return
		}
		r.drawObject(&p.Object3D)
	})
}

func drawList[T any, P object[T]](r *Renderer, l *engine.List[T]) {
	l.ForEach(func(_ engine.Handle, item *T) {
		r.drawObject(P(item).Object())
	})
}

func (r *Renderer) inView(o *entity.Object3D) bool {
	return r.Frustum == nil || r.Frustum.ContainsSphere(o.Location, o.Radius)
}

func (r *Renderer) drawObject(o *entity.Object3D) {
	if !r.inView(o) {
		return
	}
	color := statusColor[o.Status]

	for c := range o.Chunks {
		for t := range o.Chunks[c].Triangles {
			tri := o.ChunkWorldTriangle(c, t)
			rl.DrawLine3D(tri[0], tri[1], color)
			rl.DrawLine3D(tri[1], tri[2], color)
			rl.DrawLine3D(tri[2], tri[0], color)
		}
	}

	if r.ShowHitBB {
		for i := range o.HitBB {
			drawBox(o.HitBB[i].Box, o.HitBBCenter(i), rl.Yellow)
		}
	}
	if r.ShowOBB {
		drawBox(o.OBB.Box, o.OBBCenter(), rl.Orange)
	}
}

// boxEdges indexes the corners of an entity box, ordered as vmath.BoxCorners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func drawBox(corners [8]rl.Vector3, center rl.Vector3, color rl.Color) {
	for _, e := range boxEdges {
		rl.DrawLine3D(rl.Vector3Add(center, corners[e[0]]), rl.Vector3Add(center, corners[e[1]]), color)
	}
}
