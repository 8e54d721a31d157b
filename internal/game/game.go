// Package game is the interactive sandbox: a raylib window that steps a world,
// draws it in wireframe and exposes a raygui control panel.
package game

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"astrocore/internal/assets"
	"astrocore/internal/camera"
	"astrocore/internal/entity"
	"astrocore/internal/world"
)

const (
	flareID       = 10
	missileID     = 11
	maxFrameDelta = 0.1
)

type Game struct {
	World     *world.World
	Camera    *camera.FlyCamera
	Renderer  *world.Renderer
	Encounter world.Encounter
	Log       zerolog.Logger

	// ShipModel, when set, replaces the box geometry of the player ship.
	ShipModel string

	Paused    bool
	TimeScale float32
	Player    entity.Ref

	time      float32
	waves     int
	kills     int
	losses    int
	lastEvent string
	frustum   world.Frustum

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(w *world.World, enc world.Encounter, log zerolog.Logger) *Game {
	return &Game{
		World:     w,
		Camera:    camera.New(rl.Vector3{X: 0, Y: 8, Z: -25}),
		Renderer:  world.NewRenderer(),
		Encounter: enc,
		Log:       log,
		TimeScale: 1,
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(1280, 720, "astrocore sandbox")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	initRayguiStyle()

	g.Start()
	defer assets.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

// Start subscribes to world events and spawns the first wave.
func (g *Game) Start() {
	g.World.Destroyed.AddListener(func(d world.Destruction) {
		if d.Status == entity.StatusEnemy {
			g.kills++
		} else if d.Status == entity.StatusPlayer || d.Status == entity.StatusAlly {
			g.losses++
		}
		if d.Ref == g.Player {
			g.Player = entity.Ref{}
		}
		g.lastEvent = fmt.Sprintf("%s %d destroyed", d.Ref.Kind, d.ID)
	})
	g.SpawnWave()
	g.World.Update(g.time)
}

// SpawnWave spawns the encounter again. Only the first player ship found is
// controlled.
func (g *Game) SpawnWave() {
	refs, err := g.World.Spawn(g.Encounter)
	if err != nil {
		g.Log.Error().Err(err).Str("encounter", g.Encounter.Name).Msg("spawn wave")
	}
	g.waves++

	for _, ref := range refs {
		o, ok := g.World.Resolve(ref)
		if !ok || o.Kind != entity.KindShip || o.Status != entity.StatusPlayer {
			continue
		}
		if _, alive := g.World.Resolve(g.Player); alive {
			break
		}
		g.Player = ref
		g.applyShipModel(o)
	}
}

func (g *Game) applyShipModel(o *entity.Object3D) {
	if g.ShipModel == "" {
		return
	}
	geo, err := assets.LoadGeometry(g.ShipModel)
	if err != nil {
		g.Log.Warn().Err(err).Str("path", g.ShipModel).Msg("ship model")
		return
	}
	o.SetGeometry(geo)
}

// playerShip returns the controlled ship, or nil once it is gone.
func (g *Game) playerShip() *entity.Ship {
	if g.Player.Kind != entity.KindShip {
		return nil
	}
	s, ok := g.World.Ships.Get(g.Player.Handle)
	if !ok {
		return nil
	}
	return s
}

// Fire shoots every reloaded weapon of the player ship.
func (g *Game) Fire() int {
	s := g.playerShip()
	if s == nil {
		return 0
	}
	f := &entity.Frame{Time: g.time, Mission: &g.World.Mission, Spawner: g.World, Sounds: g.World.Sounds, Log: g.Log, Self: g.Player}
	return s.Fire(f)
}

// Launch spawns projectile id just ahead of the player ship.
func (g *Game) Launch(id int) {
	s := g.playerShip()
	if s == nil {
		return
	}
	at := rl.Vector3Add(s.Location, rl.Vector3Scale(s.Orientation, s.Radius+1))
	if _, err := g.World.SpawnProjectile(id, s.Status, at, s.Rotation, g.Player); err != nil {
		g.Log.Error().Err(err).Int("id", id).Msg("launch")
	}
}

// Step advances the simulation by dt real seconds, scaled by TimeScale.
// Nothing moves while paused.
func (g *Game) Step(dt float32) {
	if g.Paused {
		return
	}
	g.time += min(dt, maxFrameDelta) * g.TimeScale
	g.World.Update(g.time)
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.Camera.Update(camera.ReadInput(), deltaTime)
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	g.frustum = world.ExtractFrustum(g.Camera.GetRaylibCamera(), aspect)
	g.World.View = &g.frustum
	g.Renderer.Frustum = &g.frustum

	if rl.IsKeyPressed(rl.KeyP) {
		g.Paused = !g.Paused
	}
	if rl.IsKeyDown(rl.KeySpace) {
		g.Fire()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		g.Launch(flareID)
	}

	g.Step(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(8, 8, 16, 255))

	drawStart := time.Now()
	rl.BeginMode3D(g.Camera.GetRaylibCamera())
	g.Renderer.Draw(g.World)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}
