package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/entity"
)

// Panel colors
var (
	colorBgDark        = rl.NewColor(18, 18, 24, 230)
	colorBgElement     = rl.NewColor(35, 35, 45, 255)
	colorBgHover       = rl.NewColor(50, 50, 65, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(240, 240, 245, 255)
	colorTextSecondary = rl.NewColor(160, 160, 175, 255)
)

const (
	panelWidth = 240
	rowHeight  = 24
	rowGap     = 6
)

// initRayguiStyle sets up the dark indigo theme of the control panel.
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// row hands out stacked control bounds inside the panel.
type row struct {
	x, y, w float32
}

func (r *row) next() rl.Rectangle {
	b := rl.Rectangle{X: r.x, Y: r.y, Width: r.w, Height: rowHeight}
	r.y += rowHeight + rowGap
	return b
}

func (g *Game) DrawUI() {
	x := float32(rl.GetScreenWidth() - panelWidth - 10)
	gui.Panel(rl.Rectangle{X: x, Y: 10, Width: panelWidth, Height: 470}, "Simulation")
	r := &row{x: x + 10, y: 44, w: panelWidth - 20}

	pause := "Pause"
	if g.Paused {
		pause = "Resume"
	}
	if gui.Button(r.next(), pause) {
		g.Paused = !g.Paused
	}
	if gui.Button(r.next(), "Spawn wave") {
		g.SpawnWave()
	}
	if gui.Button(r.next(), "Fire missile") {
		g.Launch(missileID)
	}
	if gui.Button(r.next(), "Launch flare") {
		g.Launch(flareID)
	}

	g.Renderer.ShowHitBB = gui.CheckBox(checkBox(r.next()), "Show hit-boxes", g.Renderer.ShowHitBB)
	g.Renderer.ShowOBB = gui.CheckBox(checkBox(r.next()), "Show OBB", g.Renderer.ShowOBB)

	gui.Label(r.next(), "Time scale")
	g.TimeScale = gui.Slider(r.next(), "", fmt.Sprintf("%.2f", g.TimeScale), g.TimeScale, 0.1, 4)

	d := &g.World.Mission.Difficulty
	gui.Label(r.next(), "Enemy armor penalty (next wave)")
	d.EnemyArmorPenalty = gui.Slider(r.next(), "", fmt.Sprintf("%.1f", d.EnemyArmorPenalty), d.EnemyArmorPenalty, 1, 5)

	gui.Label(r.next(), fmt.Sprintf("Wave %d  kills %d  losses %d", g.waves, g.kills, g.losses))
	gui.Label(r.next(), fmt.Sprintf("Ships %d  shots %d", g.World.Count(entity.KindShip), g.World.Count(entity.KindProjectile)))
	if g.lastEvent != "" {
		gui.Label(r.next(), g.lastEvent)
	}

	rl.DrawText("WASD/EQ to fly, hold RMB to look, Shift to boost", 10, 10, 20, rl.DarkGray)
	rl.DrawText("Space to fire, F flare, P pause", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)
	rl.DrawText(fmt.Sprintf("t %.2fs  update %.2f ms  draw %.2f ms", g.time, g.updateMs, g.drawMs), 10, 85, 16, rl.Green)
	if s := g.playerShip(); s != nil {
		rl.DrawText(fmt.Sprintf("Armor %.0f/%.0f  shield %.0f", s.ArmorCurrent, s.ArmorInitial, s.ShieldCurrent), 10, 105, 16, rl.Lime)
	}
}

func checkBox(b rl.Rectangle) rl.Rectangle {
	b.Width = b.Height
	return b
}
