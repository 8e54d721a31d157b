package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrocore/internal/config"
	"astrocore/internal/engine"
	"astrocore/internal/entity"
	"astrocore/internal/world"
)

func newTestGame() *Game {
	w := world.New(config.Default(), zerolog.Nop())
	return New(w, world.DefaultEncounter(), zerolog.Nop())
}

func TestStartSelectsPlayerShip(t *testing.T) {
	g := newTestGame()
	g.Start()

	o, ok := g.World.Resolve(g.Player)
	require.True(t, ok)
	assert.Equal(t, entity.StatusPlayer, o.Status)
	assert.Equal(t, 1, g.waves)
}

func TestSpawnWaveKeepsPlayer(t *testing.T) {
	g := newTestGame()
	g.Start()
	first := g.Player

	g.SpawnWave()
	assert.Equal(t, first, g.Player, "a living player ship stays in control")
	assert.Equal(t, 2, g.waves)
}

func TestStepHonorsPause(t *testing.T) {
	g := newTestGame()
	g.Start()

	g.Paused = true
	g.Step(0.05)
	assert.Zero(t, g.World.Time())

	g.Paused = false
	g.TimeScale = 2
	g.Step(0.05)
	assert.InDelta(t, 0.1, g.World.Time(), 1e-6)

	g.TimeScale = 1
	g.Step(5)
	assert.InDelta(t, 0.2, g.World.Time(), 1e-6, "long frames are clamped")
}

func TestFireAndLaunch(t *testing.T) {
	g := newTestGame()
	g.Start()

	shots := g.Fire()
	assert.Equal(t, 3, shots, "every weapon of the fighter is loaded")
	assert.Equal(t, 3, g.World.Count(entity.KindProjectile))
	assert.Zero(t, g.Fire(), "weapons reload")

	g.Launch(flareID)
	assert.Equal(t, 4, g.World.Count(entity.KindProjectile))

	g.World.Projectiles.ForEach(func(_ engine.Handle, p *entity.Projectile) {
		assert.Equal(t, g.Player, p.Owner)
	})
}

func TestDestroyedCountsKillsAndLosses(t *testing.T) {
	g := newTestGame()
	g.Start()

	g.World.Destroyed.Invoke(world.Destruction{Ref: entity.Ref{Kind: entity.KindShip}, ID: 101, Status: entity.StatusEnemy})
	g.World.Destroyed.Invoke(world.Destruction{Ref: g.Player, ID: 1, Status: entity.StatusPlayer})

	assert.Equal(t, 1, g.kills)
	assert.Equal(t, 1, g.losses)
	assert.Equal(t, entity.Ref{}, g.Player)
	assert.Zero(t, g.Fire(), "no ship to fire from")
}
