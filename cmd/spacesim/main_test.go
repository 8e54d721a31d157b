package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrocore/internal/config"
	"astrocore/internal/entity"
	"astrocore/internal/world"
)

func TestSimulateStopsWhenNoFoesRemain(t *testing.T) {
	w := world.New(config.Default(), zerolog.Nop())
	_, err := w.CreateShip(1, entity.StatusPlayer)
	require.NoError(t, err)

	out := simulate(w, 100, 0.1)
	assert.Equal(t, 1, out.Frames)
	assert.False(t, out.FoesLeft)
	assert.Equal(t, 1, out.Survivors[entity.KindShip])
}

func TestSimulateRunsAllFrames(t *testing.T) {
	w := world.New(config.Default(), zerolog.Nop())
	_, err := w.Spawn(world.DefaultEncounter())
	require.NoError(t, err)

	out := simulate(w, 30, 0.05)
	assert.Equal(t, 30, out.Frames)
	assert.True(t, out.FoesLeft)
	assert.InDelta(t, 1.5, w.Time(), 1e-4)
	assert.Zero(t, w.Destroyed.ListenerCount(), "the counter is removed afterwards")
}

func TestRunWithConfigAndEncounter(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "mission.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logLevel: info\ndifficulty:\n  enemyArmorPenalty: 2\n"), 0o644))
	enc := filepath.Join(dir, "wave.json")
	require.NoError(t, os.WriteFile(enc, []byte(`{"name": "lone", "objects": [{"kind": "ship", "id": 101, "status": "enemy", "location": [0, 0, 50]}]}`), 0o644))

	var logs bytes.Buffer
	err := run([]string{"--config", cfg, "--encounter", enc, "--frames", "5", "--dt", "0.1"}, &logs)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "config loaded")
	assert.Contains(t, logs.String(), "simulation finished")
}

func TestRunRejectsBadInput(t *testing.T) {
	var logs bytes.Buffer
	assert.Error(t, run([]string{"--dt", "0"}, &logs))
	assert.Error(t, run([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, &logs))
	assert.Error(t, run([]string{"--no-such-flag"}, &logs))
}
