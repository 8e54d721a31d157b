package world

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrocore/internal/entity"
)

const testEncounter = `{
	"name": "first wave",
	"objects": [
		{"kind": "ship", "id": 101, "status": "enemy", "location": [0, 0, 100], "rotation": [0, 180, 0],
		 "leaveScene": true, "timeSheets": [{"duration": 2, "speed": 10}]},
		{"kind": "space", "id": 2, "location": [30, 0, 60]},
		{"kind": "ground", "id": 11, "status": "Enemy", "location": [0, -20, 80]},
		{"kind": "ship", "id": 777, "status": "enemy"}
	]
}`

func TestLoadEncounterAndSpawn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.json")
	require.NoError(t, os.WriteFile(path, []byte(testEncounter), 0o644))

	enc, err := LoadEncounter(path)
	require.NoError(t, err)
	assert.Equal(t, "first wave", enc.Name)
	require.Len(t, enc.Objects, 4)

	w, _ := newTestWorld()
	refs, err := w.Spawn(enc)
	assert.ErrorIs(t, err, entity.ErrUnknownKind, "unknown ids are reported")
	require.Len(t, refs, 4, "and still spawned")
	assert.Equal(t, 2, w.Count(entity.KindShip))
	assert.Equal(t, 1, w.Count(entity.KindSpaceObject))
	assert.Equal(t, 1, w.Count(entity.KindGroundObject))

	ship, ok := w.Resolve(refs[0])
	require.True(t, ok)
	assert.Equal(t, rl.Vector3{Z: 100}, ship.Location)
	assert.InDelta(t, -1, ship.Orientation.Z, 1e-5)
	assert.Equal(t, entity.LeaveSceneEnabled, ship.LeaveScene)
	require.Len(t, ship.TimeSheets, 1)

	ground, _ := w.Resolve(refs[2])
	assert.Equal(t, entity.StatusEnemy, ground.Status)

	w.Update(0)
	w.Update(1)
	assert.InDelta(t, 90, ship.Location.Z, 1e-3, "flies its time sheet toward -Z")
}

func TestParseEncounterRejectsUnknownNames(t *testing.T) {
	_, err := ParseEncounter([]byte(`{"objects": [{"kind": "station", "id": 1}]}`))
	assert.ErrorIs(t, err, ErrBadEncounter)

	_, err = ParseEncounter([]byte(`{"objects": [{"kind": "ship", "id": 1, "status": "pirate"}]}`))
	assert.ErrorIs(t, err, ErrBadEncounter)

	_, err = ParseEncounter([]byte(`{"objects": [`))
	assert.Error(t, err)
}

func TestLoadEncounterMissingFile(t *testing.T) {
	_, err := LoadEncounter(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDefaultEncounterSpawnsCleanly(t *testing.T) {
	w, _ := newTestWorld()
	refs, err := w.Spawn(DefaultEncounter())
	require.NoError(t, err)
	assert.Len(t, refs, len(DefaultEncounter().Objects))
	assert.Equal(t, 4, w.Count(entity.KindShip))
	assert.Equal(t, 3, w.Count(entity.KindSpaceObject))
	assert.True(t, w.HasLivingFoes(entity.StatusPlayer))
}
