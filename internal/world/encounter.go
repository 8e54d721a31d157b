package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/entity"
)

// --- JSON types ---

// Encounter is a wave of entities described in a JSON file.
type Encounter struct {
	Name    string      `json:"name,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

// ObjectDef places one catalog entry.
type ObjectDef struct {
	Kind       string             `json:"kind"`
	ID         int                `json:"id"`
	Status     string             `json:"status"`
	Location   [3]float32         `json:"location"`
	Rotation   [3]float32         `json:"rotation"`
	LeaveScene bool               `json:"leaveScene,omitempty"`
	TimeSheets []entity.TimeSheet `json:"timeSheets,omitempty"`
}

var kindByName = map[string]entity.Kind{
	"projectile": entity.KindProjectile,
	"ship":       entity.KindShip,
	"ground":     entity.KindGroundObject,
	"space":      entity.KindSpaceObject,
}

var statusByName = map[string]entity.Status{
	"":       entity.StatusNone,
	"none":   entity.StatusNone,
	"enemy":  entity.StatusEnemy,
	"ally":   entity.StatusAlly,
	"player": entity.StatusPlayer,
}

// ErrBadEncounter is returned for entries naming an unknown kind or status.
var ErrBadEncounter = errors.New("bad encounter entry")

// --- Loading ---

// LoadEncounter reads and decodes an encounter file.
func LoadEncounter(path string) (Encounter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Encounter{}, fmt.Errorf("read encounter: %w", err)
	}
	return ParseEncounter(data)
}

// ParseEncounter decodes an encounter and checks every kind and status name.
func ParseEncounter(data []byte) (Encounter, error) {
	var enc Encounter
	if err := json.Unmarshal(data, &enc); err != nil {
		return Encounter{}, fmt.Errorf("parse encounter: %w", err)
	}
	for i, def := range enc.Objects {
		if _, ok := kindByName[strings.ToLower(def.Kind)]; !ok {
			return Encounter{}, fmt.Errorf("object %d: kind %q: %w", i, def.Kind, ErrBadEncounter)
		}
		if _, ok := statusByName[strings.ToLower(def.Status)]; !ok {
			return Encounter{}, fmt.Errorf("object %d: status %q: %w", i, def.Status, ErrBadEncounter)
		}
	}
	return enc, nil
}

// Spawn creates every object of enc. Objects with an unknown catalog id are
// still created, degenerate, and their errors are joined into the result.
func (w *World) Spawn(enc Encounter) ([]entity.Ref, error) {
	refs := make([]entity.Ref, 0, len(enc.Objects))
	var errs []error
	for _, def := range enc.Objects {
		kind := kindByName[strings.ToLower(def.Kind)]
		status := statusByName[strings.ToLower(def.Status)]

		ref, err := w.Create(kind, def.ID, status)
		if err != nil {
			errs = append(errs, err)
		}
		e, ok := w.Entity(ref)
		if !ok {
			continue
		}
		e.SetRotation(rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]})
		e.SetLocation(rl.Vector3{X: def.Location[0], Y: def.Location[1], Z: def.Location[2]})

		o := e.Object()
		if def.LeaveScene {
			o.LeaveScene = entity.LeaveSceneEnabled
		}
		for _, ts := range def.TimeSheets {
			o.AddTimeSheet(ts)
		}
		refs = append(refs, ref)
	}

	w.Log.Info().Str("encounter", enc.Name).Int("objects", len(refs)).Msg("spawned")
	return refs, errors.Join(errs...)
}

// DefaultEncounter is the wave used when no encounter file is given: an
// escorted player fighter facing two alien fighters that close in and fire,
// with a rock field between them.
func DefaultEncounter() Encounter {
	attack := []entity.TimeSheet{
		{Duration: 2, Speed: 20},
		{Duration: 6, Speed: 20, Fire: true},
		{Duration: 4, Speed: 25, RotationSpeed: rl.Vector3{Y: 45}},
	}
	return Encounter{
		Name: "default",
		Objects: []ObjectDef{
			{Kind: "ship", ID: 1, Status: "player"},
			{Kind: "ship", ID: 2, Status: "ally", Location: [3]float32{-12, 0, -6}},
			{Kind: "ship", ID: 101, Status: "enemy", Location: [3]float32{-8, 2, 120}, Rotation: [3]float32{0, 180, 0}, LeaveScene: true, TimeSheets: attack},
			{Kind: "ship", ID: 101, Status: "enemy", Location: [3]float32{8, -2, 130}, Rotation: [3]float32{0, 180, 0}, LeaveScene: true, TimeSheets: attack},
			{Kind: "space", ID: 1, Location: [3]float32{-20, 5, 60}},
			{Kind: "space", ID: 2, Location: [3]float32{15, -4, 75}},
			{Kind: "space", ID: 3, Location: [3]float32{0, 10, 90}},
		},
	}
}
