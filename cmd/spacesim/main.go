// Command spacesim runs an encounter headless for a fixed number of frames and
// logs what was destroyed.
package main

import (
	"fmt"
	"io"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/pflag"

	"astrocore/internal/config"
	"astrocore/internal/entity"
	"astrocore/internal/logging"
	"astrocore/internal/world"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Outcome summarizes a run.
type Outcome struct {
	Frames    int
	Destroyed map[entity.Status]int
	Survivors map[entity.Kind]int
	FoesLeft  bool
}

func run(args []string, logOut io.Writer) error {
	fs := pflag.NewFlagSet("spacesim", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "mission tunables (json, yaml or toml)")
	encounterPath := fs.StringP("encounter", "e", "", "encounter file; the built-in wave when empty")
	frames := fs.IntP("frames", "n", 600, "number of frames to run")
	dt := fs.Float32("dt", 1.0/60, "seconds per frame")
	viewSize := fs.Float32("view", 0, "half size of the visible box around the origin; 0 sees everything")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *frames < 0 || *dt <= 0 {
		return fmt.Errorf("frames must be >= 0 and dt > 0")
	}

	m := config.Default()
	if *configPath != "" {
		var err error
		if m, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	log := logging.Setup(m.LogLevel, logOut)
	log.Info().Str("path", *configPath).Interface("difficulty", m.Difficulty).Msg("config loaded")

	enc := world.DefaultEncounter()
	if *encounterPath != "" {
		var err error
		if enc, err = world.LoadEncounter(*encounterPath); err != nil {
			return err
		}
	}

	w := world.New(m, log)
	if *viewSize > 0 {
		s := *viewSize
		w.View = world.BoxView{Min: rl.Vector3{X: -s, Y: -s, Z: -s}, Max: rl.Vector3{X: s, Y: s, Z: s}}
	}
	if _, err := w.Spawn(enc); err != nil {
		log.Warn().Err(err).Msg("encounter has unknown entries")
	}

	out := simulate(w, *frames, *dt)
	log.Info().
		Int("frames", out.Frames).
		Int("enemiesDestroyed", out.Destroyed[entity.StatusEnemy]).
		Int("alliesDestroyed", out.Destroyed[entity.StatusAlly]+out.Destroyed[entity.StatusPlayer]).
		Int("neutralDestroyed", out.Destroyed[entity.StatusNone]).
		Int("ships", out.Survivors[entity.KindShip]).
		Int("projectiles", out.Survivors[entity.KindProjectile]).
		Bool("foesLeft", out.FoesLeft).
		Msg("simulation finished")
	return nil
}

// simulate steps w for frames frames of dt seconds each. The player's foes
// are checked after every frame and the run stops early once none remain.
func simulate(w *world.World, frames int, dt float32) Outcome {
	out := Outcome{Destroyed: map[entity.Status]int{}, Survivors: map[entity.Kind]int{}}
	id := w.Destroyed.AddListener(func(d world.Destruction) {
		out.Destroyed[d.Status]++
	})
	defer w.Destroyed.RemoveListener(id)

	w.Update(0)
	for out.Frames < frames {
		out.Frames++
		w.Update(float32(out.Frames) * dt)
		if !w.HasLivingFoes(entity.StatusPlayer) {
			break
		}
	}

	for _, k := range []entity.Kind{entity.KindProjectile, entity.KindShip, entity.KindGroundObject, entity.KindSpaceObject} {
		out.Survivors[k] = w.Count(k)
	}
	out.FoesLeft = w.HasLivingFoes(entity.StatusPlayer)
	return out
}
