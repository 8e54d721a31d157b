// Command sandbox opens a window that runs an encounter interactively.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/pflag"

	"astrocore/internal/audio"
	"astrocore/internal/config"
	"astrocore/internal/game"
	"astrocore/internal/logging"
	"astrocore/internal/world"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := pflag.StringP("config", "c", "", "mission tunables (json, yaml or toml)")
	encounterPath := pflag.StringP("encounter", "e", "", "encounter file; the built-in wave when empty")
	shipModel := pflag.String("ship-model", "", "model file for the player ship")
	pflag.Parse()

	m := config.Default()
	if *configPath != "" {
		var err error
		if m, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	log := logging.Setup(m.LogLevel, os.Stderr)

	enc := world.DefaultEncounter()
	if *encounterPath != "" {
		var err error
		if enc, err = world.LoadEncounter(*encounterPath); err != nil {
			log.Fatal().Err(err).Msg("encounter")
		}
	}

	w := world.New(m, log)
	w.Sounds = audio.Nop{}
	if m.Audio.Enabled {
		rl.InitAudioDevice()
		defer rl.CloseAudioDevice()

		bank, err := audio.NewBank(m.Audio.Sounds, log)
		if err != nil {
			log.Warn().Err(err).Msg("some sounds failed to load")
		}
		defer bank.Close()
		w.Sounds = bank
	}

	g := game.New(w, enc, log)
	g.ShipModel = *shipModel
	g.Run()
}
