// Package config loads the per-mission tunables. Values are read once per
// mission or profile load and passed down explicitly; nothing here is global.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrInvalidTunable is returned by Validate for out-of-range values.
var ErrInvalidTunable = errors.New("invalid tunable")

// Difficulty holds the enemy handicaps of the current profile. Each penalty is
// a divisor, 1 meaning no handicap.
type Difficulty struct {
	EnemyWeaponPenalty    float32 `mapstructure:"enemyWeaponPenalty"`
	EnemyArmorPenalty     float32 `mapstructure:"enemyArmorPenalty"`
	EnemyTargetingPenalty float32 `mapstructure:"enemyTargetingPenalty"`
}

// Scene holds scene-level timing.
type Scene struct {
	LeaveSceneDelay float32 `mapstructure:"leaveSceneDelay"`
}

// Audio selects the sounds played for gameplay events.
type Audio struct {
	Enabled bool              `mapstructure:"enabled"`
	Sounds  map[string]string `mapstructure:"sounds"`
}

// Mission is the full set of tunables for one mission run.
type Mission struct {
	LogLevel   string     `mapstructure:"logLevel"`
	Difficulty Difficulty `mapstructure:"difficulty"`
	Scene      Scene      `mapstructure:"scene"`
	Audio      Audio      `mapstructure:"audio"`
}

// Default returns the tunables used when no file is given.
func Default() Mission {
	return Mission{
		LogLevel: "info",
		Difficulty: Difficulty{
			EnemyWeaponPenalty:    1,
			EnemyArmorPenalty:     1,
			EnemyTargetingPenalty: 1,
		},
		Scene: Scene{LeaveSceneDelay: 1},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("difficulty.enemyWeaponPenalty", d.Difficulty.EnemyWeaponPenalty)
	v.SetDefault("difficulty.enemyArmorPenalty", d.Difficulty.EnemyArmorPenalty)
	v.SetDefault("difficulty.enemyTargetingPenalty", d.Difficulty.EnemyTargetingPenalty)
	v.SetDefault("scene.leaveSceneDelay", d.Scene.LeaveSceneDelay)
	v.SetDefault("audio.enabled", false)
}

// Load reads tunables from path (json, yaml or toml, by extension) on top of
// the defaults and validates them.
func Load(path string) (Mission, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Mission{}, fmt.Errorf("error reading config file: %w", err)
	}

	var m Mission
	if err := v.Unmarshal(&m); err != nil {
		return Mission{}, fmt.Errorf("error decoding config file: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Mission{}, err
	}
	return m, nil
}

// Validate checks that every penalty is at least 1 and the leave-scene delay
// is not negative.
func (m Mission) Validate() error {
	penalties := map[string]float32{
		"enemyWeaponPenalty":    m.Difficulty.EnemyWeaponPenalty,
		"enemyArmorPenalty":     m.Difficulty.EnemyArmorPenalty,
		"enemyTargetingPenalty": m.Difficulty.EnemyTargetingPenalty,
	}
	for name, p := range penalties {
		if p < 1 {
			return fmt.Errorf("%w: difficulty.%s = %v, must be >= 1", ErrInvalidTunable, name, p)
		}
	}
	if m.Scene.LeaveSceneDelay < 0 {
		return fmt.Errorf("%w: scene.leaveSceneDelay = %v, must be >= 0", ErrInvalidTunable, m.Scene.LeaveSceneDelay)
	}
	return nil
}

// Penalty returns divisor p, or 1 if p was left unset.
func Penalty(p float32) float32 {
	if p < 1 {
		return 1
	}
	return p
}
