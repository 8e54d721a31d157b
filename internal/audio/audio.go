// Package audio plays the gameplay sounds the simulation asks for by name.
package audio

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"astrocore/internal/entity"
)

// Player plays a named sound and forgets about it.
type Player interface {
	Play(name string)
}

var (
	_ Player             = (*Bank)(nil)
	_ Player             = Nop{}
	_ entity.SoundPlayer = (*Bank)(nil)
)

// Nop plays nothing.
type Nop struct{}

func (Nop) Play(string) {}

// device is the part of raylib the bank needs.
type device struct {
	load   func(path string) rl.Sound
	valid  func(rl.Sound) bool
	play   func(rl.Sound)
	volume func(rl.Sound, float32)
	unload func(rl.Sound)
}

var raylibDevice = device{
	load:   rl.LoadSound,
	valid:  rl.IsSoundValid,
	play:   rl.PlaySound,
	volume: rl.SetSoundVolume,
	unload: rl.UnloadSound,
}

// Bank holds one loaded sound per name. The audio device must be open
// (rl.InitAudioDevice) before NewBank and until Close.
type Bank struct {
	mu     sync.Mutex
	dev    device
	sounds map[string]rl.Sound
	missed map[string]bool
	log    zerolog.Logger
}

// NewBank loads every name→path entry. Files that fail to load are reported
// in the returned error; the rest of the bank is still usable.
func NewBank(paths map[string]string, log zerolog.Logger) (*Bank, error) {
	return newBank(raylibDevice, paths, log)
}

func newBank(dev device, paths map[string]string, log zerolog.Logger) (*Bank, error) {
	b := &Bank{
		dev:    dev,
		sounds: make(map[string]rl.Sound, len(paths)),
		missed: make(map[string]bool),
		log:    log,
	}

	var failed []string
	for _, name := range slices.Sorted(maps.Keys(paths)) {
		s := dev.load(paths[name])
		if !dev.valid(s) {
			failed = append(failed, name)
			continue
		}
		b.sounds[name] = s
	}
	if len(failed) > 0 {
		return b, fmt.Errorf("load sounds %v: not found or unsupported", failed)
	}
	return b, nil
}

// Play starts the named sound. Unknown names are logged once.
func (b *Bank) Play(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.sounds[name]
	if !ok {
		if !b.missed[name] {
			b.missed[name] = true
			b.log.Debug().Str("sound", name).Msg("no such sound")
		}
		return
	}
	b.dev.play(s)
}

// SetVolume sets the volume of every sound, 0 to 1.
func (b *Bank) SetVolume(volume float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.sounds {
		b.dev.volume(s, volume)
	}
}

// Close unloads every sound.
func (b *Bank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.sounds {
		b.dev.unload(s)
	}
	b.sounds = map[string]rl.Sound{}
}
