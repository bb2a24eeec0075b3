package systems

import (
	"fmt"
	"io/fs"
	"math/rand"
	"sync"

	"github.com/automoto/meowwww/assets"
	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared for the life of the process
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and decodes every sound effect so the
// first meow does not stall a frame. A sound that fails to load is an error.
func InitAudio(fsys fs.FS) error {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, fsys)
	})
	return preloadSounds(globalAudioLoader, cfg.Sound.SFXPaths)
}

func preloadSounds(loader *assets.AudioLoader, paths map[cfg.SoundID]string) error {
	for id, path := range paths {
		if err := loader.PreloadSFX(path); err != nil {
			return fmt.Errorf("sound %d: %w", id, err)
		}
	}
	return nil
}

// UpdateAudio plays the sound effects queued this tick.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if globalAudioLoader == nil || volume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// RandomMeow picks one of the meow cues.
func RandomMeow(r *rand.Rand) cfg.SoundID {
	return cfg.MeowSounds[r.Intn(len(cfg.MeowSounds))]
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
