package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundMeow1
	SoundMeow2
	SoundMeow3
)

// MeowSounds are the cues picked from at random when a cat is caught.
var MeowSounds = []SoundID{SoundMeow1, SoundMeow2, SoundMeow3}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundMeow1: "meow1.ogg",
			SoundMeow2: "meow2.ogg",
			SoundMeow3: "meow3.ogg",
		},
		VolumeMultipliers: map[SoundID]float64{},
	}
}
