package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundButtonOver
	SoundButtonDown
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to asset registry keys
type SoundConfig struct {
	SFXKeys           map[SoundID]string
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
		SFXKeys: map[SoundID]string{
			SoundButtonOver: "sndBtnOver",
			SoundButtonDown: "sndBtnDown",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundButtonOver: 0.6,
		},
	}
}
