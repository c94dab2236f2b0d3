package audio

import "github.com/lixenwraith/vi-pong/parameter"

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock configuration: enabled, half master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundBounce: 0.6,
			SoundScore:  0.8,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// clampVolume keeps a volume in [0, 1]
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
