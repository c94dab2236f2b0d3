package parameter

import "time"

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond
	AudioMasterVolume = 0.5
	AudioVolumeStep   = 0.1
)

// Bounce: short sine blip
const (
	BounceSoundFrequency = 880.0
	BounceSoundDuration  = 50 * time.Millisecond
	BounceSoundAttack    = 2 * time.Millisecond
	BounceSoundRelease   = 20 * time.Millisecond
)

// Score: two-note square chime
const (
	ScoreSoundNote1Frequency = 987.77
	ScoreSoundNote2Frequency = 1318.51
	ScoreSoundNote1Duration  = 80 * time.Millisecond
	ScoreSoundNote2Duration  = 280 * time.Millisecond
	ScoreSoundAttack         = 5 * time.Millisecond
	ScoreSoundNote1Release   = 40 * time.Millisecond
	ScoreSoundNote2Release   = 200 * time.Millisecond
)
