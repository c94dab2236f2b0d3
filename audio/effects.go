package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Waveform selects the oscillator shape
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
)

// tone is a fixed-length periodic signal, identical on both channels
type tone struct {
	wave      Waveform
	step      float64 // Phase advance per sample, in cycles
	phase     float64 // [0, 1)
	remaining int
}

// NewOscillator returns a streamer producing d of a freq Hz wave, then ending
func NewOscillator(freq float64, d time.Duration, wave Waveform, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:      wave,
		step:      freq / float64(rate),
		remaining: rate.N(d),
	}
}

func (t *tone) value() float64 {
	if t.wave == WaveSquare {
		if t.phase < 0.5 {
			return 1
		}
		return -1
	}
	return math.Sin(2 * math.Pi * t.phase)
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.remaining <= 0 {
		return 0, false
	}
	n = min(len(samples), t.remaining)
	for i := range samples[:n] {
		v := t.value()
		samples[i] = [2]float64{v, v}
		_, t.phase = math.Modf(t.phase + t.step)
	}
	t.remaining -= n
	return n, true
}

func (t *tone) Err() error { return nil }

// envelope applies a linear attack and release ramp over a fixed length
type envelope struct {
	src     beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// NewEnvelope shapes s; output stops after duration even if s continues
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		src:     s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(duration),
	}
}

func (e *envelope) gain() float64 {
	if e.attack > 0 && e.pos < e.attack {
		return float64(e.pos) / float64(e.attack)
	}
	if left := e.total - e.pos; e.release > 0 && left < e.release {
		return float64(left) / float64(e.release)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rem := e.total - e.pos; len(samples) > rem {
		samples = samples[:rem]
	}

	n, ok = e.src.Stream(samples)
	for i := range samples[:n] {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume wraps s in a log2 volume; zero or negative volume is muted
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateBounceSound generates a short blip for a ball reflection
func CreateBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.BounceSoundFrequency, parameter.BounceSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.BounceSoundDuration, parameter.BounceSoundAttack, parameter.BounceSoundRelease, rate)

	return newVolume(shaped, clampVolume(cfg.EffectVolumes[SoundBounce]*cfg.MasterVolume))
}

// CreateScoreSound generates a rising two-note chime for a goal
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(parameter.ScoreSoundNote1Frequency, parameter.ScoreSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.ScoreSoundNote1Duration, parameter.ScoreSoundAttack, parameter.ScoreSoundNote1Release, rate)

	n2 := NewOscillator(parameter.ScoreSoundNote2Frequency, parameter.ScoreSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.ScoreSoundNote2Duration, parameter.ScoreSoundAttack, parameter.ScoreSoundNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	return newVolume(sequence, clampVolume(cfg.EffectVolumes[SoundScore]*cfg.MasterVolume))
}

// GetSoundEffect returns the streamer for a sound type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBounce:
		return CreateBounceSound(cfg)
	case SoundScore:
		return CreateScoreSound(cfg)
	default:
		return nil
	}
}
