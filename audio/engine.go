package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// AudioEngine plays sound effects through the beep speaker
// A failed speaker init leaves the engine running in silent mode
type AudioEngine struct {
	config *AudioConfig
	mixer  *beep.Mixer

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu sync.RWMutex // Protects config

	// Swapped in tests
	initSpeaker func(rate beep.SampleRate, bufferSize int) error
	play        func(s ...beep.Streamer)
	lock        func()
	unlock      func()
	clear       func()
}

// NewAudioEngine creates an audio engine
func NewAudioEngine(cfg ...*AudioConfig) *AudioEngine {
	config := DefaultAudioConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}

	ae := &AudioEngine{
		config:      config,
		mixer:       &beep.Mixer{},
		initSpeaker: speaker.Init,
		play:        speaker.Play,
		lock:        speaker.Lock,
		unlock:      speaker.Unlock,
		clear:       speaker.Clear,
	}
	ae.muted.Store(!config.Enabled)
	return ae
}

// Start opens the speaker and attaches the mixer
// Returns the init error for logging; the engine is usable in silent mode either way
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	rate := beep.SampleRate(ae.config.SampleRate)
	if err := ae.initSpeaker(rate, rate.N(parameter.AudioBufferWindow)); err != nil {
		ae.silentMode.Store(true)
		ae.running.Store(true)
		return fmt.Errorf("speaker init: %w", err)
	}

	ae.play(ae.mixer)
	ae.running.Store(true)
	return nil
}

// Stop detaches all playback
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	if ae.silentMode.Load() {
		return
	}

	ae.lock()
	ae.mixer.Clear()
	ae.unlock()
	ae.clear()
}

// Play queues a sound for playback, returns false when nothing was queued
func (ae *AudioEngine) Play(st SoundType) bool {
	if !ae.IsEnabled() {
		return false
	}

	ae.mu.RLock()
	s := GetSoundEffect(st, ae.config)
	ae.mu.RUnlock()
	if s == nil {
		return false
	}

	ae.lock()
	ae.mixer.Add(s)
	ae.unlock()
	return true
}

// SetMasterVolume updates the master volume for subsequently queued sounds, returns the clamped value
func (ae *AudioEngine) SetMasterVolume(v float64) float64 {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	ae.config.MasterVolume = clampVolume(v)
	return ae.config.MasterVolume
}

// MasterVolume returns the current master volume
func (ae *AudioEngine) MasterVolume() float64 {
	ae.mu.RLock()
	defer ae.mu.RUnlock()
	return ae.config.MasterVolume
}

// ToggleMute toggles mute state, returns true if now enabled
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsEnabled returns true if running, unmuted and attached to a speaker
func (ae *AudioEngine) IsEnabled() bool {
	return ae.running.Load() && !ae.muted.Load() && !ae.silentMode.Load()
}

// EventTypes lists the simulation events that trigger sounds
func (ae *AudioEngine) EventTypes() []event.EventType {
	return []event.EventType{event.EventBallBounce, event.EventLayoutReset}
}

// HandleEvent maps bounces and goal resets to sounds; resize resets are silent
func (ae *AudioEngine) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventBallBounce:
		ae.Play(SoundBounce)
	case event.EventLayoutReset:
		if p, ok := ev.Payload.(*event.LayoutResetPayload); ok && p.Cause == event.ResetCauseGoal {
			ae.Play(SoundScore)
		}
	}
}
