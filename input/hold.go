package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
)

// HoldTracker emulates held keys on terminals, which report presses and
// auto-repeats but never releases
// A first press holds for the initial window, long enough to cover the
// terminal's repeat delay; once repeats arrive each one holds for the
// shorter repeat window so a release is noticed quickly
type HoldTracker struct {
	mu      sync.Mutex
	clock   engine.Clock
	initial time.Duration
	repeat  time.Duration
	keys    map[core.Key]holdState
}

type holdState struct {
	last      time.Time
	repeating bool
}

// NewHoldTracker creates a tracker reading time from clock
func NewHoldTracker(clock engine.Clock, initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		clock:   clock,
		initial: initial,
		repeat:  repeat,
		keys:    make(map[core.Key]holdState),
	}
}

// Press records a press or auto-repeat of k
func (h *HoldTracker) Press(k core.Key) {
	if k == core.KeyNone {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.clock.Now()
	st, ok := h.keys[k]
	h.keys[k] = holdState{last: now, repeating: ok && h.live(st, now)}
}

// Held implements engine.KeyState
func (h *HoldTracker) Held(k core.Key) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	st, ok := h.keys[k]
	if !ok {
		return false
	}
	if !h.live(st, h.clock.Now()) {
		delete(h.keys, k)
		return false
	}
	return true
}

func (h *HoldTracker) live(st holdState, now time.Time) bool {
	window := h.initial
	if st.repeating {
		window = h.repeat
	}
	return now.Sub(st.last) < window
}
