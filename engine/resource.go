package engine

import (
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

// Resource holds singleton game resources, initialized with the World
type Resource struct {
	Time    *TimeResource
	Input   *InputResource
	Event   *EventQueueResource
	Surface *SurfaceResource // nil until the frontend publishes dimensions

	// Score is read-only here; the goal system owns the writable *core.Score
	Score core.ScoreView

	// Telemetry
	Status *status.Registry
}

// MustSurface returns the current surface dimensions
// Panics with core.ErrMissingSurface when none were published; a reset without a surface has no recovery
func (r *Resource) MustSurface() core.Surface {
	if r.Surface == nil || !r.Surface.Surface.Valid() {
		core.Invariant(core.ErrMissingSurface)
	}
	return r.Surface.Surface
}

// TimeResource wraps time data for systems
// It is updated by the game loop at the start of a frame
type TimeResource struct {
	// DeltaTime is the elapsed time since the previous frame, never negative
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(deltaTime time.Duration, frameNumber int64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// SurfaceResource publishes the play area dimensions
type SurfaceResource struct {
	Surface core.Surface
}

// KeyState answers held-key lookups for the current frame
type KeyState interface {
	Held(k core.Key) bool
}

// KeySet is a fixed KeyState, used for tests and scripted input
type KeySet map[core.Key]bool

func (s KeySet) Held(k core.Key) bool { return s[k] }

// InputResource exposes held-key state, read-only to systems
type InputResource struct {
	Keys KeyState
}

// Held is nil-safe: no attached input means no key is held
func (ir *InputResource) Held(k core.Key) bool {
	if ir == nil || ir.Keys == nil {
		return false
	}
	return ir.Keys.Held(k)
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}
