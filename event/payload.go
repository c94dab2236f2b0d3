package event

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// ResetCause records which trigger produced a layout reset
type ResetCause uint8

const (
	ResetCauseResize ResetCause = iota
	ResetCauseGoal
)

func (c ResetCause) String() string {
	if c == ResetCauseGoal {
		return "goal"
	}
	return "resize"
}

// LayoutResetPayload carries the trigger; geometry is always read from the surface resource
type LayoutResetPayload struct {
	Cause ResetCause
	Side  core.Player // Goal side for ResetCauseGoal, unused otherwise
}

// BallBouncePayload describes one applied reflection
type BallBouncePayload struct {
	Ball     core.Entity
	Collider core.Entity
	Edge     vmath.Collision
}
