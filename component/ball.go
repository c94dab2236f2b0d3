package component

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BallComponent carries scalar speed and a direction whose length is irrelevant
// Direction only ever changes by sign flips, so it stays non-zero
type BallComponent struct {
	Speed     float64
	Direction vmath.Vec2F
}

// NewBallComponent returns the spawn state: diagonal up-right, at rest until the first layout reset
func NewBallComponent() BallComponent {
	return BallComponent{
		Speed:     0,
		Direction: vmath.V2FNormalize(vmath.V2F(1, 1)),
	}
}

// Velocity returns speed along the normalized direction
func (b BallComponent) Velocity() vmath.Vec2F {
	if b.Direction.IsZero() {
		core.Invariant(core.ErrDegenerateDirection)
	}
	return vmath.V2FScale(vmath.V2FNormalize(b.Direction), b.Speed)
}

// Reflect applies the guarded flip for a struck edge and reports which axes changed
// An axis flips only while the ball still moves into the struck edge
func (b *BallComponent) Reflect(c vmath.Collision) (flipX, flipY bool) {
	switch c {
	case vmath.CollisionLeft:
		flipX = b.Direction.X > 0
	case vmath.CollisionRight:
		flipX = b.Direction.X < 0
	case vmath.CollisionTop:
		flipY = b.Direction.Y < 0
	case vmath.CollisionBottom:
		flipY = b.Direction.Y > 0
	}

	if flipX {
		b.Direction = vmath.ReflectAxisX(b.Direction)
	}
	if flipY {
		b.Direction = vmath.ReflectAxisY(b.Direction)
	}
	return flipX, flipY
}
