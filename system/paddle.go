package system

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/layout"
	"github.com/lixenwraith/vi-pong/parameter"
)

// PaddleMovementSystem moves paddles vertically while their side's keys are held
// Up and down are applied independently; holding both cancels out. No clamping
type PaddleMovementSystem struct {
	world *engine.World
}

func NewPaddleMovementSystem(world *engine.World) engine.System {
	return &PaddleMovementSystem{world: world}
}

func (s *PaddleMovementSystem) Init() {}

func (s *PaddleMovementSystem) Name() string {
	return "paddle_movement"
}

func (s *PaddleMovementSystem) Priority() int {
	return parameter.PriorityPaddleMovement
}

func (s *PaddleMovementSystem) Update() {
	c := &s.world.Components
	dt := s.world.Resources.Time.DeltaTime.Seconds()
	input := s.world.Resources.Input

	paddles := s.world.Query().
		With(c.Paddle).
		With(c.Player).
		With(c.Transform).
		Execute()

	for _, e := range paddles {
		paddle, _ := c.Paddle.Get(e)
		player, _ := c.Player.Get(e)
		transform, _ := c.Transform.Get(e)

		up, down := player.Side.MovementKeys()
		if input.Held(up) {
			transform.Position.Y += paddle.Speed * dt
		}
		if input.Held(down) {
			transform.Position.Y -= paddle.Speed * dt
		}

		c.Transform.Set(e, transform)
	}
}

// PaddleResetSystem recomputes paddle speed and geometry on layout reset
type PaddleResetSystem struct {
	world *engine.World
}

func NewPaddleResetSystem(world *engine.World) engine.System {
	return &PaddleResetSystem{world: world}
}

func (s *PaddleResetSystem) Init() {}

func (s *PaddleResetSystem) Name() string {
	return "paddle_reset"
}

func (s *PaddleResetSystem) Priority() int {
	return parameter.PriorityLayoutReset
}

func (s *PaddleResetSystem) Update() {
	if !resetPending(s.world) {
		return
	}
	surface := s.world.Resources.MustSurface()
	c := &s.world.Components

	paddles := s.world.Query().
		With(c.Paddle).
		With(c.Player).
		With(c.Transform).
		Execute()

	for _, e := range paddles {
		player, _ := c.Player.Get(e)
		speed, transform := layout.Paddle(player.Side, surface)

		c.Paddle.Set(e, component.PaddleComponent{Speed: speed})
		c.Transform.Set(e, transform)
	}
}
