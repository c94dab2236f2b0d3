package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/layout"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BallMovementSystem integrates ball position from velocity; walls bound it, not this system
type BallMovementSystem struct {
	world *engine.World
}

func NewBallMovementSystem(world *engine.World) engine.System {
	return &BallMovementSystem{world: world}
}

func (s *BallMovementSystem) Init() {}

func (s *BallMovementSystem) Name() string {
	return "ball_movement"
}

func (s *BallMovementSystem) Priority() int {
	return parameter.PriorityBallMovement
}

func (s *BallMovementSystem) Update() {
	c := &s.world.Components
	dt := s.world.Resources.Time.DeltaTime.Seconds()

	balls := s.world.Query().
		With(c.Ball).
		With(c.Transform).
		Execute()

	for _, e := range balls {
		ball, _ := c.Ball.Get(e)
		transform, _ := c.Transform.Get(e)

		transform.Position = vmath.V2FAdd(transform.Position, vmath.V2FScale(ball.Velocity(), dt))
		c.Transform.Set(e, transform)
	}
}

// BallCollisionSystem reflects balls off every collider they overlap
// Each collider is resolved independently against the running direction; the
// directional guard keeps a ball that stays inside a collider from flipping back
type BallCollisionSystem struct {
	world *engine.World

	statBounces *atomic.Int64
}

func NewBallCollisionSystem(world *engine.World) engine.System {
	return &BallCollisionSystem{
		world:       world,
		statBounces: world.Resources.Status.Ints.Get(status.KeyBounces),
	}
}

func (s *BallCollisionSystem) Init() {}

func (s *BallCollisionSystem) Name() string {
	return "ball_collision"
}

func (s *BallCollisionSystem) Priority() int {
	return parameter.PriorityBallCollision
}

func (s *BallCollisionSystem) Update() {
	c := &s.world.Components

	balls := s.world.Query().
		With(c.Ball).
		With(c.Transform).
		Execute()
	if len(balls) == 0 {
		return
	}

	colliders := s.world.Query().
		With(c.Collider).
		With(c.Transform).
		Execute()

	for _, e := range balls {
		ball, _ := c.Ball.Get(e)
		ballTransform, _ := c.Transform.Get(e)
		ballBox := ballTransform.Box()
		changed := false

		for _, other := range colliders {
			colliderTransform, _ := c.Transform.Get(other)

			edge := vmath.Collide(ballBox, colliderTransform.Box())
			if edge == vmath.CollisionNone {
				continue
			}

			flipX, flipY := ball.Reflect(edge)
			if !flipX && !flipY {
				continue
			}
			changed = true
			s.statBounces.Add(1)
			s.world.PushEvent(event.EventBallBounce, &event.BallBouncePayload{
				Ball:     e,
				Collider: other,
				Edge:     edge,
			})
		}

		if changed {
			c.Ball.Set(e, ball)
		}
	}
}

// BallResetSystem recenters the ball and rescales speed and size on layout reset
// Direction carries over unchanged
type BallResetSystem struct {
	world *engine.World

	statSpeed *status.AtomicFloat
}

func NewBallResetSystem(world *engine.World) engine.System {
	return &BallResetSystem{
		world:     world,
		statSpeed: world.Resources.Status.Floats.Get(status.KeyBallSpeed),
	}
}

func (s *BallResetSystem) Init() {}

func (s *BallResetSystem) Name() string {
	return "ball_reset"
}

func (s *BallResetSystem) Priority() int {
	return parameter.PriorityLayoutReset
}

func (s *BallResetSystem) Update() {
	if !resetPending(s.world) {
		return
	}
	surface := s.world.Resources.MustSurface()
	c := &s.world.Components

	balls := s.world.Query().
		With(c.Ball).
		With(c.Transform).
		Execute()

	for _, e := range balls {
		ball, _ := c.Ball.Get(e)
		speed, transform := layout.Ball(surface)

		c.Ball.Set(e, component.BallComponent{Speed: speed, Direction: ball.Direction})
		c.Transform.Set(e, transform)
		s.statSpeed.Set(speed)
	}
}
