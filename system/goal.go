package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// GoalSystem awards a point when a ball enters a goal zone and requests a layout reset
// The point goes to the side recorded on the goal entity itself
type GoalSystem struct {
	world *engine.World
	score *core.Score

	statLeft  *atomic.Int64
	statRight *atomic.Int64
	statText  *status.AtomicString
}

// NewGoalSystem takes the only writable handle to the score
func NewGoalSystem(world *engine.World, score *core.Score) engine.System {
	reg := world.Resources.Status
	return &GoalSystem{
		world:     world,
		score:     score,
		statLeft:  reg.Ints.Get(status.KeyGoalsLeft),
		statRight: reg.Ints.Get(status.KeyGoalsRight),
		statText:  reg.Strings.Get(status.KeyScoreText),
	}
}

func (s *GoalSystem) Init() {
	s.publish()
}

func (s *GoalSystem) Name() string {
	return "goal"
}

func (s *GoalSystem) Priority() int {
	return parameter.PriorityGoal
}

func (s *GoalSystem) Update() {
	c := &s.world.Components

	balls := s.world.Query().
		With(c.Ball).
		With(c.Transform).
		Execute()
	if len(balls) == 0 {
		return
	}

	goals := s.world.Query().
		With(c.Goal).
		With(c.Player).
		With(c.Transform).
		Execute()

	for _, e := range balls {
		ballTransform, _ := c.Transform.Get(e)
		ballBox := ballTransform.Box()

		for _, g := range goals {
			goalTransform, _ := c.Transform.Get(g)
			if !vmath.Overlaps(ballBox, goalTransform.Box()) {
				continue
			}

			player, _ := c.Player.Get(g)
			s.score.Award(player.Side)
			s.publish()
			s.world.PushEvent(event.EventLayoutReset, &event.LayoutResetPayload{
				Cause: event.ResetCauseGoal,
				Side:  player.Side,
			})
		}
	}
}

func (s *GoalSystem) publish() {
	s.statLeft.Store(int64(s.score.Left()))
	s.statRight.Store(int64(s.score.Right()))
	s.statText.Store(s.score.Text())
}
