package system

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/layout"
	"github.com/lixenwraith/vi-pong/parameter"
)

// GoalResetSystem resizes goal zones on layout reset
type GoalResetSystem struct {
	world *engine.World
}

func NewGoalResetSystem(world *engine.World) engine.System {
	return &GoalResetSystem{world: world}
}

func (s *GoalResetSystem) Init() {}

func (s *GoalResetSystem) Name() string {
	return "goal_reset"
}

func (s *GoalResetSystem) Priority() int {
	return parameter.PriorityLayoutReset
}

func (s *GoalResetSystem) Update() {
	if !resetPending(s.world) {
		return
	}
	surface := s.world.Resources.MustSurface()
	c := &s.world.Components

	goals := s.world.Query().
		With(c.Goal).
		With(c.Player).
		With(c.Transform).
		Execute()

	for _, e := range goals {
		player, _ := c.Player.Get(e)
		c.Transform.Set(e, layout.Goal(player.Side, surface))
	}
}
