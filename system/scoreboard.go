package system

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/layout"
	"github.com/lixenwraith/vi-pong/parameter"
)

// ScoreboardSystem re-renders the score text and repositions the scoreboard on layout reset
// Every goal triggers a reset, so the text never goes stale between resets
type ScoreboardSystem struct {
	world *engine.World
}

func NewScoreboardSystem(world *engine.World) engine.System {
	return &ScoreboardSystem{world: world}
}

func (s *ScoreboardSystem) Init() {}

func (s *ScoreboardSystem) Name() string {
	return "scoreboard"
}

func (s *ScoreboardSystem) Priority() int {
	return parameter.PriorityScoreboard
}

func (s *ScoreboardSystem) Update() {
	if !resetPending(s.world) {
		return
	}
	surface := s.world.Resources.MustSurface()
	c := &s.world.Components
	text := s.world.Resources.Score.Text()

	for _, e := range c.Scoreboard.All() {
		c.Scoreboard.Set(e, component.ScoreboardComponent{Text: text})
		c.Transform.Set(e, layout.Scoreboard(surface))
	}
}
