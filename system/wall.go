package system

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/layout"
	"github.com/lixenwraith/vi-pong/parameter"
)

// WallResetSystem resizes top and bottom walls on layout reset; walls never move otherwise
type WallResetSystem struct {
	world *engine.World
}

func NewWallResetSystem(world *engine.World) engine.System {
	return &WallResetSystem{world: world}
}

func (s *WallResetSystem) Init() {}

func (s *WallResetSystem) Name() string {
	return "wall_reset"
}

func (s *WallResetSystem) Priority() int {
	return parameter.PriorityLayoutReset
}

func (s *WallResetSystem) Update() {
	if !resetPending(s.world) {
		return
	}
	surface := s.world.Resources.MustSurface()
	c := &s.world.Components

	walls := s.world.Query().
		With(c.Wall).
		With(c.Transform).
		Execute()

	for _, e := range walls {
		wall, _ := c.Wall.Get(e)
		c.Transform.Set(e, layout.Wall(wall.Variant, surface))
	}
}
