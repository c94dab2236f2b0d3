package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// DiagnosticsSystem publishes per-frame engine telemetry
type DiagnosticsSystem struct {
	world *engine.World

	statFrames   *atomic.Int64
	statEntities *atomic.Int64
	statResets   *atomic.Int64
}

// NewDiagnosticsSystem creates a new diagnostics system
func NewDiagnosticsSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	return &DiagnosticsSystem{
		world:        world,
		statFrames:   reg.Ints.Get(status.KeyFrames),
		statEntities: reg.Ints.Get(status.KeyEntities),
		statResets:   reg.Ints.Get(status.KeyResets),
	}
}

func (s *DiagnosticsSystem) Init() {}

func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagnosticsSystem) Update() {
	s.statFrames.Store(s.world.FrameNumber())
	s.statEntities.Store(int64(s.world.Components.Transform.Count()))

	// Coalesced triggers count once
	if resetPending(s.world) {
		s.statResets.Add(1)
	}
}
