// Package game owns one match: the ECS world, the writable score, the frame
// event router and the optional recorder. All calls must come from one goroutine.
package game

import (
	"io"
	"log/slog"
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/snapshot"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/system"
)

// FrameObserver receives the wall time spent simulating each frame
type FrameObserver interface {
	ObserveFrame(d time.Duration)
}

// Game drives the simulation one frame at a time
type Game struct {
	world     *engine.World
	score     *core.Score
	router    *event.Router
	playfield system.Playfield

	recorder *snapshot.Recorder
	observer FrameObserver
	clock    engine.Clock
	logger   *slog.Logger

	frame int64
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the structured logger; defaults to discarding
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRecorder captures a snapshot frame after every tick
func WithRecorder(r *snapshot.Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithClock replaces the wall clock used for frame timing
func WithClock(c engine.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithInput attaches the held-key source
func WithInput(keys engine.KeyState) Option {
	return func(g *Game) { g.world.SetInput(keys) }
}

// New spawns the playfield and registers every system
// Geometry stays zero until the first Resize
func New(opts ...Option) *Game {
	score := core.NewScore()
	world := engine.NewWorld(score)

	g := &Game{
		world:  world,
		score:  score,
		router: event.NewRouter(world.Resources.Event.Queue),
		clock:  engine.NewTimeProvider(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.playfield = system.SpawnPlayfield(world)
	system.RegisterSystems(world, score)
	for _, s := range world.Systems() {
		s.Init()
	}

	g.logger.Debug("game initialized",
		"systems", len(world.Systems()),
		"entities", world.Components.Transform.Count())
	return g
}

// ObserveFrames reports per-frame simulation time to o
// The metrics collector is built from the game's registry, so it attaches after New
func (g *Game) ObserveFrames(o FrameObserver) {
	g.observer = o
}

// Register subscribes an auxiliary handler to frame-end event dispatch
func (g *Game) Register(h event.Handler) {
	g.router.Register(h)
}

// Resize publishes new surface dimensions and queues a layout reset for the next tick
func (g *Game) Resize(width, height float64) {
	g.world.RunSafe(func() {
		g.world.SetSurface(core.Surface{Width: width, Height: height})
		g.world.PushEvent(event.EventLayoutReset, &event.LayoutResetPayload{Cause: event.ResetCauseResize})
	})
	g.logger.Info("surface resized", "width", width, "height", height)
}

// Tick advances the simulation by dt
// Order: systems, frame-end dispatch, snapshot, queue clear
// Invariant violations panic; the returned error is recorder I/O only
func (g *Game) Tick(dt time.Duration) error {
	start := g.clock.Now()
	var err error

	g.world.RunSafe(func() {
		g.world.Resources.Time.Update(dt, g.frame)
		g.world.UpdateLocked()

		q := g.world.Resources.Event.Queue
		if ev, ok := q.Latest(event.EventLayoutReset); ok {
			p := ev.Payload.(*event.LayoutResetPayload)
			g.logger.Debug("layout reset",
				"frame", g.frame,
				"cause", p.Cause.String(),
				"triggers", q.Count(event.EventLayoutReset),
				"events", q.Len(),
				"score", g.score.Text())
		}

		g.router.DispatchAll()

		if g.recorder != nil {
			err = g.recorder.Record(snapshot.Capture(g.world))
		}

		q.Clear()
	})

	if g.observer != nil {
		g.observer.ObserveFrame(g.clock.Now().Sub(start))
	}
	g.frame++
	return err
}

// Frame returns the number of completed ticks
func (g *Game) Frame() int64 {
	return g.frame
}

// Score returns the read-only score
func (g *Game) Score() core.ScoreView {
	return g.score
}

// World exposes the ECS world to display collaborators
func (g *Game) World() *engine.World {
	return g.world
}

// Status returns the telemetry registry
func (g *Game) Status() *status.Registry {
	return g.world.Resources.Status
}

// Playfield returns the spawned entity IDs
func (g *Game) Playfield() system.Playfield {
	return g.playfield
}

// Transform returns an entity's current geometry
func (g *Game) Transform(e core.Entity) (component.TransformComponent, bool) {
	return g.world.Components.Transform.Get(e)
}

// ScoreboardText returns the text currently shown on the scoreboard
func (g *Game) ScoreboardText() string {
	board, _ := g.world.Components.Scoreboard.Get(g.playfield.Scoreboard)
	return board.Text
}
