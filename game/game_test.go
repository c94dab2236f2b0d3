package game

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/snapshot"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// frameLog collects dispatched events per frame
type frameLog struct {
	events []event.GameEvent
}

func (l *frameLog) EventTypes() []event.EventType { return event.AllTypes() }
func (l *frameLog) HandleEvent(ev event.GameEvent) { l.events = append(l.events, ev) }

func (l *frameLog) take() []event.GameEvent {
	out := l.events
	l.events = nil
	return out
}

func count(evs []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func newGame(t *testing.T, w, h float64) (*Game, *frameLog) {
	t.Helper()
	g := New()
	log := &frameLog{}
	g.Register(log)
	g.Resize(w, h)
	if err := g.Tick(0); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	log.take()
	return g, log
}

func mustTransform(t *testing.T, g *Game, e core.Entity) component.TransformComponent {
	t.Helper()
	tr, ok := g.Transform(e)
	if !ok {
		t.Fatalf("entity %d has no transform", e)
	}
	return tr
}

// placeBall moves the ball without touching its speed
func placeBall(g *Game, pos, dir vmath.Vec2F) {
	c := &g.World().Components
	pf := g.Playfield()
	tr, _ := c.Transform.Get(pf.Ball)
	tr.Position = pos
	c.Transform.Set(pf.Ball, tr)
	ball, _ := c.Ball.Get(pf.Ball)
	ball.Direction = dir
	c.Ball.Set(pf.Ball, ball)
}

func TestEndToEnd1280x720(t *testing.T) {
	g, log := newGame(t, 1280, 720)
	pf := g.Playfield()

	paddle := mustTransform(t, g, pf.Paddles[core.PlayerLeft])
	if paddle.Size != vmath.V2F(20, 144) || paddle.Position != vmath.V2F(-590, 0) {
		t.Errorf("left paddle = %+v, want size (20,144) at (-590,0)", paddle)
	}
	ballTr := mustTransform(t, g, pf.Ball)
	if ballTr.Size != vmath.V2F(36, 36) || ballTr.Position != vmath.V2F(0, 0) {
		t.Errorf("ball = %+v, want size (36,36) at origin", ballTr)
	}
	ball, _ := g.World().Components.Ball.Get(pf.Ball)
	if ball.Speed != 480 {
		t.Errorf("ball speed = %v, want 480", ball.Speed)
	}
	wall := mustTransform(t, g, pf.Walls[component.WallTop])
	if wall.Size != vmath.V2F(1280, 20) || wall.Position != vmath.V2F(0, 350) {
		t.Errorf("top wall = %+v, want size (1280,20) at (0,350)", wall)
	}

	// The Left goal spans x 620..640; a ball centered at 620 overlaps it
	placeBall(g, vmath.V2F(620, 0), vmath.V2F(-1, 0))
	if err := g.Tick(0); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if g.Score().Left() != 1 || g.Score().Right() != 0 {
		t.Errorf("score = %s, want 1 : 0", g.Score().Text())
	}
	evs := log.take()
	if n := count(evs, event.EventLayoutReset); n != 1 {
		t.Errorf("reset events = %d, want exactly 1", n)
	}
	if g.ScoreboardText() != "1 : 0" {
		t.Errorf("scoreboard = %q, want %q", g.ScoreboardText(), "1 : 0")
	}

	// Reset recentered the ball, kept its direction
	ballTr = mustTransform(t, g, pf.Ball)
	if ballTr.Position != vmath.V2F(0, 0) {
		t.Errorf("ball position after goal = %v, want origin", ballTr.Position)
	}
	ball, _ = g.World().Components.Ball.Get(pf.Ball)
	if ball.Direction != vmath.V2F(-1, 0) {
		t.Errorf("ball direction after goal = %v, want (-1,0)", ball.Direction)
	}
}

func TestScoreMonotonic(t *testing.T) {
	g, log := newGame(t, 1280, 720)

	sides := []core.Player{
		core.PlayerLeft, core.PlayerRight, core.PlayerRight, core.PlayerLeft,
		core.PlayerRight, core.PlayerRight, core.PlayerRight, core.PlayerLeft,
	}
	goalCenter := map[core.Player]vmath.Vec2F{
		core.PlayerLeft:  vmath.V2F(620, 0),
		core.PlayerRight: vmath.V2F(-620, 0),
	}

	prevLeft, prevRight := 0, 0
	for i, side := range sides {
		placeBall(g, goalCenter[side], vmath.V2F(1, 1))
		if err := g.Tick(0); err != nil {
			t.Fatalf("Tick: %v", err)
		}
		if n := count(log.take(), event.EventLayoutReset); n != 1 {
			t.Fatalf("goal %d: reset events = %d, want 1", i, n)
		}

		left, right := g.Score().Left(), g.Score().Right()
		if left < prevLeft || right < prevRight {
			t.Fatalf("goal %d: score decreased from %d:%d to %d:%d", i, prevLeft, prevRight, left, right)
		}
		if left+right != i+1 {
			t.Fatalf("goal %d: total = %d, want %d", i, left+right, i+1)
		}
		prevLeft, prevRight = left, right
	}

	if prevLeft != 3 || prevRight != 5 {
		t.Errorf("final score = %d : %d, want 3 : 5", prevLeft, prevRight)
	}
	if got := g.Status().Ints.Get(status.KeyGoalsRight).Load(); got != 5 {
		t.Errorf("score.right stat = %d, want 5", got)
	}
}

func geometry(t *testing.T, g *Game) map[core.Entity]component.TransformComponent {
	t.Helper()
	c := &g.World().Components
	out := make(map[core.Entity]component.TransformComponent)
	for _, e := range c.Transform.All() {
		tr, _ := c.Transform.Get(e)
		out[e] = tr
	}
	return out
}

func TestResetIdempotent(t *testing.T) {
	g, _ := newGame(t, 1280, 720)
	first := geometry(t, g)

	g.Resize(1280, 720)
	if err := g.Tick(0); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	second := geometry(t, g)

	if len(first) != len(second) {
		t.Fatalf("entity count changed: %d -> %d", len(first), len(second))
	}
	for e, tr := range first {
		if second[e] != tr {
			t.Errorf("entity %d: %+v -> %+v", e, tr, second[e])
		}
	}
}

func TestMultipleTriggersApplyOnce(t *testing.T) {
	g, log := newGame(t, 1280, 720)
	resets := g.Status().Ints.Get(status.KeyResets)
	before := resets.Load()

	// Two resizes and a goal in one frame
	g.Resize(800, 600)
	g.Resize(1600, 900)
	placeBall(g, vmath.V2F(620, 0), vmath.V2F(1, 0))
	if err := g.Tick(0); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if n := count(log.take(), event.EventLayoutReset); n != 3 {
		t.Errorf("dispatched resets = %d, want 3 triggers", n)
	}
	if got := resets.Load() - before; got != 1 {
		t.Errorf("applied resets = %d, want 1", got)
	}
	if g.Score().Left() != 1 {
		t.Errorf("score = %s, want goal counted once", g.Score().Text())
	}

	// Geometry follows the latest surface
	pf := g.Playfield()
	wall := mustTransform(t, g, pf.Walls[component.WallTop])
	if wall.Size != vmath.V2F(1600, 20) || wall.Position != vmath.V2F(0, 440) {
		t.Errorf("top wall = %+v, want size (1600,20) at (0,440)", wall)
	}
	paddle := mustTransform(t, g, pf.Paddles[core.PlayerRight])
	if paddle.Position != vmath.V2F(750, 0) {
		t.Errorf("right paddle at %v, want (750,0)", paddle.Position)
	}
	ball, _ := g.World().Components.Ball.Get(pf.Ball)
	if ball.Speed != 600 {
		t.Errorf("ball speed = %v, want 600", ball.Speed)
	}
}

func TestResetWithoutSurfacePanics(t *testing.T) {
	g := New()
	g.World().PushEvent(event.EventLayoutReset, &event.LayoutResetPayload{Cause: event.ResetCauseResize})

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, core.ErrMissingSurface) {
			t.Fatalf("recovered %v, want ErrMissingSurface", r)
		}
	}()
	_ = g.Tick(0)
	t.Fatal("Tick returned without panicking")
}

func TestTickWithoutResetNeedsNoSurface(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		if err := g.Tick(16 * time.Millisecond); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if g.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", g.Frame())
	}
	if g.ScoreboardText() != "0 : 0" {
		t.Errorf("scoreboard = %q, want initial text", g.ScoreboardText())
	}
}

func TestBallBouncesOffTopWall(t *testing.T) {
	g, log := newGame(t, 1280, 720)

	// Ball top edge at 342, wall bottom edge at 340
	placeBall(g, vmath.V2F(0, 324), vmath.V2F(0.6, 0.6))
	if err := g.Tick(0); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	ball, _ := g.World().Components.Ball.Get(g.Playfield().Ball)
	if ball.Direction != vmath.V2F(0.6, -0.6) {
		t.Errorf("direction = %v, want (0.6,-0.6)", ball.Direction)
	}
	if n := count(log.take(), event.EventBallBounce); n != 1 {
		t.Errorf("bounce events = %d, want 1", n)
	}
}

func TestPaddleFollowsInput(t *testing.T) {
	keys := engine.KeySet{core.KeyUp: true}
	g := New(WithInput(keys))
	g.Resize(1280, 720)
	_ = g.Tick(0)

	if err := g.Tick(500 * time.Millisecond); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	pf := g.Playfield()
	right := mustTransform(t, g, pf.Paddles[core.PlayerRight])
	if right.Position.Y != 120 {
		t.Errorf("right paddle y = %v, want 120", right.Position.Y)
	}
	left := mustTransform(t, g, pf.Paddles[core.PlayerLeft])
	if left.Position.Y != 0 {
		t.Errorf("left paddle y = %v, want 0", left.Position.Y)
	}
}

func TestRecorderCapturesEveryTick(t *testing.T) {
	var buf bytes.Buffer
	rec, err := snapshot.NewRecorder(&buf, snapshot.NewHeader(time.Unix(0, 0)))
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	g := New(WithRecorder(rec))
	g.Resize(1280, 720)
	for i := 0; i < 5; i++ {
		if err := g.Tick(16 * time.Millisecond); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if err := rec.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	r, err := snapshot.NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	frames := 0
	for {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if f.Frame != int64(frames) {
			t.Errorf("frame %d numbered %d", frames, f.Frame)
		}
		if frames == 0 && (len(f.Events) != 1 || f.Events[0] != "layout_reset") {
			t.Errorf("first frame events = %v, want the initial reset", f.Events)
		}
		frames++
	}
	if frames != 5 {
		t.Errorf("decoded %d frames, want 5", frames)
	}
}

type countingObserver struct{ n int }

func (o *countingObserver) ObserveFrame(time.Duration) { o.n++ }

func TestFrameObserver(t *testing.T) {
	obs := &countingObserver{}
	g := New()
	g.ObserveFrames(obs)
	_ = g.Tick(0)
	_ = g.Tick(0)
	if obs.n != 2 {
		t.Errorf("observed %d frames, want 2", obs.n)
	}
}
