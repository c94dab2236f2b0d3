// Package snapshot captures per-frame simulation state and records it as a
// msgpack stream: one Header followed by any number of Frames.
package snapshot

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
)

// FormatVersion is bumped on incompatible Frame layout changes
const FormatVersion = 1

// Kind names the role of a captured entity
type Kind string

const (
	KindBall       Kind = "ball"
	KindPaddle     Kind = "paddle"
	KindWall       Kind = "wall"
	KindGoal       Kind = "goal"
	KindScoreboard Kind = "scoreboard"
)

// Header opens a recording
type Header struct {
	Version int       `msgpack:"v"`
	Session uuid.UUID `msgpack:"session"`
	Started time.Time `msgpack:"started"`
}

// NewHeader stamps a fresh session
func NewHeader(now time.Time) Header {
	return Header{
		Version: FormatVersion,
		Session: uuid.New(),
		Started: now,
	}
}

// Entity is one positioned box
type Entity struct {
	ID   core.Entity `msgpack:"id"`
	Kind Kind        `msgpack:"k"`
	X    float64     `msgpack:"x"`
	Y    float64     `msgpack:"y"`
	W    float64     `msgpack:"w"`
	H    float64     `msgpack:"h"`
}

// Frame is the display-facing state after one simulation step
type Frame struct {
	Frame    int64    `msgpack:"f"`
	Width    float64  `msgpack:"sw"`
	Height   float64  `msgpack:"sh"`
	Left     int      `msgpack:"l"`
	Right    int      `msgpack:"r"`
	Text     string   `msgpack:"t,omitempty"`
	Entities []Entity `msgpack:"e"`
	Events   []string `msgpack:"ev,omitempty"`
}

// Capture reads the world after its systems ran and before the event queue is cleared
// Entities are ordered by ID
func Capture(w *engine.World) Frame {
	c := &w.Components
	f := Frame{
		Frame: w.FrameNumber(),
		Left:  w.Resources.Score.Left(),
		Right: w.Resources.Score.Right(),
	}
	if s := w.Resources.Surface; s != nil {
		f.Width, f.Height = s.Surface.Width, s.Surface.Height
	}

	ids := c.Transform.All()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	f.Entities = make([]Entity, 0, len(ids))
	for _, e := range ids {
		tr, _ := c.Transform.Get(e)
		f.Entities = append(f.Entities, Entity{
			ID:   e,
			Kind: kindOf(w, e),
			X:    tr.Position.X,
			Y:    tr.Position.Y,
			W:    tr.Size.X,
			H:    tr.Size.Y,
		})
		if board, ok := c.Scoreboard.Get(e); ok {
			f.Text = board.Text
		}
	}

	for _, ev := range w.Resources.Event.Queue.Events() {
		f.Events = append(f.Events, ev.Type.String())
	}
	return f
}

func kindOf(w *engine.World, e core.Entity) Kind {
	c := &w.Components
	switch {
	case c.Ball.Has(e):
		return KindBall
	case c.Paddle.Has(e):
		return KindPaddle
	case c.Wall.Has(e):
		return KindWall
	case c.Goal.Has(e):
		return KindGoal
	case c.Scoreboard.Has(e):
		return KindScoreboard
	default:
		return ""
	}
}
