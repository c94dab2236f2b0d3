package snapshot

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/system"
)

func newWorld(t *testing.T) *engine.World {
	t.Helper()
	score := core.NewScore()
	w := engine.NewWorld(score)
	system.SpawnPlayfield(w)
	system.RegisterSystems(w, score)
	w.SetSurface(core.Surface{Width: 1280, Height: 720})
	w.PushEvent(event.EventLayoutReset, &event.LayoutResetPayload{Cause: event.ResetCauseResize})
	w.Update()
	return w
}

func TestCapture(t *testing.T) {
	w := newWorld(t)
	f := Capture(w)

	if f.Width != 1280 || f.Height != 720 {
		t.Errorf("surface = %gx%g, want 1280x720", f.Width, f.Height)
	}
	if len(f.Entities) != 8 {
		t.Fatalf("captured %d entities, want 8", len(f.Entities))
	}

	counts := make(map[Kind]int)
	for i, e := range f.Entities {
		counts[e.Kind]++
		if i > 0 && f.Entities[i-1].ID >= e.ID {
			t.Errorf("entities not ordered by id at %d", i)
		}
	}
	want := map[Kind]int{KindBall: 1, KindPaddle: 2, KindWall: 2, KindGoal: 2, KindScoreboard: 1}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%s count = %d, want %d", k, counts[k], n)
		}
	}

	if f.Text != "0 : 0" {
		t.Errorf("text = %q, want %q", f.Text, "0 : 0")
	}
	if len(f.Events) != 1 || f.Events[0] != event.EventLayoutReset.String() {
		t.Errorf("events = %v, want one layout reset", f.Events)
	}
}

func TestRecorderRoundTrip(t *testing.T) {
	w := newWorld(t)
	var buf bytes.Buffer

	h := NewHeader(time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC))
	rec, err := NewRecorder(&buf, h)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	first := Capture(w)
	w.Resources.Event.Queue.Clear()
	w.Resources.Time.Update(16*time.Millisecond, 1)
	w.Update()
	second := Capture(w)

	for _, f := range []Frame{first, second} {
		if err := rec.Record(f); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := rec.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if rec.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", rec.Frames())
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Header.Session != h.Session {
		t.Errorf("session = %v, want %v", r.Header.Session, h.Session)
	}
	if !r.Header.Started.Equal(h.Started) {
		t.Errorf("started = %v, want %v", r.Header.Started, h.Started)
	}

	got1, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(got1.Entities) != len(first.Entities) || got1.Entities[0] != first.Entities[0] {
		t.Errorf("first frame entities differ: %+v", got1.Entities)
	}

	got2, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got2.Frame != 1 {
		t.Errorf("second frame number = %d, want 1", got2.Frame)
	}
	if len(got2.Events) != 0 {
		t.Errorf("second frame events = %v, want none", got2.Events)
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestReaderRejectsGarbage(t *testing.T) {
	if _, err := NewReader(bytes.NewReader([]byte{0xc1})); err == nil {
		t.Error("expected decode error")
	}
}
