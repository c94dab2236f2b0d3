package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
)

// eventSource is the polling half of tcell.Screen
type eventSource interface {
	PollEvent() tcell.Event
}

// session is the terminal frontend state mutated by intents
type session struct {
	game   *game.Game
	sound  *audio.AudioEngine // nil when audio is disabled
	bar    *render.StatusBarRenderer
	keys   *input.HoldTracker
	rctx   render.RenderContext
	sync   func()
	logger *slog.Logger
}

func newSession(g *game.Game, sound *audio.AudioEngine, bar *render.StatusBarRenderer, keys *input.HoldTracker, rctx render.RenderContext, logger *slog.Logger) *session {
	s := &session{
		game:   g,
		sound:  sound,
		bar:    bar,
		keys:   keys,
		rctx:   rctx,
		sync:   func() {},
		logger: logger,
	}
	s.syncSound()
	return s
}

// syncSound copies the audio state into the render context and status registry
func (s *session) syncSound() {
	if s.sound == nil {
		s.rctx.Muted = true
		s.game.Status().Bools.Get(status.KeyAudioEnabled).Store(false)
		return
	}
	s.rctx.Muted = s.sound.IsMuted()
	s.rctx.Volume = s.sound.MasterVolume()
	s.game.Status().Bools.Get(status.KeyAudioEnabled).Store(s.sound.IsEnabled())
}

// handle applies one intent, returns false on quit
func (s *session) handle(intent input.Intent) bool {
	switch intent.Type {
	case input.IntentQuit:
		s.logger.Info("quit", "frame", s.game.Frame(), "score", s.game.Score().Text())
		return false
	case input.IntentToggleMute:
		if s.sound != nil {
			s.sound.ToggleMute()
		}
		s.syncSound()
	case input.IntentVolumeUp:
		s.adjustVolume(parameter.AudioVolumeStep)
	case input.IntentVolumeDown:
		s.adjustVolume(-parameter.AudioVolumeStep)
	case input.IntentToggleHelp:
		s.bar.Toggle()
	case input.IntentResize:
		s.sync()
		s.rctx.Cols, s.rctx.Rows = intent.Cols, intent.Rows
		resize(s.game, s.rctx)
	case input.IntentPaddle:
		s.keys.Press(intent.Key)
	}
	return true
}

func (s *session) adjustVolume(delta float64) {
	if s.sound == nil {
		return
	}
	v := s.sound.SetMasterVolume(s.sound.MasterVolume() + delta)
	s.logger.Debug("volume", "level", v)
	s.syncSound()
}

func runTerminal(ctx context.Context, g *game.Game, cfg *config.Config, keys *input.HoldTracker, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashTerminal(screen)
	screen.HideCursor()

	// Cancelled before Fini so the poller never blocks on a send after the loop exits
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var sound *audio.AudioEngine
	if cfg.Audio {
		acfg := audio.DefaultAudioConfig()
		acfg.MasterVolume = cfg.Volume
		sound = audio.NewAudioEngine(acfg)
		if err := sound.Start(); err != nil {
			logger.Warn("audio unavailable, continuing silent", "error", err)
		}
		defer sound.Stop()
		g.Register(sound)
	}

	orchestrator := render.NewRenderOrchestrator(screen)
	bar := orchestrator.RegisterDefaults()

	cols, rows := screen.Size()
	s := newSession(g, sound, bar, keys, render.NewRenderContext(cols, rows, cfg.CellWidth, cfg.CellHeight), logger)
	s.sync = screen.Sync
	resize(g, s.rctx)

	events := make(chan tcell.Event, 64)
	core.Go(func() { pollEvents(ctx, screen, events) })

	table := input.DefaultKeyTable()
	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !s.handle(table.Translate(ev)) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > cfg.MaxFrameDelta.Duration {
				dt = cfg.MaxFrameDelta.Duration
			}

			if err := g.Tick(dt); err != nil {
				return err
			}
			s.rctx.Frame = g.Frame()
			orchestrator.RenderFrame(s.rctx, g.World())
		}
	}
}

// pollEvents forwards terminal events until the source is finalized or ctx ends
// out is closed on return
func pollEvents(ctx context.Context, src eventSource, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// resize publishes the terminal area as the surface; an empty terminal keeps the previous surface
func resize(g *game.Game, rctx render.RenderContext) {
	s := rctx.Surface()
	if !s.Valid() {
		return
	}
	g.Resize(s.Width, s.Height)
}
