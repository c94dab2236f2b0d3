package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/observability"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/snapshot"
)

// options are the command line flags
type options struct {
	config   string
	debug    bool
	record   string
	metrics  string
	headless bool
	frames   int
	replay   string
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain returns the process exit code so deferred cleanup runs before exit
func runMain(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vi-pong", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.config, "config", "", "TOML config file")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	fs.StringVar(&opts.record, "record", "", "Write msgpack frame snapshots to this file")
	fs.StringVar(&opts.metrics, "metrics", "", "Serve Prometheus metrics on this address, e.g. :9108")
	fs.BoolVar(&opts.headless, "headless", false, "Simulate without a terminal and print the final score")
	fs.IntVar(&opts.frames, "frames", 600, "Frames to simulate in headless mode")
	fs.StringVar(&opts.replay, "replay", "", "Summarize a recording made with -record and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		fmt.Fprintf(stderr, "vi-pong: %v\n", err)
		return 1
	}
	applyFlags(fs, &opts, cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.replay != "" {
		err = runReplay(opts.replay, stdout)
	} else {
		err = run(ctx, cfg, opts, stdout, logger)
	}
	if err != nil {
		logger.Error("exit", "error", err)
		fmt.Fprintf(stderr, "vi-pong: %v\n", err)
		return 1
	}
	return 0
}

// applyFlags lets explicitly set flags win over file and environment
func applyFlags(fs *flag.FlagSet, opts *options, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = opts.debug
		case "record":
			cfg.RecordPath = opts.record
		case "metrics":
			cfg.MetricsAddr = opts.metrics
		}
	})
}

func run(ctx context.Context, cfg *config.Config, opts options, stdout io.Writer, logger *slog.Logger) error {
	clock := engine.NewTimeProvider()
	keys := input.NewHoldTracker(clock, cfg.KeyRepeatDelay.Duration, cfg.KeyHoldWindow.Duration)

	gopts := []game.Option{
		game.WithLogger(logger),
		game.WithClock(clock),
		game.WithInput(keys),
	}

	if cfg.RecordPath != "" {
		f, err := os.Create(cfg.RecordPath)
		if err != nil {
			return fmt.Errorf("open recording: %w", err)
		}
		defer f.Close()

		rec, err := snapshot.NewRecorder(f, snapshot.NewHeader(time.Now()))
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Flush(); err != nil {
				logger.Error("recording flush failed", "error", err)
			}
			logger.Info("recording closed", "path", cfg.RecordPath, "frames", rec.Frames())
		}()
		gopts = append(gopts, game.WithRecorder(rec))
	}

	g := game.New(gopts...)

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		collector, err := observability.NewCollector(reg, g.Status())
		if err != nil {
			return err
		}
		g.Register(collector)
		g.ObserveFrames(collector)

		core.Go(func() {
			if err := observability.Serve(ctx, cfg.MetricsAddr, collector.Handler(), logger); err != nil {
				logger.Error("metrics exporter stopped", "error", err)
			}
		})
	}

	if opts.headless {
		return runHeadless(ctx, g, cfg, opts.frames, stdout, logger)
	}
	return runTerminal(ctx, g, cfg, keys, logger)
}

// runHeadless simulates a fixed number of frames on the default surface without input
func runHeadless(ctx context.Context, g *game.Game, cfg *config.Config, frames int, stdout io.Writer, logger *slog.Logger) error {
	g.Resize(parameter.DefaultSurfaceWidth, parameter.DefaultSurfaceHeight)

	dt := cfg.FrameInterval()
	for i := 0; i < frames && ctx.Err() == nil; i++ {
		if err := g.Tick(dt); err != nil {
			return err
		}
	}

	board := g.ScoreboardText()
	if board == "" {
		board = g.Score().Text()
	}
	logger.Info("headless run finished", "frames", g.Frame(), "score", board)
	fmt.Fprintln(stdout, board)
	return nil
}
