// Package config loads runtime settings from defaults, an optional TOML file,
// .env files and VIPONG_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/vi-pong/parameter"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "VIPONG_"

// Duration decodes TOML and env strings such as "150ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds all runtime settings
type Config struct {
	FPS            int      `toml:"fps"`
	CellWidth      float64  `toml:"cell_width"`
	CellHeight     float64  `toml:"cell_height"`
	KeyRepeatDelay Duration `toml:"key_repeat_delay"` // Hold after a first press
	KeyHoldWindow  Duration `toml:"key_hold_window"`  // Hold after each auto-repeat
	MaxFrameDelta  Duration `toml:"max_frame_delta"`

	Audio  bool    `toml:"audio"`
	Volume float64 `toml:"volume"`

	MetricsAddr string `toml:"metrics_addr"` // Empty disables the exporter
	RecordPath  string `toml:"record_path"`  // Empty disables recording
	Debug       bool   `toml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FPS:            parameter.DefaultFPS,
		CellWidth:      parameter.CellWidth,
		CellHeight:     parameter.CellHeight,
		KeyRepeatDelay: Duration{parameter.KeyRepeatDelay},
		KeyHoldWindow:  Duration{parameter.KeyHoldWindow},
		MaxFrameDelta:  Duration{parameter.MaxFrameDelta},
		Audio:          true,
		Volume:         parameter.AudioMasterVolume,
	}
}

// FrameInterval converts FPS to a ticker period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Load builds a Config from defaults, the TOML file at path (skipped when empty)
// and the environment, then validates it
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config file %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	}

	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles populates the process environment from .env files
// Missing files are ignored; variables already set are never overwritten
func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("env file %s: %w", f, err)
		}
	}
	return nil
}

// applyEnv overlays VIPONG_* variables onto c
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return "", false
		}
		return v, true
	}

	if v, ok := get("FPS"); ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, envErr("FPS", err))
		if err == nil {
			c.FPS = n
		}
	}
	if v, ok := get("REPEAT_DELAY"); ok {
		errs = append(errs, envErr("REPEAT_DELAY", c.KeyRepeatDelay.UnmarshalText([]byte(v))))
	}
	if v, ok := get("HOLD_WINDOW"); ok {
		errs = append(errs, envErr("HOLD_WINDOW", c.KeyHoldWindow.UnmarshalText([]byte(v))))
	}
	if v, ok := get("MAX_FRAME_DELTA"); ok {
		errs = append(errs, envErr("MAX_FRAME_DELTA", c.MaxFrameDelta.UnmarshalText([]byte(v))))
	}
	if v, ok := get("AUDIO"); ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, envErr("AUDIO", err))
		if err == nil {
			c.Audio = b
		}
	}
	if v, ok := get("VOLUME"); ok {
		f, err := strconv.ParseFloat(v, 64)
		errs = append(errs, envErr("VOLUME", err))
		if err == nil {
			c.Volume = f
		}
	}
	if v, ok := get("METRICS_ADDR"); ok {
		c.MetricsAddr = v
	}
	if v, ok := get("RECORD"); ok {
		c.RecordPath = v
	}
	if v, ok := get("DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, envErr("DEBUG", err))
		if err == nil {
			c.Debug = b
		}
	}

	return errors.Join(errs...)
}

func envErr(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
}

// Validate rejects settings the frame loop cannot run with
func (c *Config) Validate() error {
	switch {
	case c.FPS <= 0 || c.FPS > 1000:
		return fmt.Errorf("fps %d out of range (1-1000)", c.FPS)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("cell size %gx%g must be positive", c.CellWidth, c.CellHeight)
	case c.KeyHoldWindow.Duration <= 0:
		return fmt.Errorf("key hold window %v must be positive", c.KeyHoldWindow.Duration)
	case c.KeyRepeatDelay.Duration < c.KeyHoldWindow.Duration:
		return fmt.Errorf("key repeat delay %v shorter than hold window %v", c.KeyRepeatDelay.Duration, c.KeyHoldWindow.Duration)
	case c.MaxFrameDelta.Duration <= 0:
		return fmt.Errorf("max frame delta %v must be positive", c.MaxFrameDelta.Duration)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("volume %g out of range (0-1)", c.Volume)
	}
	return nil
}
