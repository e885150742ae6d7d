package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 400 {
		t.Errorf("window = %dx%d, want 800x400", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Player.Speed != 300 || cfg.Stars.Count != 200 || cfg.Particles.Count != 1000 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "lab.toml", `
debug = true

[window]
title = "lab"
width = 1024

[player]
speed = 150

[particles]
hues = 12
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug || cfg.Window.Title != "lab" || cfg.Window.Width != 1024 {
		t.Errorf("window/debug not applied: %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.Window.Height != 400 || cfg.Player.Width != 50 {
		t.Errorf("defaults lost: height=%d player.width=%v", cfg.Window.Height, cfg.Player.Width)
	}
	if cfg.Player.Speed != 150 || cfg.Particles.Hues != 12 {
		t.Errorf("player/particles not applied: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "lab.yaml", `
loop:
  target_fps: 30
stars:
  count: 50
  seed: 9
logging:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Loop.TargetFPS != 30 || cfg.Stars.Count != 50 || cfg.Stars.Seed != 9 {
		t.Errorf("values not applied: %+v", cfg)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, file, content, wantErr string
	}{
		{"unknown extension", "lab.ini", "x=1", "unsupported extension"},
		{"bad toml", "lab.toml", "[window\nwidth=", "parse config"},
		{"bad yaml", "lab.yml", "window: [", "parse config"},
		{"invalid values", "lab.toml", "[player]\nwidth = -1\n", "player size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil || cfg.Window.Title != "motionlab" {
		t.Errorf("LoadOrDefault(\"\") = %+v, %v", cfg, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative fps", func(c *Config) { c.Loop.TargetFPS = -1 }},
		{"zero player", func(c *Config) { c.Player.Height = 0 }},
		{"negative speed", func(c *Config) { c.Player.Speed = -3 }},
		{"negative stars", func(c *Config) { c.Stars.Count = -1 }},
		{"negative particles", func(c *Config) { c.Particles.Count = -1 }},
		{"negative hues", func(c *Config) { c.Particles.Hues = -2 }},
		{"negative batched hues", func(c *Config) { c.Particles.BatchedHues = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := Defaults()
	cfg.Loop.TargetFPS = 50
	if got := cfg.FrameInterval(); got != 20 {
		t.Errorf("FrameInterval = %v, want 20", got)
	}
	cfg.Loop.TargetFPS = 0
	if got := cfg.FrameInterval(); got != 0 {
		t.Errorf("FrameInterval = %v, want 0 for uncapped", got)
	}
}

func TestMappers(t *testing.T) {
	cfg := Defaults()
	cfg.Particles.Hues = 4
	cfg.Particles.Radius = 0

	ship := cfg.Ship()
	if ship.Stars != 200 || ship.Speed != 300 || ship.Seed != 1 {
		t.Errorf("Ship() = %+v", ship)
	}
	ss := cfg.SideScroller()
	if ss.Width != 50 || ss.Speed != 300 {
		t.Errorf("SideScroller() = %+v", ss)
	}
	pc := cfg.ParticleConfig()
	if pc.Hues != 4 || pc.Radius != 2 || pc.Width != 300 {
		t.Errorf("ParticleConfig() = %+v", pc)
	}
	bc := cfg.BatchedParticleConfig()
	if bc.Hues != 12 || bc.Count != pc.Count || bc.Radius != pc.Radius {
		t.Errorf("BatchedParticleConfig() = %+v", bc)
	}
	rc := cfg.RunConfig()
	if rc.Width != 800 || rc.Title != "motionlab" {
		t.Errorf("RunConfig() = %+v", rc)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		cfg  LoggingConfig
		want zapcore.Level
	}{
		{LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{LoggingConfig{Level: "nonsense"}, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		logger, err := NewLogger(tt.cfg)
		if err != nil {
			t.Fatalf("NewLogger(%+v): %v", tt.cfg, err)
		}
		if !logger.Core().Enabled(tt.want) {
			t.Errorf("level %v not enabled for %+v", tt.want, tt.cfg)
		}
		if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
			t.Errorf("level %v enabled for %+v", tt.want-1, tt.cfg)
		}
	}
}

func TestNewLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.log")
	logger, err := NewLogger(LoggingConfig{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, want the message", data)
	}
}

func TestLoadSampleConfig(t *testing.T) {
	cfg, err := Load("motionlab.toml")
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if *cfg != *Defaults() {
		t.Errorf("sample config drifted from defaults:\n got %+v\nwant %+v", cfg, Defaults())
	}
}
