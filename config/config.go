// Package config loads motionlab settings from TOML or YAML and builds the
// zap logger the demos share.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/motionlab"
)

type Config struct {
	Window    WindowConfig    `toml:"window" yaml:"window"`
	Loop      LoopConfig      `toml:"loop" yaml:"loop"`
	Player    PlayerConfig    `toml:"player" yaml:"player"`
	Stars     StarsConfig     `toml:"stars" yaml:"stars"`
	Particles ParticlesConfig `toml:"particles" yaml:"particles"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging"`
	Debug     bool            `toml:"debug" yaml:"debug"`
}

type WindowConfig struct {
	Title      string `toml:"title" yaml:"title"`
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	Fullscreen bool   `toml:"fullscreen" yaml:"fullscreen"`
	ShowFPS    bool   `toml:"show_fps" yaml:"show_fps"`
}

type LoopConfig struct {
	TargetFPS float64 `toml:"target_fps" yaml:"target_fps"` // 0 = run every refresh
}

type PlayerConfig struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	Speed  float64 `toml:"speed" yaml:"speed"` // units per second
}

type StarsConfig struct {
	Count int    `toml:"count" yaml:"count"`
	Seed  uint64 `toml:"seed" yaml:"seed"`
}

type ParticlesConfig struct {
	Count int `toml:"count" yaml:"count"`
	Hues  int `toml:"hues" yaml:"hues"` // 0 = one hue per particle
	// BatchedHues is the palette size of the batched demo, which issues one
	// fill per hue. 0 falls back to Hues.
	BatchedHues int     `toml:"batched_hues" yaml:"batched_hues"`
	Radius      float64 `toml:"radius" yaml:"radius"`
	Seed        uint64  `toml:"seed" yaml:"seed"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	// Output is a file path; empty logs to stderr.
	Output string `toml:"output" yaml:"output"`
}

// Load reads path over the defaults. The format follows the extension:
// .toml, or .yaml/.yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("parse config %s: unsupported extension %q", path, ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns the defaults when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Defaults(), nil
	}
	return Load(path)
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "motionlab",
			Width:   800,
			Height:  400,
			ShowFPS: true,
		},
		Loop: LoopConfig{
			TargetFPS: 60,
		},
		Player: PlayerConfig{
			Width:  50,
			Height: 50,
			Speed:  300,
		},
		Stars: StarsConfig{
			Count: 200,
			Seed:  1,
		},
		Particles: ParticlesConfig{
			Count:       1000,
			BatchedHues: 12,
			Radius:      2,
			Seed:        1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects values the demos cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Loop.TargetFPS < 0:
		return fmt.Errorf("loop.target_fps must not be negative, got %v", c.Loop.TargetFPS)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	case c.Player.Speed < 0:
		return fmt.Errorf("player.speed must not be negative, got %v", c.Player.Speed)
	case c.Stars.Count < 0:
		return fmt.Errorf("stars.count must not be negative, got %d", c.Stars.Count)
	case c.Particles.Count < 0:
		return fmt.Errorf("particles.count must not be negative, got %d", c.Particles.Count)
	case c.Particles.Hues < 0:
		return fmt.Errorf("particles.hues must not be negative, got %d", c.Particles.Hues)
	case c.Particles.BatchedHues < 0:
		return fmt.Errorf("particles.batched_hues must not be negative, got %d", c.Particles.BatchedHues)
	}
	return nil
}

// FrameInterval converts the target frame rate to a minimum frame spacing in
// milliseconds.
func (c *Config) FrameInterval() float64 {
	if c.Loop.TargetFPS <= 0 {
		return 0
	}
	return 1000 / c.Loop.TargetFPS
}

func (c *Config) SideScroller() motionlab.SideScrollerConfig {
	return motionlab.SideScrollerConfig{
		Width:  c.Player.Width,
		Height: c.Player.Height,
		Speed:  c.Player.Speed,
	}
}

func (c *Config) Ship() motionlab.ShipConfig {
	return motionlab.ShipConfig{
		Width:  c.Player.Width,
		Height: c.Player.Height,
		Speed:  c.Player.Speed,
		Stars:  c.Stars.Count,
		Seed:   c.Stars.Seed,
	}
}

func (c *Config) ParticleConfig() motionlab.ParticleConfig {
	p := motionlab.DefaultParticleConfig()
	p.Count = c.Particles.Count
	p.Hues = c.Particles.Hues
	if c.Particles.Radius > 0 {
		p.Radius = c.Particles.Radius
	}
	return p
}

// BatchedParticleConfig is ParticleConfig with the batched demo's palette
// size.
func (c *Config) BatchedParticleConfig() motionlab.ParticleConfig {
	p := c.ParticleConfig()
	if c.Particles.BatchedHues > 0 {
		p.Hues = c.Particles.BatchedHues
	}
	return p
}

func (c *Config) RunConfig() motionlab.RunConfig {
	return motionlab.RunConfig{
		Title:      c.Window.Title,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		Fullscreen: c.Window.Fullscreen,
	}
}
