// Package config loads the YAML run configuration for the bounce demo and
// builds its logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Backends accepted in Display.Backend.
const (
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level file layout.
type Config struct {
	Display     DisplayConfig     `yaml:"display"`
	TPS         int               `yaml:"tps"`
	MaxTicks    uint64            `yaml:"max_ticks"`
	FadeTicks   int               `yaml:"fade_ticks"`
	Sprite      SpriteConfig      `yaml:"sprite"`
	Entities    []EntityConfig    `yaml:"entities"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
	Log         LogConfig         `yaml:"log"`
	Sound       SoundConfig       `yaml:"sound"`
	Script      string            `yaml:"script"`
	Screenshots string            `yaml:"screenshot_dir"`
	Debug       bool              `yaml:"debug"`
}

// DisplayConfig selects the output device.
type DisplayConfig struct {
	Backend string `yaml:"backend"`
	Width   int    `yaml:"width"`  // ignored by the terminal backend
	Height  int    `yaml:"height"` // ignored by the terminal backend
	Scale   int    `yaml:"scale"`
	Title   string `yaml:"title"`
	ShowFPS bool   `yaml:"show_fps"`
}

// SpriteConfig picks the shared entity raster. With no Path a disc of
// Diameter pixels in Color is generated.
type SpriteConfig struct {
	Path     string `yaml:"path"`
	Diameter int    `yaml:"diameter"`
	Color    [3]int `yaml:"color"`
	Scale    int    `yaml:"scale"`
}

// EntityConfig describes one spawned entity.
type EntityConfig struct {
	X      int  `yaml:"x"`
	Y      int  `yaml:"y"`
	DX     int  `yaml:"dx"`
	DY     int  `yaml:"dy"`
	Static bool `yaml:"static"`
	Hidden bool `yaml:"hidden"`
	Player bool `yaml:"player"`
}

// DiagnosticsConfig controls frame timing reports.
type DiagnosticsConfig struct {
	Period time.Duration `yaml:"period"`
}

// SoundConfig controls the bounce chime.
type SoundConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Frequency float64       `yaml:"frequency"`
	Duration  time.Duration `yaml:"duration"`
	Volume    float64       `yaml:"volume"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Backend: BackendEbiten,
			Width:   320,
			Height:  200,
			Scale:   3,
			Title:   "blit",
		},
		TPS:       60,
		FadeTicks: 30,
		Sprite: SpriteConfig{
			Diameter: 16,
			Color:    [3]int{255, 64, 64},
			Scale:    1,
		},
		Entities: []EntityConfig{
			{X: 20, Y: 30, DX: 2, DY: 1, Player: true},
			{X: 150, Y: 80, DX: -1, DY: 2},
			{X: 0, Y: 0, Static: true},
		},
		Diagnostics: DiagnosticsConfig{Period: time.Second},
		Log:         LogConfig{Level: "info"},
		Sound: SoundConfig{
			Frequency: 880,
			Duration:  50 * time.Millisecond,
			Volume:    -2,
		},
		Screenshots: "screenshots",
	}
}

// Load reads and parses the file at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch c.Display.Backend {
	case BackendEbiten, BackendHeadless:
		if c.Display.Width <= 0 || c.Display.Height <= 0 {
			return fmt.Errorf("display %dx%d: %w", c.Display.Width, c.Display.Height, ErrInvalid)
		}
		if c.Display.Backend == BackendHeadless && c.MaxTicks == 0 && c.Script == "" {
			return fmt.Errorf("headless display needs max_ticks or script: %w", ErrInvalid)
		}
	case BackendTerminal:
	default:
		return fmt.Errorf("display backend %q: %w", c.Display.Backend, ErrInvalid)
	}
	if c.TPS < 0 {
		return fmt.Errorf("tps %d: %w", c.TPS, ErrInvalid)
	}
	if c.FadeTicks < 0 {
		return fmt.Errorf("fade_ticks %d: %w", c.FadeTicks, ErrInvalid)
	}
	if c.Sprite.Path == "" && c.Sprite.Diameter <= 0 {
		return fmt.Errorf("sprite diameter %d: %w", c.Sprite.Diameter, ErrInvalid)
	}
	if c.Sprite.Scale < 0 {
		return fmt.Errorf("sprite scale %d: %w", c.Sprite.Scale, ErrInvalid)
	}
	for i, ch := range c.Sprite.Color {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("sprite color channel %d = %d: %w", i, ch, ErrInvalid)
		}
	}
	if c.Sound.Enabled && (c.Sound.Frequency <= 0 || c.Sound.Duration <= 0) {
		return fmt.Errorf("sound %.1f Hz for %v: %w", c.Sound.Frequency, c.Sound.Duration, ErrInvalid)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	return nil
}
