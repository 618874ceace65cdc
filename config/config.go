// Package config holds the window, logging and asset settings a game starts
// with. Files may be YAML or TOML; keys left out keep their defaults.
package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Assets  AssetsConfig  `yaml:"assets" toml:"assets"`
}

// WindowConfig describes the display the game runs in.
type WindowConfig struct {
	Title       string `yaml:"title" toml:"title"`
	Width       int    `yaml:"width" toml:"width"`
	Height      int    `yaml:"height" toml:"height"`
	Samples     int    `yaml:"samples" toml:"samples"` // multisample count; informational
	Fullscreen  bool   `yaml:"fullscreen" toml:"fullscreen"`
	ExitOnEsc   bool   `yaml:"exit_on_esc" toml:"exit_on_esc"`
	VSync       bool   `yaml:"vsync" toml:"vsync"`
	SRGB        bool   `yaml:"srgb" toml:"srgb"` // informational
	Resizable   bool   `yaml:"resizable" toml:"resizable"`
	Decorated   bool   `yaml:"decorated" toml:"decorated"`
	Controllers bool   `yaml:"controllers" toml:"controllers"` // gamepad connect/disconnect events
	TPS         int    `yaml:"tps" toml:"tps"`
	Graphics    string `yaml:"graphics" toml:"graphics"` // auto, opengl, directx or metal
	// InitUnfocused opens the window without taking keyboard focus.
	InitUnfocused bool `yaml:"init_unfocused" toml:"init_unfocused"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" or "console"
}

// AssetsConfig points at a directory of textures and sounds to load at
// startup. Watch reloads files from it as they change.
type AssetsConfig struct {
	Dir   string `yaml:"dir" toml:"dir"`
	Watch bool   `yaml:"watch" toml:"watch"`
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:       "Game",
			Width:       640,
			Height:      480,
			Samples:     0,
			Fullscreen:  false,
			ExitOnEsc:   false,
			VSync:       false,
			SRGB:        true,
			Resizable:   true,
			Decorated:   true,
			Controllers: true,
			TPS:         60,
			Graphics:    "auto",

			InitUnfocused: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

var graphicsLibraries = map[string]bool{
	"auto":    true,
	"opengl":  true,
	"directx": true,
	"metal":   true,
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.Samples < 0 {
		return fmt.Errorf("config: window samples must not be negative, got %d", w.Samples)
	}
	if w.TPS <= 0 {
		return fmt.Errorf("config: window tps must be positive, got %d", w.TPS)
	}
	if !graphicsLibraries[strings.ToLower(w.Graphics)] {
		return fmt.Errorf("config: unknown graphics library %q", w.Graphics)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("config: logging level: %w", err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: logging format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
