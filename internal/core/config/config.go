// Package config handles configuration loading and validation for ghostalert.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Alert     AlertConfig     `yaml:"alert"`
	Animation AnimationConfig `yaml:"animation"`
	Theme     ThemeConfig     `yaml:"theme"`
}

// AlertConfig holds the defaults applied to every alert.
type AlertConfig struct {
	Position       string        `yaml:"position"`        // bottom, center, top
	Style          string        `yaml:"style"`           // default, light, dark
	Timeout        time.Duration `yaml:"timeout"`         // title-only alerts
	MessageTimeout time.Duration `yaml:"message_timeout"` // alerts with a message
	Dismissible    *bool         `yaml:"dismissible"`     // nil = true
	TopMargin      int           `yaml:"top_margin"`
	BottomMargin   int           `yaml:"bottom_margin"`
	MaxWidth       int           `yaml:"max_width"`
}

// AnimationConfig controls the entrance and exit transitions.
type AnimationConfig struct {
	Duration time.Duration `yaml:"duration"`
	FPS      int           `yaml:"fps"`
}

// ThemeConfig holds colours shared by the TUI.
type ThemeConfig struct {
	Backdrop string `yaml:"backdrop"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	dismissible := true
	return Config{
		Alert: AlertConfig{
			Position:       "bottom",
			Style:          "default",
			Timeout:        4 * time.Second,
			MessageTimeout: 6 * time.Second,
			Dismissible:    &dismissible,
			TopMargin:      1,
			BottomMargin:   1,
			MaxWidth:       40,
		},
		Animation: AnimationConfig{
			Duration: 300 * time.Millisecond,
			FPS:      30,
		},
		Theme: ThemeConfig{
			Backdrop: "#1a1b26",
		},
	}
}

// Load reads and validates configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses configuration from the given path without validating it, so
// that `config validate` can report every problem.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// Durations are left alone: an explicit 0 disables the timeout or animation.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Alert.Position == "" {
		c.Alert.Position = defaults.Alert.Position
	}
	if c.Alert.Style == "" {
		c.Alert.Style = defaults.Alert.Style
	}
	if c.Alert.Dismissible == nil {
		c.Alert.Dismissible = defaults.Alert.Dismissible
	}
	if c.Alert.MaxWidth == 0 {
		c.Alert.MaxWidth = defaults.Alert.MaxWidth
	}
	if c.Animation.FPS == 0 {
		c.Animation.FPS = defaults.Animation.FPS
	}
	if c.Theme.Backdrop == "" {
		c.Theme.Backdrop = defaults.Theme.Backdrop
	}
}

// IsDismissible reports whether alerts accept a tap by default.
func (c *Config) IsDismissible() bool {
	return c.Alert.Dismissible == nil || *c.Alert.Dismissible
}
