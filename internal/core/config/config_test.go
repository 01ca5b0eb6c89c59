package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	want := DefaultConfig()
	assert.Equal(t, want.Alert.Position, cfg.Alert.Position)
	assert.Equal(t, 4*time.Second, cfg.Alert.Timeout)
	assert.Equal(t, 6*time.Second, cfg.Alert.MessageTimeout)
	assert.True(t, cfg.IsDismissible())
	assert.Equal(t, 30, cfg.Animation.FPS)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Alert.Style)
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
alert:
  position: top
  style: light
  timeout: 2s
  dismissible: false
  top_margin: 3
animation:
  duration: 0s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "top", cfg.Alert.Position)
	assert.Equal(t, "light", cfg.Alert.Style)
	assert.Equal(t, 2*time.Second, cfg.Alert.Timeout)
	assert.Equal(t, 6*time.Second, cfg.Alert.MessageTimeout, "unset keys keep defaults")
	assert.False(t, cfg.IsDismissible())
	assert.Equal(t, 3, cfg.Alert.TopMargin)
	assert.Equal(t, 1, cfg.Alert.BottomMargin)
	assert.Equal(t, time.Duration(0), cfg.Animation.Duration, "explicit zero disables animation")
	assert.Equal(t, "#1a1b26", cfg.Theme.Backdrop)
}

func TestLoad_ZeroValuesFallBackToDefaults(t *testing.T) {
	path := writeConfig(t, `
alert:
  position: ""
  max_width: 0
animation:
  fps: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bottom", cfg.Alert.Position)
	assert.Equal(t, 40, cfg.Alert.MaxWidth)
	assert.Equal(t, 30, cfg.Animation.FPS)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "alert: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfig(t, `
alert:
  position: sideways
  style: neon
`)

	_, err := Load(path)
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "alert.position", fieldErrs[0].Field)
	assert.Equal(t, "alert.style", fieldErrs[1].Field)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{name: "valid defaults", mutate: func(*Config) {}},
		{name: "negative timeout", mutate: func(c *Config) { c.Alert.Timeout = -time.Second }, wantField: "alert.timeout"},
		{name: "negative message timeout", mutate: func(c *Config) { c.Alert.MessageTimeout = -1 }, wantField: "alert.message_timeout"},
		{name: "negative top margin", mutate: func(c *Config) { c.Alert.TopMargin = -1 }, wantField: "alert.top_margin"},
		{name: "negative bottom margin", mutate: func(c *Config) { c.Alert.BottomMargin = -2 }, wantField: "alert.bottom_margin"},
		{name: "zero max width", mutate: func(c *Config) { c.Alert.MaxWidth = 0 }, wantField: "alert.max_width"},
		{name: "negative animation", mutate: func(c *Config) { c.Animation.Duration = -1 }, wantField: "animation.duration"},
		{name: "fps too high", mutate: func(c *Config) { c.Animation.FPS = 500 }, wantField: "animation.fps"},
		{name: "bad backdrop", mutate: func(c *Config) { c.Theme.Backdrop = "blue" }, wantField: "theme.backdrop"},
		{name: "short hex backdrop", mutate: func(c *Config) { c.Theme.Backdrop = "#abc" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
		})
	}
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Warnings())

	cfg.Alert.Timeout = 500 * time.Millisecond
	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "timeout", warnings[0].Item)

	cfg = DefaultConfig()
	dismissible := false
	cfg.Alert.Timeout = 0
	cfg.Alert.Dismissible = &dismissible
	warnings = cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "dismissible", warnings[0].Item)
	assert.Contains(t, warnings[0].Message, "title-only alerts")
}

func TestWarnings_NoDismissWithoutMessageTimeout(t *testing.T) {
	cfg := DefaultConfig()
	dismissible := false
	cfg.Alert.MessageTimeout = 0
	cfg.Alert.Dismissible = &dismissible

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "dismissible", warnings[0].Item)
	assert.Contains(t, warnings[0].Message, "message alerts")
	assert.NotContains(t, warnings[0].Message, "title-only")
}

func TestRead_DoesNotValidate(t *testing.T) {
	path := writeConfig(t, "alert:\n  style: neon\n")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Alert.Style)
	assert.Error(t, cfg.Validate())
}
