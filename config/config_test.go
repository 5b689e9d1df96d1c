package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "display.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "display:\n  rotated: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	def := Default().Display
	assert.True(t, cfg.Display.Rotated)
	assert.Equal(t, def.RefreshHz, cfg.Display.RefreshHz)
	assert.Equal(t, def.Backlight, cfg.Display.Backlight)
	assert.Equal(t, def.Panel, cfg.Display.Panel)
	assert.Equal(t, def.Drives, cfg.Display.Drives)
	assert.Equal(t, def.Depth, cfg.Display.Depth)
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `display:
  refresh_hz: 60
  backlight: 50
  panel: memory
  drives: 2
  depth: 12
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Display.RefreshHz)
	assert.Equal(t, 50, cfg.Display.Backlight)
	assert.Equal(t, "memory", cfg.Display.Panel)
	assert.Equal(t, 2, cfg.Display.Drives)
	assert.Equal(t, 12, cfg.Display.Depth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"refresh too high", func(c *Config) { c.Display.RefreshHz = 500 }},
		{"backlight over 100", func(c *Config) { c.Display.Backlight = 101 }},
		{"unknown panel", func(c *Config) { c.Display.Panel = "oscilloscope" }},
		{"too many drives", func(c *Config) { c.Display.Drives = 9 }},
		{"odd depth", func(c *Config) { c.Display.Depth = 24 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
