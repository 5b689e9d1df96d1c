// Package config loads the display settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the user-tunable display settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
}

type DisplayConfig struct {
	RefreshHz int    `yaml:"refresh_hz"`
	Backlight int    `yaml:"backlight"`
	Rotated   bool   `yaml:"rotated"`
	Panel     string `yaml:"panel"`
	Drives    int    `yaml:"drives"`
	Depth     int    `yaml:"depth"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			RefreshHz: 30,
			Backlight: 90,
			Panel:     "registers",
			Drives:    4,
			Depth:     16,
		},
	}
}

// Load reads and validates a config file. Zero fields are filled with
// their defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.normalize()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	def := Default().Display
	d := &c.Display
	if d.RefreshHz == 0 {
		d.RefreshHz = def.RefreshHz
	}
	if d.Backlight == 0 {
		d.Backlight = def.Backlight
	}
	if d.Panel == "" {
		d.Panel = def.Panel
	}
	if d.Drives == 0 {
		d.Drives = def.Drives
	}
	if d.Depth == 0 {
		d.Depth = def.Depth
	}
}

var panelNames = map[string]bool{
	"registers":  true,
	"frontpanel": true,
	"memory":     true,
	"drives":     true,
	"ports":      true,
}

// Validate checks field ranges.
func Validate(c *Config) error {
	d := &c.Display
	if d.RefreshHz < 1 || d.RefreshHz > 120 {
		return fmt.Errorf("%w: refresh_hz %d out of range 1-120", ErrInvalid, d.RefreshHz)
	}
	if d.Backlight < 0 || d.Backlight > 100 {
		return fmt.Errorf("%w: backlight %d out of range 0-100", ErrInvalid, d.Backlight)
	}
	if !panelNames[d.Panel] {
		return fmt.Errorf("%w: unknown panel %q", ErrInvalid, d.Panel)
	}
	if d.Drives < 1 || d.Drives > 4 {
		return fmt.Errorf("%w: drives %d out of range 1-4", ErrInvalid, d.Drives)
	}
	if d.Depth != 12 && d.Depth != 16 {
		return fmt.Errorf("%w: depth must be 12 or 16, got %d", ErrInvalid, d.Depth)
	}
	return nil
}
