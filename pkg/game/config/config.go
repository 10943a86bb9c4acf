// Package config loads the bot's optional YAML settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Color modes for the debug dump
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds runtime settings. None of them change decisions except
// MarkEnemies.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	DumpBoard   bool   `yaml:"dump_board"`
	Color       string `yaml:"color"`
	MarkEnemies bool   `yaml:"mark_enemies"`
	Locale      string `yaml:"locale"`
	LocaleDir   string `yaml:"locale_dir"`
}

// Default returns the settings used when no file is given
func Default() Config {
	return Config{
		LogLevel:    "info",
		Color:       ColorAuto,
		MarkEnemies: true,
		Locale:      "en_GB",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color %q: want auto, always or never", c.Color)
	}
	return nil
}
