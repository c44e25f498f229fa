// Package config loads the optional YAML settings for the aoc2022 command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "AOC2022_CONFIG"

// DefaultPath is read when no path is given and it exists.
const DefaultPath = "aoc2022.yaml"

// Config holds the command's settings.
type Config struct {
	// InputDir is the directory holding the per-day input files.
	InputDir string `yaml:"input_dir"`
	// InputPattern is a fmt pattern taking the day number, relative to
	// InputDir.
	InputPattern string `yaml:"input_pattern"`
	Debug        bool   `yaml:"debug"`
}

// Default returns the built-in settings.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the YAML file at path. An empty path falls back to $AOC2022_CONFIG
// and then to DefaultPath; a missing DefaultPath yields the defaults.
func Load(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		path, explicit = DefaultPath, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.InputDir == "" {
		c.InputDir = "input"
	}
	if c.InputPattern == "" {
		c.InputPattern = "day_%02d/input.txt"
	}
}

func (c *Config) validate() error {
	if strings.Count(c.InputPattern, "%") != 1 {
		return fmt.Errorf("input_pattern %q must contain exactly one verb for the day", c.InputPattern)
	}
	return nil
}

// InputPath returns the default input file for day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf(c.InputPattern, day))
}
