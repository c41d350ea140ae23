// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles application configuration: reading and
// writing the YAML config file, the config search order, defaults,
// and validation of goals and patterns.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"writingbuddy/internal/pattern"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so config values can be written either
// as Go duration strings ("10m", "30s") or as bare numbers, which are
// read as seconds.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var secs int64
	if err := value.Decode(&secs); err == nil {
		*d = Duration(time.Duration(secs) * time.Second)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config represents the top-level application configuration.
type Config struct {
	// TitlePattern is the strftime pattern the entry title is
	// prefilled with (e.g. "## %Y-%m-%d").
	TitlePattern string `yaml:"title_pattern"`

	// FilePattern is the strftime pattern for the journal filename
	// (e.g. "%Y-%m.md").
	FilePattern string `yaml:"file_pattern"`

	// JournalDir is the directory journal files are written to.
	// Supports a leading "~/". Empty means the current directory.
	JournalDir string `yaml:"journal_dir,omitempty"`

	// WordGoal is the minimum word count for a session (0 = no goal).
	WordGoal int `yaml:"word_goal"`

	// TimeGoal is the minimum writing time for a session (0 = no goal).
	TimeGoal Duration `yaml:"time_goal"`

	// KeystrokeTimeout wipes the buffer when no keystroke arrives
	// within this window (0 = timer disabled).
	KeystrokeTimeout Duration `yaml:"keystroke_timeout"`

	// Strict gates leaving writing mode on the configured goals.
	Strict bool `yaml:"strict"`

	// Backspace controls whether the backspace key edits the buffer
	// while writing.
	Backspace bool `yaml:"backspace"`
}

// Default returns the built-in configuration used when no config file
// is found.
func Default() Config {
	return Config{
		TitlePattern: "## %Y-%m-%d",
		FilePattern:  "%Y-%m.md",
		Strict:       true,
		Backspace:    true,
	}
}

// Validate checks the configuration at startup so a broken config
// fails before a session starts.
func (c Config) Validate() error {
	if c.WordGoal < 0 {
		return fmt.Errorf("word_goal must not be negative (got %d)", c.WordGoal)
	}
	if c.TimeGoal < 0 {
		return fmt.Errorf("time_goal must not be negative (got %s)", c.TimeGoal.Std())
	}
	if c.KeystrokeTimeout < 0 {
		return fmt.Errorf("keystroke_timeout must not be negative (got %s)", c.KeystrokeTimeout.Std())
	}
	if err := pattern.Validate(c.TitlePattern); err != nil {
		return fmt.Errorf("title_pattern: %w", err)
	}
	if err := pattern.Validate(c.FilePattern); err != nil {
		return fmt.Errorf("file_pattern: %w", err)
	}
	return nil
}

// LocalConfigName is the config filename looked up in the current
// directory before falling back to the user config directory.
const LocalConfigName = "writingbuddy.yaml"

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "writingbuddy", "config.yaml"), nil
}

// Load resolves and reads the configuration. The search order is:
// the explicit path when given (missing file is an error), then
// ./writingbuddy.yaml, then the user config directory. When nothing
// is found the built-in defaults are returned. The second return
// value is the path the config was read from, or "" for defaults.
func Load(explicit string) (Config, string, error) {
	if explicit != "" {
		cfg, err := readConfigFile(explicit)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, explicit, nil
	}

	if _, err := os.Stat(LocalConfigName); err == nil {
		cfg, err := readConfigFile(LocalConfigName)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, LocalConfigName, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, "", err
	}
	if _, err := os.Stat(defaultPath); err == nil {
		cfg, err := readConfigFile(defaultPath)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, defaultPath, nil
	}

	return Default(), "", nil
}

// readConfigFile unmarshals over the defaults, so keys absent from the
// file keep their default values.
func readConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Init writes the default configuration to path, creating parent
// directories. It refuses to overwrite an existing file.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// ResolvePath expands a leading "~/" to the user's home directory.
func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
