package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
title_pattern: "# %d.%m.%Y"
word_goal: 250
time_goal: 10m
keystroke_timeout: 30
strict: false
`
	if err := os.WriteFile(path, []byte(content), 0640); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if source != path {
		t.Fatalf("source = %q, want %q", source, path)
	}
	if cfg.TitlePattern != "# %d.%m.%Y" {
		t.Fatalf("TitlePattern = %q", cfg.TitlePattern)
	}
	if cfg.WordGoal != 250 {
		t.Fatalf("WordGoal = %d, want 250", cfg.WordGoal)
	}
	if cfg.TimeGoal.Std() != 10*time.Minute {
		t.Fatalf("TimeGoal = %s, want 10m", cfg.TimeGoal.Std())
	}
	// Bare numbers are seconds.
	if cfg.KeystrokeTimeout.Std() != 30*time.Second {
		t.Fatalf("KeystrokeTimeout = %s, want 30s", cfg.KeystrokeTimeout.Std())
	}
	if cfg.Strict {
		t.Fatalf("strict: false not honored")
	}
	// Keys absent from the file keep their defaults.
	if cfg.FilePattern != Default().FilePattern {
		t.Fatalf("FilePattern = %q, want default", cfg.FilePattern)
	}
	if !cfg.Backspace {
		t.Fatalf("Backspace should default to true")
	}
}

func TestLoadExplicitMissingIsError(t *testing.T) {
	t.Parallel()
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("explicit missing config file must be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	// Nothing anywhere: defaults.
	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if source != "" {
		t.Fatalf("expected defaults, got source %q", source)
	}
	if cfg.FilePattern != Default().FilePattern {
		t.Fatalf("expected default config")
	}

	// User config dir is found when present.
	userPath, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(userPath), 0750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(userPath, []byte("word_goal: 100\n"), 0640); err != nil {
		t.Fatalf("write user config: %v", err)
	}
	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("load user config: %v", err)
	}
	if source != userPath || cfg.WordGoal != 100 {
		t.Fatalf("user config not picked up (source=%q goal=%d)", source, cfg.WordGoal)
	}

	// A file in the current directory wins over the user config dir.
	if err := os.WriteFile(LocalConfigName, []byte("word_goal: 42\n"), 0640); err != nil {
		t.Fatalf("write local config: %v", err)
	}
	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("load local config: %v", err)
	}
	if source != LocalConfigName || cfg.WordGoal != 42 {
		t.Fatalf("local config should win (source=%q goal=%d)", source, cfg.WordGoal)
	}
}

func TestValidateRejectsNegativeGoals(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.WordGoal = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("negative word_goal must be rejected")
	}

	cfg = Default()
	cfg.TimeGoal = Duration(-time.Second)
	if err := cfg.Validate(); err == nil {
		t.Fatalf("negative time_goal must be rejected")
	}

	cfg = Default()
	cfg.TitlePattern = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("empty title_pattern must be rejected")
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "writingbuddy", "config.yaml")

	if err := Init(path); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("written config should round-trip to defaults: %+v", cfg)
	}

	if err := Init(path); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("init must refuse to overwrite, got %v", err)
	}
}

func TestResolvePath(t *testing.T) {
	t.Parallel()
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := ResolvePath("~/journal")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != filepath.Join(home, "journal") {
		t.Fatalf("ResolvePath(~/journal) = %q", got)
	}

	abs := "/var/tmp/journal"
	if got, _ := ResolvePath(abs); got != abs {
		t.Fatalf("absolute path must pass through, got %q", got)
	}
}
