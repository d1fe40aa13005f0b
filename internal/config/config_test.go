package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vango-dev/classbind/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Addr != ":8090" {
		t.Errorf("Addr = %q, want :8090", cfg.Addr)
	}
	if cfg.CycleInterval() != 100*time.Millisecond {
		t.Errorf("CycleInterval = %v, want 100ms", cfg.CycleInterval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want default", cfg.Addr)
	}
}

func TestLoadFileMissingIsE101(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.IsCode(err, errors.CodeConfigNotFound) {
		t.Errorf("Expected E101, got %v", err)
	}
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"addr": ":9000", "logLevel": "debug"}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Addr)
	}
	if cfg.CycleIntervalMS != 100 {
		t.Errorf("CycleIntervalMS = %d, want default 100", cfg.CycleIntervalMS)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", cfg.SlogLevel())
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"addr": `)

	_, err := Load(dir)
	if !errors.IsCode(err, errors.CodeConfigInvalid) {
		t.Errorf("Expected E102, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"zero interval", func(c *Config) { c.CycleIntervalMS = 0 }},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mut(cfg)
			if err := cfg.Validate(); !errors.IsCode(err, errors.CodeConfigInvalid) {
				t.Errorf("Expected E102, got %v", err)
			}
		})
	}
}

func TestSlogLevelMapping(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for name, want := range cases {
		cfg := &Config{LogLevel: name}
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", name, got, want)
		}
	}
}
