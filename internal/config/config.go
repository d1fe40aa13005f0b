package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vango-dev/classbind/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "classbind.json"

	// DefaultAddr is the default listen address.
	DefaultAddr = ":8090"

	// DefaultCycleInterval is the default check-cycle period.
	DefaultCycleInterval = 100 * time.Millisecond

	// DefaultMetricsNamespace is the default Prometheus namespace.
	DefaultMetricsNamespace = "classbind"

	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"
)

// Config represents the complete classbind.json configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `json:"addr,omitempty"`

	// CycleIntervalMS is the check-cycle period in milliseconds.
	CycleIntervalMS int `json:"cycleIntervalMs,omitempty"`

	// MetricsNamespace is the Prometheus namespace.
	MetricsNamespace string `json:"metricsNamespace,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Addr:             DefaultAddr,
		CycleIntervalMS:  int(DefaultCycleInterval / time.Millisecond),
		MetricsNamespace: DefaultMetricsNamespace,
		LogLevel:         DefaultLogLevel,
	}
}

// Load reads classbind.json from dir, falling back to defaults when the
// file does not exist.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a configuration file. A missing file is
// E101; invalid JSON or invalid values are E102.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).Wrap(err)
		}
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err).
			WithSuggestion("Check " + ConfigFileName + " for JSON syntax errors")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("addr must not be empty")
	}
	if c.CycleIntervalMS < 1 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("cycleIntervalMs must be at least 1")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("logLevel must be one of debug, info, warn, error")
	}
	return nil
}

// CycleInterval returns the check-cycle period as a duration.
func (c *Config) CycleInterval() time.Duration {
	return time.Duration(c.CycleIntervalMS) * time.Millisecond
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
