// Package config reads process configuration from the environment.
// Command-line flags take precedence over these values.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-provided defaults.
type Config struct {
	// Format is the default output format (text|json).
	Format string `env:"SKINUSE_FORMAT" envDefault:"text"`
	// DBPath is the default report database; empty disables persistence.
	DBPath string `env:"SKINUSE_DB"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"SKINUSE_LOG_LEVEL" envDefault:"warn"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// NewLogger builds the process logger: JSON records when format is "json",
// text otherwise.
func NewLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
