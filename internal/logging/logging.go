// Package logging provides the zerolog-based structured logging infrastructure
// shared by every atlasd component. Loggers are created once from config,
// tagged per component, and carried through context so request handlers and
// TUI commands can log with their trace id attached.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Unparseable values fall back to info.
	Level string

	// Format is "console" for human-readable output or "json" for
	// machine-readable output. Anything else defaults to console.
	Format string

	// File, when non-empty, appends logs to the given path in addition to
	// stderr.
	File string
}

// New builds a zerolog.Logger from cfg. When cfg.File cannot be opened the
// logger falls back to stderr-only output rather than failing startup.
func New(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	if cfg.Format == "json" {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr == nil {
			writers = append(writers, f)
		}
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// ComponentLogger returns a child logger tagged with the component name.
// Every package logs through one of these so log lines are attributable.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger embedded in ctx, or a disabled logger when
// none is present. Handlers must never log through a nil logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
