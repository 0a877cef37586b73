// Package logging builds the zerolog logger used across bookshop. The
// interactive console owns stdout, so logs always go to stderr and default to
// warn level.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zerolog.WarnLevel

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum log level to output (debug, info, warn, error).
	Level string

	// Format is console or json. Empty selects console.
	Format string

	// NoColor disables color in console format.
	NoColor bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New creates a logger from cfg.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := ParseLevel(cfg.Level)

	var w io.Writer = out
	if strings.ToLower(cfg.Format) != "json" {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// ParseLevel returns the zerolog level for s, falling back to LOG_LEVEL and
// then DefaultLevel.
func ParseLevel(s string) zerolog.Level {
	if s == "" {
		s = os.Getenv("LOG_LEVEL")
	}
	if s == "" {
		return DefaultLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}
