// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zerolog logger used for diagnostics on stderr.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// New returns a logger writing to w. Console format renders short
// human-readable lines; json emits one object per event. Unknown levels
// fall back to info.
func New(cfg types.LogConfig, w io.Writer) zerolog.Logger {
	out := w
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// WithDebug lowers cfg's level to debug when debug is set.
func WithDebug(cfg types.LogConfig, debug bool) types.LogConfig {
	if debug {
		cfg.Level = zerolog.DebugLevel.String()
	}
	return cfg
}
