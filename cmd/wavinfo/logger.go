// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// parseLevel maps a level name to a zerolog level. Unknown or empty names
// fall back to info.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// newLogger returns a logger writing to w, as JSON lines or through a
// console writer.
func newLogger(w io.Writer, level zerolog.Level, json, noColor bool) zerolog.Logger {
	if !json {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    noColor,
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
