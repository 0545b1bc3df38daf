// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the process logger. Output always goes to
// stderr: stdout belongs to the MCP stdio transport.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger with the given level ("debug", "info",
// "warn", "error"; anything else falls back to info) and format ("json"
// or "console").
func New(level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var out = os.Stderr
	logger := zerolog.New(out)
	if strings.EqualFold(format, "console") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen})
	}

	return logger.With().Timestamp().Logger().Level(parseLevel(level))
}

// parseLevel converts a string log level to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
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
	default:
		return zerolog.InfoLevel
	}
}
