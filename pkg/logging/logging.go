// Package logging configures the process-wide zerolog logger. Output always
// goes to stderr: stdout is reserved for the stdio MCP transport.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// Initialize sets up the global logger. level is a zerolog level name
// ("trace", "debug", "info", "warn", "error"); unknown names fall back to
// info. With jsonOutput false, lines are rendered for humans via the console
// writer.
func Initialize(level string, jsonOutput bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if jsonOutput {
		logger = zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
		return
	}
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger = zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}

// Get returns the configured logger for injection into components that take
// their own zerolog.Logger.
func Get() zerolog.Logger {
	return logger
}

// Debug logs at debug level.
func Debug(format string, v ...interface{}) {
	logger.Debug().Msgf(format, v...)
}

// Info logs at info level.
func Info(format string, v ...interface{}) {
	logger.Info().Msgf(format, v...)
}

// Warn logs at warning level.
func Warn(format string, v ...interface{}) {
	logger.Warn().Msgf(format, v...)
}

// Error logs at error level.
func Error(format string, v ...interface{}) {
	logger.Error().Msgf(format, v...)
}
