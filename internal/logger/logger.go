// Package logger builds the zerolog logger shared by the server components.
// Components derive their own entries with a "component" field.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger creates the server logger for LOG_LEVEL.
// Unknown or empty level falls back to info, the level is set globally
// so every derived logger follows it.
func NewLogger(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	return log
}
