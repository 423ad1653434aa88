// Package logging builds the zerolog.Logger used throughout the engine and
// CLI (grounded on RedClaus-cortex/apps/cortex-avatar/internal/logging).
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a zerolog.Logger that writes console-formatted output to
// stderr, at Debug level when verbose is true and Info level otherwise.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Str("app", "balance").Logger()
}
