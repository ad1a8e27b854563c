// Package obs sets up structured logging.
package obs

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the global logger
func InitLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Parse log level
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	// Pretty print in development
	if os.Getenv("ENV") == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// Logger returns a new logger with the given component name
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// NewLogger returns a component logger writing to w, used where output must
// not go to the global sink (CLI diagnostics, tests)
func NewLogger(w io.Writer, component string) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("component", component).Logger()
}
