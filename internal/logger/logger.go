package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New returns the service logger. Its level stays at debug; LOG_LEVEL is
// applied globally once the config is loaded.
func New() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Str("service", "royale-tracker").
		Logger()

	logger = logger.Level(zerolog.DebugLevel)

	return logger
}

// NewConsole is the human readable logger used by the terminal client.
func NewConsole(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Logger().
		Level(level)
}

var Module = fx.Provide(New)
