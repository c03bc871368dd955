package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human-readable console logger in development and a JSON
// logger otherwise. Debug output is only enabled in development.
func New(isDev bool) zerolog.Logger {
	return NewWithWriter(os.Stdout, isDev)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(w io.Writer, isDev bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if isDev {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
		}).With().Timestamp().Logger()
	}
	return zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// IsDev reports whether ENV names a development environment. An unset ENV
// counts as development.
func IsDev() bool {
	env := os.Getenv("ENV")
	return env == "" || env == "dev" || env == "development"
}
