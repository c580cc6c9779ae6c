// Package logging sets up structured logging for the command line.
package logging

import (
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint handler writing to w as the default slog logger. Debug
// messages are only logged when verbose is set. The standard logger is redirected to
// slog so that output of dependencies ends up in the same stream.
func Setup(w io.Writer, verbose, color bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	}))
	slog.SetDefault(logger)

	lw := &slogWriter{}
	log.SetFlags(0)
	log.Default().SetOutput(lw)
	log.SetOutput(lw)

	return logger
}
