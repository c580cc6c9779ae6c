package logging

import (
	"log/slog"
	"strings"
)

// slogWriter forwards standard log output to slog, picking the level from a
// leading ERROR, WARN or INFO prefix
type slogWriter struct{}

func (w *slogWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")

	if rest, ok := cutLevel(msg, "ERROR"); ok {
		slog.Error(rest)
	} else if rest, ok := cutLevel(msg, "WARN"); ok {
		slog.Warn(rest)
	} else if rest, ok := cutLevel(msg, "INFO"); ok {
		slog.Info(rest)
	} else {
		slog.Debug(msg)
	}

	return len(p), nil
}

func cutLevel(msg, level string) (string, bool) {
	rest, ok := strings.CutPrefix(msg, level)
	if !ok || rest == "" {
		return msg, false
	}
	return strings.TrimLeft(rest, ": "), true
}
