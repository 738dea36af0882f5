// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvVarLogLevel is consulted when no level is configured.
const EnvVarLogLevel = "LOG_LEVEL"

// New builds a logger writing to w. format is "json" or "text"; level is
// parsed with ParseLevel, falling back to $LOG_LEVEL when empty.
func New(w io.Writer, format, level string) *slog.Logger {
	if level == "" {
		level = os.Getenv(EnvVarLogLevel)
	}
	lev := ParseLevel(level)
	opts := &slog.HandlerOptions{Level: lev, AddSource: lev <= slog.LevelDebug}

	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// SetDefault installs a stdout logger as the slog default.
func SetDefault(format, level string) *slog.Logger {
	l := New(os.Stdout, format, level)
	slog.SetDefault(l)
	return l
}

// ParseLevel maps "debug", "warn"/"warning" and "error" to slog levels;
// anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
