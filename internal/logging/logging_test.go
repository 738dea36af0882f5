package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gyaneshwarpardhi/simplifyadmin/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := logging.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, "json", "warn")
	l.Info("dropped")
	l.Warn("kept", "tab", "admin-bar")
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"tab":"admin-bar"`) {
		t.Errorf("expected JSON attrs, got %s", out)
	}
}
