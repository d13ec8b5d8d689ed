package options

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func ptr(l slog.Level) *slog.Level { return &l }

func TestLoggerLevels(t *testing.T) {
	tests := map[string]struct {
		level   string
		enabled slog.Level
		quiet   *slog.Level
	}{
		"default": {level: "", enabled: slog.LevelWarn, quiet: ptr(slog.LevelInfo)},
		"debug":   {level: "debug", enabled: slog.LevelDebug},
		"info":    {level: "INFO", enabled: slog.LevelInfo, quiet: ptr(slog.LevelDebug)},
		"error":   {level: "error", enabled: slog.LevelError, quiet: ptr(slog.LevelWarn)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := &LogOptions{Level: tc.level}
			logger, err := o.Logger(&bytes.Buffer{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !logger.Enabled(context.Background(), tc.enabled) {
				t.Fatalf("level %v should be enabled", tc.enabled)
			}
			if tc.quiet != nil && logger.Enabled(context.Background(), *tc.quiet) {
				t.Fatalf("level %v should be disabled", *tc.quiet)
			}
		})
	}
}

func TestLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	o := &LogOptions{Level: "info"}
	logger, err := o.Logger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("saved", "key", "album-data-v2")
	if !strings.Contains(buf.String(), "key=album-data-v2") {
		t.Fatalf("unexpected log line %q", buf.String())
	}
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	o := &LogOptions{Level: "loud"}
	if _, err := o.Logger(&bytes.Buffer{}); err == nil {
		t.Fatalf("expected an error")
	}
}
