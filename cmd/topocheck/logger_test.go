package main

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("LOG_FORMAT", "json")
			l := setupLogger()
			if !l.Enabled(context.Background(), tt.want) {
				t.Errorf("level %v not enabled", tt.want)
			}
			if l.Enabled(context.Background(), tt.want-1) {
				t.Errorf("level %v enabled, want only %v and above", tt.want-1, tt.want)
			}
		})
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("TOPOCHECK_TEST", "")
	if got := envOr("TOPOCHECK_TEST", "all"); got != "all" {
		t.Errorf("envOr() = %q, want all", got)
	}
	t.Setenv("TOPOCHECK_TEST", "dangle")
	if got := envOr("TOPOCHECK_TEST", "all"); got != "dangle" {
		t.Errorf("envOr() = %q, want dangle", got)
	}
}
