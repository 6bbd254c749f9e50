package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is configured")
	}
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeTo(t *testing.T) {
	var buf bytes.Buffer
	InitializeTo("", &buf)
	defer SetLogger(nil)

	LogRedraw("measuring", 42, 100)
	LogTarget(55) // debug, filtered

	out := buf.String()
	if !strings.Contains(out, "Display updated") || !strings.Contains(out, `"weight_g": 42`) {
		t.Errorf("output missing redraw line: %q", out)
	}
	if strings.Contains(out, "Target adjusted") {
		t.Errorf("debug line written at info level: %q", out)
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogMilestone("Tare complete")
	LogModeChange("setting", 10)
	LogTarget(11)

	entries := logs.AllUntimed()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].ContextMap()["phase"] != "startup" {
		t.Errorf("milestone fields = %v", entries[0].ContextMap())
	}
	if entries[1].ContextMap()["mode"] != "setting" {
		t.Errorf("mode change fields = %v", entries[1].ContextMap())
	}
	if entries[2].Level != zapcore.DebugLevel {
		t.Errorf("target level = %v, want debug", entries[2].Level)
	}
}
