package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseLevel(%q) = %v,%v want %v,%v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaultConfigProfiles(t *testing.T) {
	if cfg := DefaultConfig(ProfileCLI); cfg.Level != zerolog.WarnLevel || cfg.Timestamp {
		t.Fatalf("unexpected cli config: %+v", cfg)
	}
	if cfg := DefaultConfig(ProfileService); cfg.Level != zerolog.InfoLevel || !cfg.Timestamp {
		t.Fatalf("unexpected service config: %+v", cfg)
	}
	if cfg := DefaultConfig(ProfileTest); cfg.Level != zerolog.DebugLevel {
		t.Fatalf("unexpected test config: %+v", cfg)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:     "error",
		EnvLogTimestamp: "true",
		EnvLogNoColor:   "1",
	}
	cfg := DefaultConfig(ProfileCLI)
	applyEnvOverrides(&cfg, func(k string) string { return env[k] })
	if cfg.Level != zerolog.ErrorLevel || !cfg.Timestamp || !cfg.NoColor {
		t.Fatalf("overrides not applied: %+v", cfg)
	}

	cfg = DefaultConfig(ProfileCLI)
	applyEnvOverrides(&cfg, func(string) string { return "garbage" })
	if cfg.Level != zerolog.WarnLevel || cfg.Timestamp || cfg.NoColor {
		t.Fatalf("invalid overrides applied: %+v", cfg)
	}
}

func TestNewHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.WarnLevel, NoColor: true, Out: &buf})
	logger.Info().Msg("hidden")
	logger.Warn().Str("tag", "AACT").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "tag=AACT") {
		t.Fatalf("unexpected log output: %q", out)
	}
}
