package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"  DEBUG ", zerolog.DebugLevel, true},
		{"diagnostics", zerolog.TraceLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "true")
	t.Setenv(EnvLogBypass, "not-a-bool")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)
	if cfg.Level != zerolog.ErrorLevel {
		t.Fatalf("unexpected level: %v", cfg.Level)
	}
	if cfg.Timestamp {
		t.Fatalf("expected timestamp disabled")
	}
	if !cfg.NoColor {
		t.Fatalf("expected no color")
	}
	if cfg.Bypass {
		t.Fatalf("invalid bool must leave bypass untouched")
	}
}

func TestNewLoggerBypassWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: zerolog.InfoLevel, Bypass: true, Out: &buf})
	logger.Debug().Msg("hidden")
	logger.Info().Str("recipient", "World").Msg("greeted")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, `"recipient":"World"`) || !strings.Contains(out, `"app":"greetctl"`) {
		t.Fatalf("unexpected json output: %q", out)
	}
}

func TestNewLoggerWithoutTimestampOmitsTimeColumn(t *testing.T) {
	var buf bytes.Buffer
	cfg := defaultConfig(ProfileTest)
	cfg.Out = &buf
	logger := NewLogger(cfg)
	logger.Info().Str("test", "x").Msg("start")

	out := buf.String()
	if strings.Contains(out, "<nil>") {
		t.Fatalf("time column rendered without timestamp: %q", out)
	}
	if !strings.Contains(out, "INF start") {
		t.Fatalf("unexpected console line: %q", out)
	}
}

func TestSetLevelReturnsPrevious(t *testing.T) {
	prev := SetLevel(zerolog.WarnLevel)
	t.Cleanup(func() { SetLevel(prev) })

	if got := SetLevel(zerolog.ErrorLevel); got != zerolog.WarnLevel {
		t.Fatalf("unexpected previous level: %v", got)
	}
	if CurrentLevel() != zerolog.ErrorLevel {
		t.Fatalf("unexpected current level: %v", CurrentLevel())
	}
}
