package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "GREETCTL_LOG_LEVEL"
	EnvLogTimestamp = "GREETCTL_LOG_TIMESTAMP"
	EnvLogNoColor   = "GREETCTL_LOG_NOCOLOR"
	EnvLogBypass    = "GREETCTL_LOG_BYPASS"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config controls the process-wide zerolog logger.
// Bypass skips console formatting and emits raw JSON lines.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Bypass    bool
	Out       io.Writer
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		applyEnvOverrides(&cfg)
		log.Logger = NewLogger(cfg)
	})
}

// SetLevel adjusts the global logger level after Configure, for flag and file
// overrides. It returns the previous level so callers can restore it.
func SetLevel(lvl zerolog.Level) zerolog.Level {
	prev := log.Logger.GetLevel()
	log.Logger = log.Logger.Level(lvl)
	return prev
}

// CurrentLevel reports the level of the global logger.
func CurrentLevel() zerolog.Level {
	return log.Logger.GetLevel()
}

// NewLogger builds a logger from cfg. Greeting output owns stdout, so a nil
// Out falls back to stderr.
func NewLogger(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.Bypass {
		cw := zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    cfg.NoColor,
			TimeFormat: time.RFC3339,
		}
		if !cfg.Timestamp {
			cw.PartsExclude = []string{zerolog.TimestampFieldName}
		}
		out = cw
	}
	ctx := zerolog.New(out).Level(cfg.Level).With().Str("app", "greetctl")
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func defaultConfig(profile Profile) Config {
	cfg := Config{Out: os.Stderr}
	switch profile {
	case ProfileTest:
		cfg.Level = zerolog.DebugLevel
		cfg.Timestamp = false
		cfg.NoColor = true
	default:
		cfg.Level = zerolog.InfoLevel
		cfg.Timestamp = true
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	flags := map[string]*bool{
		EnvLogTimestamp: &cfg.Timestamp,
		EnvLogNoColor:   &cfg.NoColor,
		EnvLogBypass:    &cfg.Bypass,
	}
	for env, dst := range flags {
		if v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(env))); err == nil {
			*dst = v
		}
	}
}

var levelAliases = map[string]zerolog.Level{
	"diagnostics": zerolog.TraceLevel,
	"warning":     zerolog.WarnLevel,
	"disabled":    zerolog.Disabled,
	"disable":     zerolog.Disabled,
	"off":         zerolog.Disabled,
	"none":        zerolog.Disabled,
	"inactive":    zerolog.Disabled,
}

// ParseLevel maps a level name to a zerolog level. The second result is false
// for blank or unknown input.
func ParseLevel(raw string) (zerolog.Level, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return zerolog.InfoLevel, false
	}
	if lvl, ok := levelAliases[name]; ok {
		return lvl, true
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel, false
	}
	return lvl, true
}
