package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/greetctl/internal/greet"
	"github.com/danmuck/greetctl/internal/logging"
	"github.com/rs/zerolog"
)

type fileConfig struct {
	Phrase   string `toml:"phrase"`
	LogLevel string `toml:"log_level"`
}

type appConfig struct {
	Phrase      string
	LogLevel    zerolog.Level
	LogLevelSet bool
}

func defaultAppConfig() appConfig {
	return appConfig{
		Phrase:   greet.DefaultPhrase,
		LogLevel: zerolog.InfoLevel,
	}
}

func loadAppConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return appConfig{}, fmt.Errorf("load greetctl config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return appConfig{}, fmt.Errorf("load greetctl config: unknown keys %s", strings.Join(keys, ", "))
	}

	if meta.IsDefined("phrase") {
		phrase := strings.TrimSpace(raw.Phrase)
		if phrase == "" {
			return appConfig{}, fmt.Errorf("load greetctl config: phrase: %w", greet.ErrEmptyPhrase)
		}
		cfg.Phrase = phrase
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return appConfig{}, fmt.Errorf("load greetctl config: log_level: unknown level %q", raw.LogLevel)
		}
		cfg.LogLevel = lvl
		cfg.LogLevelSet = true
	}

	return cfg, nil
}
