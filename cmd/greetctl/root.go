package main

import (
	"errors"
	"fmt"

	"github.com/danmuck/greetctl/internal/greet"
	"github.com/danmuck/greetctl/internal/introspect"
	"github.com/danmuck/greetctl/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	errMissingRecipient = errors.New("recipient required")
	errDescribeArgs     = errors.New("--describe takes no recipients")
)

type rootOptions struct {
	configPath string
	phrase     string
	logLevel   levelValue
	describe   bool
	format     string
}

// levelValue is a pflag.Value over the logging level names.
type levelValue struct {
	level zerolog.Level
	set   bool
}

var _ pflag.Value = (*levelValue)(nil)

func (v *levelValue) String() string {
	if !v.set {
		return ""
	}
	return v.level.String()
}

func (v *levelValue) Set(raw string) error {
	lvl, ok := logging.ParseLevel(raw)
	if !ok {
		return fmt.Errorf("unknown log level %q", raw)
	}
	v.level = lvl
	v.set = true
	return nil
}

func (v *levelValue) Type() string {
	return "level"
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "greetctl [flags] [--] recipient...",
		Short: "Print a greeting for each recipient",
		Long: `greetctl writes one line of the form "<phrase>, <recipient>!" to stdout
for every recipient argument, in order. An empty argument greets the empty name.
Recipients that look like flags go after "--".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.describe {
				if len(args) > 0 {
					return errDescribeArgs
				}
				return nil
			}
			if len(args) == 0 {
				return errMissingRecipient
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.ConfigureRuntime()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			if opts.describe {
				return runDescribe(cmd, opts)
			}
			g, err := greet.New(greet.WithPhrase(cfg.Phrase), greet.WithOutput(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			for _, recipient := range args {
				log.Debug().Str("recipient", recipient).Str("phrase", g.Phrase()).Msg("greet")
				if err := g.Greet(recipient); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	flags.Var(&opts.logLevel, "log-level", "log level (trace|debug|info|warn|error|disabled)")
	flags.StringVar(&opts.phrase, "phrase", "", "greeting phrase, overrides the config file")
	flags.BoolVar(&opts.describe, "describe", false, "print the introspection document instead of greeting")
	flags.StringVar(&opts.format, "format", string(introspect.FormatTOML), "introspection format for --describe (toml|yaml)")
	return root
}

func runDescribe(cmd *cobra.Command, opts *rootOptions) error {
	format, err := introspect.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	return introspect.Encode(cmd.OutOrStdout(), introspect.Describe(), format)
}

// resolveConfig layers defaults, the config file and flags. The log level
// starts from the environment-configured logger, then the file, then
// --log-level.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (appConfig, error) {
	cfg := defaultAppConfig()
	if opts.configPath != "" {
		loaded, err := loadAppConfig(opts.configPath)
		if err != nil {
			return appConfig{}, err
		}
		cfg = loaded
	}
	if f := cmd.Flags().Lookup("phrase"); f != nil && f.Changed {
		cfg.Phrase = opts.phrase
	}
	if opts.logLevel.set {
		cfg.LogLevel = opts.logLevel.level
		cfg.LogLevelSet = true
	}
	if cfg.LogLevelSet {
		logging.SetLevel(cfg.LogLevel)
	}
	return cfg, nil
}
