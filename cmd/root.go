package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/replica/config"
	"github.com/lambda-feedback/replica/internal/shell"
	"github.com/lambda-feedback/replica/util/conf"
	"github.com/lambda-feedback/replica/util/logging"
)

var (
	appName  = "replica"
	appUsage = `A backend replica serving a static info endpoint and a
fast, protocol-level plain text response.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load configuration from a .json or .env file.",
				Aliases: []string{"C"},
				EnvVars: []string{config.EnvPrefix + "CONFIG"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// parse config using defaults, file, env and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:       ctx,
				Defaults:  config.DefaultConfig,
				EnvPrefix: config.EnvPrefix,
				FileName:  ctx.Path("config"),
			})
			if err != nil {
				return fmt.Errorf("error parsing config: %w", err)
			}

			// create the logger
			log, err := logging.New(logging.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				App:    appName,
			})
			if err != nil {
				return fmt.Errorf("error creating logger: %w", err)
			}

			// inject logger and config into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return err
			}

			// stderr does not support sync on every platform
			_ = log.Sync()

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time

	// Flush is called before the process exits, if set
	Flush func()
}

func Execute(params ExecuteParams) {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	code := run(context.Background(), os.Args)

	if params.Flush != nil {
		params.Flush()
	}

	os.Exit(code)
}

// run runs the app and returns the process exit code.
func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)
	if err == nil {
		return 0
	}

	if !shell.IsExitError(err) {
		fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())
	}

	return shell.ExitCode(err)
}

// parseCommandConfig parses the config of a single command, layering
// the shared config file, env vars and the command flags over defaults.
func parseCommandConfig[C any](ctx *cli.Context, defaults conf.DefaultConfig) (C, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		var zero C
		return zero, err
	}

	return conf.Parse[C](conf.ParseOptions{
		Cli:       ctx,
		Defaults:  defaults,
		EnvPrefix: config.EnvPrefix,
		FileName:  ctx.Path("config"),
		Log:       log,
	})
}
