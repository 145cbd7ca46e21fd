package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/lambda-feedback/replica/config"
	"github.com/lambda-feedback/replica/internal/shell"
	"github.com/lambda-feedback/replica/util/conf"
	"github.com/lambda-feedback/replica/util/logging"
)

// New creates the application shell from the logger and config stored in
// the cli context.
func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	return shell.New(log, SharedModule(cfg)), nil
}

// SharedModule provides the config shared by all deployment modes.
func SharedModule(cfg config.Config) fx.Option {
	return fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
		// provide replica config
		fx.Supply(cfg.Replica),
	)
}
