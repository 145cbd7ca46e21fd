package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/replica/app"
	"github.com/lambda-feedback/replica/app/standalone"
	"github.com/lambda-feedback/replica/internal/server"
	"github.com/lambda-feedback/replica/util/logging"
)

var (
	serveCmdDescription = `The serve command starts a http server and waits for
requests to handle. The replica answers GET / with its info
payload, GET /health with a liveness probe, and requests to
the fast path with a fixed plain text response.

The command will launch the http server and blocks indefin-
itely, processing incoming http requests.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and listen for requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Value:    server.DefaultHost,
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    server.DefaultPort,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
			&cli.DurationFlag{
				Name:     "read-header-timeout",
				Usage:    "The time allowed to read request headers.",
				Value:    server.DefaultReadHeaderTimeout,
				Category: "http",
				EnvVars:  []string{"HTTP_READ_HEADER_TIMEOUT"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := parseCommandConfig[standalone.Config](ctx, standalone.DefaultConfig)
	if err != nil {
		return err
	}

	log.Info("starting standalone server")

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
