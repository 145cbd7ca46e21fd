package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/replica/app"
	"github.com/lambda-feedback/replica/app/lambda"
	"github.com/lambda-feedback/replica/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the replica as an AWS Lambda
runtime interface client, which allows it to be directly
invoked by the AWS Lambda runtime. Events are translated to
http requests and served by the same routes as the serve
command.

The command will start the AWS runtime interface client and
blocks indefinitely, processing incoming AWS Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    lambda.ProxySourceApiGatewayV2.String(),
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := parseCommandConfig[lambda.Config](ctx, lambda.DefaultConfig)
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
