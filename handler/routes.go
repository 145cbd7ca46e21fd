package handler

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/replica/internal/server"
	"github.com/lambda-feedback/replica/replica"
)

type RouteParams struct {
	fx.In

	Config replica.Config
	Log    *zap.Logger
}

// NewInfoRoute serves the replica info payload on the root path only.
func NewInfoRoute(params RouteParams) (server.HttpHandlerResult, error) {
	info, err := replica.NewInfo(params.Config)
	if err != nil {
		return server.HttpHandlerResult{}, err
	}

	return server.AsHttpHandler("GET /{$}", Adapt(info, params.Log)), nil
}

// NewFastRoute serves the fast response emitter on the configured path,
// for every method.
func NewFastRoute(params RouteParams) server.HttpHandlerResult {
	path := params.Config.FastPath
	if path == "" {
		path = replica.DefaultFastPath
	}

	return server.AsHttpHandler(path, Adapt(replica.FastResponse, params.Log))
}

func NewHealthRoute(params RouteParams) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /health", Adapt(replica.Health, params.Log))
}
