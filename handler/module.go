package handler

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/replica/util/logging"
)

func Module() fx.Option {
	return fx.Module("handler",
		// rename logger for module
		logging.DecorateLogger("handler"),
		// provide routes
		fx.Provide(NewInfoRoute),
		fx.Provide(NewFastRoute),
		fx.Provide(NewHealthRoute),
	)
}
