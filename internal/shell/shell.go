package shell

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Shell runs an fx application until it is signalled to stop.
type Shell struct {
	log     *zap.Logger
	options []fx.Option
}

func New(log *zap.Logger, options ...fx.Option) *Shell {
	return &Shell{
		log:     log,
		options: options,
	}
}

// Run starts the application composed of the shell options and the given
// options, blocks until it receives a shutdown signal and stops it. Any
// non-zero exit is reported as *ExitError.
func (s *Shell) Run(ctx context.Context, options ...fx.Option) error {
	defer s.log.Sync()

	// the app context outlives start and is cancelled once stopped
	appCtx, cancelApp := context.WithCancel(ctx)
	defer cancelApp()

	app := s.newApp(appCtx, options...)
	if err := app.Err(); err != nil {
		s.log.Error("failed to build application", zap.Error(err))
		return NewExitError(1)
	}

	startCtx, cancelStart := context.WithTimeout(ctx, app.StartTimeout())
	defer cancelStart()

	if err := app.Start(startCtx); err != nil {
		s.log.Error("failed to start application", zap.Error(err))
		return NewExitError(1)
	}

	sig := <-app.Wait()

	s.log.Debug("stopping application", zap.Any("signal", sig.Signal), zap.Int("exit_code", sig.ExitCode))

	stopCtx, cancelStop := context.WithTimeout(context.WithoutCancel(ctx), app.StopTimeout())
	defer cancelStop()

	if err := app.Stop(stopCtx); err != nil {
		s.log.Error("failed to stop application", zap.Error(err))
		return NewExitError(1)
	}

	if sig.ExitCode != 0 {
		return NewExitError(sig.ExitCode)
	}

	return nil
}

func (s *Shell) newApp(ctx context.Context, options ...fx.Option) *fx.App {
	return fx.New(
		// inject app context
		fx.Supply(fx.Annotate(ctx, fx.As(new(context.Context)))),
		// inject the logger
		fx.Supply(s.log),
		// log fx events with the app logger
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: s.log.Named("fx")}
		}),
		// shell options
		fx.Options(s.options...),
		// run options
		fx.Options(options...),
	)
}
