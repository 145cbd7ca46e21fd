package logging

import (
	"go.uber.org/zap"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

// Options configures the application logger.
type Options struct {
	// Level is the minimum log level. Invalid or empty levels fall back
	// to info.
	Level string

	// Format is either production (json) or development (console).
	// Empty defaults to production.
	Format string

	// App is attached to every log entry as the app field.
	App string
}

// New builds the application logger.
func New(opt Options) (*zap.Logger, error) {
	var config zap.Config
	if opt.Format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if opt.App != "" {
		config.InitialFields = map[string]any{
			"app": opt.App,
		}
	}

	config.Level = ParseLevel(opt.Level)

	return config.Build()
}

// ParseLevel parses lvl, falling back to info.
func ParseLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
