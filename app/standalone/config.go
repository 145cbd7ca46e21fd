package standalone

import "github.com/lambda-feedback/replica/internal/server"

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}

// DefaultConfig holds the standalone defaults.
var DefaultConfig = server.DefaultConfig
