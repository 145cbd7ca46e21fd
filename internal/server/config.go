package server

import "time"

type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`

	// ReadHeaderTimeout bounds the time to read request headers
	ReadHeaderTimeout time.Duration `conf:"read_header_timeout"`
}

const (
	DefaultHost              = "localhost"
	DefaultPort              = 3000
	DefaultReadHeaderTimeout = 30 * time.Second
)

// DefaultConfig holds the default http config, keyed by config path.
var DefaultConfig = map[string]any{
	"host":                DefaultHost,
	"port":                DefaultPort,
	"h2c":                 false,
	"read_header_timeout": DefaultReadHeaderTimeout.String(),
}
