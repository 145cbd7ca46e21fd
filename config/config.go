package config

import (
	"github.com/lambda-feedback/replica/replica"
	"github.com/lambda-feedback/replica/util/conf"
)

// EnvPrefix is the prefix of all env vars read by the config.
const EnvPrefix = "REPLICA_"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Replica is the replica configuration
	Replica replica.Config `conf:"replica"`
}

// DefaultConfig holds the global defaults.
var DefaultConfig = conf.Combine(
	conf.DefaultConfig{
		"log_format": "production",
		"log_level":  "info",
	},
	conf.MergeDefaults("replica", replica.DefaultConfig),
)
