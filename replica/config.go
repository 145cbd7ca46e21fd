package replica

// Config is the replica-specific configuration.
type Config struct {
	// AdvertisedPort is the port the replica reports in its info message
	AdvertisedPort int `conf:"advertised_port"`

	// FastPath is the route pattern the fast response emitter is mounted on
	FastPath string `conf:"fast_path"`
}

const (
	DefaultAdvertisedPort = 3000
	DefaultFastPath       = "/fast"
)

// DefaultConfig is the default replica config, keyed by config path
// relative to the replica namespace.
var DefaultConfig = map[string]any{
	"advertised_port": DefaultAdvertisedPort,
	"fast_path":       DefaultFastPath,
}
