package conf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/replica/util/cliflags"
)

// DefaultConfig maps config keys to default values.
type DefaultConfig map[string]any

type ParseOptions struct {
	// Cli is the cli.Context from urfave/cli
	Cli *cli.Context

	// CliMap is a map of cli flag names to config keys
	CliMap map[string]string

	// Defaults is a map of default values
	Defaults DefaultConfig

	// EnvPrefix is the prefix for env vars
	EnvPrefix string

	// FileName is the name of the configuration file to load. The
	// format is derived from the extension, either .json or .env.
	FileName string

	// Log is the logger to use
	Log *zap.Logger
}

// Parse loads the config from defaults, file, env and cli flags, in
// ascending priority, and unmarshals it into C using the `conf` tag.
func Parse[C any](opt ParseOptions) (C, error) {
	var config C

	log := opt.Log
	if log == nil {
		log = zap.NewNop()
	}

	k := koanf.New(".")

	if opt.Defaults != nil {
		if err := k.Load(confmap.Provider(opt.Defaults, "."), nil); err != nil {
			log.Error("error loading defaults", zap.Error(err))
			return config, err
		}
	}

	if opt.FileName != "" {
		if err := loadFile(k, opt.FileName, opt.EnvPrefix); err != nil {
			log.Error("error parsing file",
				zap.Error(err),
				zap.String("file", opt.FileName),
			)
			return config, err
		}
	}

	transformPrefixedEnv := func(s string) string {
		return transformEnv(s, opt.EnvPrefix)
	}

	if err := k.Load(env.Provider(opt.EnvPrefix, ".", transformPrefixedEnv), nil); err != nil {
		log.Error("error parsing env vars", zap.Error(err))
		return config, err
	}

	if opt.Cli != nil {
		transformFlag := func(s string) string {
			if opt.CliMap != nil {
				if name, ok := opt.CliMap[s]; ok {
					return name
				}
			}

			return strings.ReplaceAll(strings.ToLower(s), "-", "_")
		}

		if err := k.Load(cliflags.Provider(opt.Cli, ".", transformFlag), nil); err != nil {
			log.Error("error parsing cli flags", zap.Error(err))
			return config, err
		}
	}

	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "conf"}); err != nil {
		log.Error("error unmarshalling config", zap.Error(err))
		return config, err
	}

	return config, nil
}

func loadFile(k *koanf.Koanf, fileName, envPrefix string) error {
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".json":
		return k.Load(file.Provider(fileName), json.Parser())
	case ".env":
		// dotenv keys follow the env var naming, e.g. PREFIX_HTTP__PORT
		data, err := file.Provider(fileName).ReadBytes()
		if err != nil {
			return err
		}

		values, err := dotenv.Parser().Unmarshal(data)
		if err != nil {
			return err
		}

		mapped := make(map[string]any, len(values))
		for key, value := range values {
			if envPrefix != "" && !strings.HasPrefix(key, envPrefix) {
				continue
			}
			if name := transformEnv(key, envPrefix); name != "" {
				mapped[name] = value
			}
		}

		return k.Load(confmap.Provider(mapped, "."), nil)
	default:
		return fmt.Errorf("unsupported config file format: %q", ext)
	}
}

// transformEnv maps PREFIX_FOO__BAR_BAZ to foo.bar_baz.
func transformEnv(s, prefix string) string {
	s = strings.TrimPrefix(s, prefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}
