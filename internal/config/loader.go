package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "RESULTS_"
	envConfigPath = "RESULTS_CONFIG"
)

// Load layers defaults, an optional YAML file named by RESULTS_CONFIG and
// the environment (PORT, RESULTS_*), in increasing precedence.
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrLoadConfig, path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps PORT to port and RESULTS_DATABASE__DSN to database.dsn.
// Everything else, and any empty value, is skipped.
func envKey(key, value string) (string, interface{}) {
	if value == "" || key == envConfigPath {
		return "", nil
	}
	if key == "PORT" {
		return "port", value
	}
	if !strings.HasPrefix(key, envPrefix) {
		return "", nil
	}
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.ReplaceAll(key, "__", "."), value
}

func (c *Config) Validate() error {
	switch {
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	case c.Database.Driver != "sqlite" && c.Database.Driver != "pgx":
		return fmt.Errorf("%w: unknown database driver %q", ErrInvalidConfig, c.Database.Driver)
	case strings.TrimSpace(c.Database.DSN) == "":
		return fmt.Errorf("%w: database dsn must not be empty", ErrInvalidConfig)
	}
	return nil
}
