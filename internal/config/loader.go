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

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if IGB_CONFIG is set
//  3. env (prefix IGB_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("IGB_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: IGB_ADDR, IGB_MONGO_URI, ...
	// Keys map to the koanf tags on the struct, underscores preserved.
	envProvider := env.Provider("IGB_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "igb_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.MongoURI == "":
		return nil, fmt.Errorf("%w: mongo_uri must not be empty", ErrInvalidConfig)
	case cfg.MongoDatabase == "":
		return nil, fmt.Errorf("%w: mongo_database must not be empty", ErrInvalidConfig)
	case len(cfg.Departments) == 0:
		return nil, fmt.Errorf("%w: departments must not be empty", ErrInvalidConfig)
	}
	return &cfg, nil
}
