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
//  2. file (YAML) if NBASIM_CONFIG is set
//  3. env (prefix NBASIM_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("NBASIM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: NBASIM_ADDR, NBASIM_DATA_PATH, ...
	// Map env keys like NBASIM_CACHE_SIZE -> cache_size (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("NBASIM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "nbasim_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the service cannot start with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DataPath == "":
		return fmt.Errorf("%w: data_path must not be empty", ErrInvalidConfig)
	case c.BaselineArcFt <= 0:
		return fmt.Errorf("%w: baseline_arc_ft must be positive", ErrInvalidConfig)
	case c.CacheSize < 1:
		return fmt.Errorf("%w: cache_size must be at least 1", ErrInvalidConfig)
	case c.MaxShots < 0:
		return fmt.Errorf("%w: max_shots must not be negative", ErrInvalidConfig)
	case c.ColorVMax <= c.ColorVMin:
		return fmt.Errorf("%w: color_vmax must exceed color_vmin", ErrInvalidConfig)
	}
	return nil
}
