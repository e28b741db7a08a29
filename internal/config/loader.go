package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes every environment override, e.g. BERKOWITZ_TRAIN_SIZE.
const EnvPrefix = "BERKOWITZ_"

// FileEnv names the environment variable holding an optional YAML file path.
const FileEnv = "BERKOWITZ_CONFIG"

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if BERKOWITZ_CONFIG is set
//  3. env (prefix BERKOWITZ_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(FileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// BERKOWITZ_TRAIN_SIZE -> train_size (flat keys, underscores kept)
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	// The file path variable is not a setting.
	k.Delete("config")

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	switch {
	case !(c.Alpha > 0 && c.Alpha < 1):
		return errors.Wrapf(ErrInvalidConfig, "alpha must lie in (0, 1), got %v", c.Alpha)
	case c.TrainSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "train_size must be positive, got %d", c.TrainSize)
	case c.InputCSV == "" && c.Observations <= c.TrainSize:
		return errors.Wrapf(ErrInvalidConfig, "observations (%d) must exceed train_size (%d)", c.Observations, c.TrainSize)
	case c.InputCSV == "" && (!(c.Sigma > 0) || math.IsInf(c.Sigma, 0)):
		return errors.Wrapf(ErrInvalidConfig, "sigma must be positive, got %v", c.Sigma)
	case c.Forecaster != ForecasterNormal && c.Forecaster != ForecasterEmpirical:
		return errors.Wrapf(ErrInvalidConfig, "unknown forecaster %q", c.Forecaster)
	case c.LjungBoxLags < 0:
		return errors.Wrapf(ErrInvalidConfig, "ljungbox_lags must not be negative, got %d", c.LjungBoxLags)
	}
	return nil
}
