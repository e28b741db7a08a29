// Package config loads settings for the backtest demo driver.
package config

import (
	"log/slog"
	"strings"
)

// Forecaster names accepted in Config.Forecaster.
const (
	ForecasterNormal    = "normal"
	ForecasterEmpirical = "empirical"
)

// Config holds the demo driver settings.
type Config struct {
	// Synthetic data, used when InputCSV is empty.
	Observations int     `koanf:"observations"`
	Mean         float64 `koanf:"mean"`
	Sigma        float64 `koanf:"sigma"`
	Seed         uint64  `koanf:"seed"`

	// Realized observations read from a CSV file instead of synthetic data.
	InputCSV    string `koanf:"input_csv"`
	ValueColumn string `koanf:"value_column"`

	// Optional destination for the transformed deviates.
	OutputCSV string `koanf:"output_csv"`

	// Backtest
	TrainSize    int     `koanf:"train_size"`
	Forecaster   string  `koanf:"forecaster"`
	Alpha        float64 `koanf:"alpha"`
	LjungBoxLags int     `koanf:"ljungbox_lags"`

	LogLevel string `koanf:"log_level"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Observations: 1000,
		Mean:         0,
		Sigma:        1,
		Seed:         42,
		ValueColumn:  "y",
		TrainSize:    800,
		Forecaster:   ForecasterNormal,
		Alpha:        0.05,
		LjungBoxLags: 10,
		LogLevel:     "info",
	}
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
