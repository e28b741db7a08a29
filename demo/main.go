// Package main runs a Berkowitz backtest of rolling-window density forecasts.
//
// By default it draws synthetic observations from a normal distribution,
// fits a normal forecast to each trailing window and tests the forecasts
// against the next observation. Settings come from BERKOWITZ_* environment
// variables or a YAML file named by BERKOWITZ_CONFIG.
package main

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goberkowitz/berkowitz"
	"github.com/sartorproj/goberkowitz/forecast"
	"github.com/sartorproj/goberkowitz/internal/config"
	"github.com/sartorproj/goberkowitz/stats"
	"github.com/sartorproj/goberkowitz/timeseries"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.Level(),
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("backtest failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	series, err := observations(cfg)
	if err != nil {
		return err
	}
	logger.Info("observations ready",
		"source", source(cfg), "n", series.Len(),
		"mean", series.Mean(), "std", series.Std(),
		"min", series.Min(), "max", series.Max())

	train, eval := series.Split(cfg.TrainSize)
	logger.Debug("windows",
		"train", train.Len(), "train_mean", train.Mean(),
		"evaluation", eval.Len(), "evaluation_mean", eval.Mean())

	fitter := forecast.NormalFitter
	if cfg.Forecaster == config.ForecasterEmpirical {
		fitter = forecast.EmpiricalFitter
	}

	samples, forecasts, err := forecast.Rolling(series.Values, cfg.TrainSize, fitter)
	if err != nil {
		return errors.Wrap(err, "build forecasts")
	}
	logger.Debug("rolling forecasts built",
		"forecaster", cfg.Forecaster, "window", cfg.TrainSize, "forecasts", len(forecasts))

	result, err := berkowitz.Test(samples, forecasts,
		berkowitz.WithAlpha(cfg.Alpha),
		berkowitz.WithLogger(logger),
	)
	if err != nil {
		return errors.Wrap(err, "berkowitz test")
	}

	logger.Info("berkowitz backtest",
		"decision", result.Decision.String(),
		"p_value", result.PValue,
		"statistic", result.Statistic,
		"alpha", result.Alpha,
		"n", result.N)

	if cfg.OutputCSV != "" {
		if err := writeDeviates(cfg.OutputCSV, eval, result.Deviates); err != nil {
			return err
		}
		logger.Info("deviates written", "path", cfg.OutputCSV, "n", result.N)
	}

	if cfg.LjungBoxLags > 0 {
		lb := stats.LjungBox(result.Deviates, cfg.LjungBoxLags, 0)
		if lb == nil {
			logger.Warn("ljung-box skipped: too few deviates", "n", result.N)
			return nil
		}
		acf := stats.ACF(result.Deviates, cfg.LjungBoxLags)
		logger.Info("deviate autocorrelation",
			"ljung_box_q", lb.Statistic, "p_value", lb.PValue, "dof", lb.DOF,
			"significant_lags", stats.SignificantLags(acf, stats.ConfidenceBound(result.N)))
	}
	return nil
}

// writeDeviates saves z as a CSV series, dated like the evaluation window
// when it carries timestamps.
func writeDeviates(path string, eval *timeseries.Series, z []float64) error {
	deviates := timeseries.New(z)
	if eval.HasTimestamps() && len(eval.Timestamps) == len(z) {
		deviates.Timestamps = eval.Timestamps
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create deviates csv")
	}
	defer f.Close()

	if err := timeseries.SaveCSV(f, deviates); err != nil {
		return err
	}
	return errors.Wrap(f.Close(), "close deviates csv")
}

func observations(cfg *config.Config) (*timeseries.Series, error) {
	if cfg.InputCSV != "" {
		series, err := timeseries.LoadCSVColumn(cfg.InputCSV, cfg.ValueColumn)
		if err != nil {
			return nil, err
		}
		if err := series.Validate(); err != nil {
			return nil, errors.Wrap(err, cfg.InputCSV)
		}
		return series, nil
	}

	gen := distuv.Normal{Mu: cfg.Mean, Sigma: cfg.Sigma, Src: rand.NewPCG(cfg.Seed, cfg.Seed)}
	values := make([]float64, cfg.Observations)
	for i := range values {
		values[i] = gen.Rand()
	}
	series := timeseries.New(values)
	series.Name = "synthetic"
	return series, nil
}

func source(cfg *config.Config) string {
	if cfg.InputCSV != "" {
		return cfg.InputCSV
	}
	return "synthetic normal"
}
