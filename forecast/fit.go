package forecast

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

var (
	// ErrEmptyWindow is returned when a fit has no observations to work with.
	ErrEmptyWindow = errors.New("forecast: empty window")
	// ErrZeroSpread is returned when a window has no dispersion to fit a scale to.
	ErrZeroSpread = errors.New("forecast: window has zero spread")
	// ErrBadWindow is returned by Rolling for an unusable training length.
	ErrBadWindow = errors.New("forecast: training window must be positive and shorter than the data")
)

// Fitter estimates a forecast distribution from a window of past observations.
type Fitter func(window []float64) (Distribution, error)

// FitNormal returns the maximum-likelihood normal fit of window: the sample
// mean and the population (divide by n) standard deviation.
func FitNormal(window []float64) (Normal, error) {
	if len(window) == 0 {
		return Normal{}, ErrEmptyWindow
	}
	mu, err := stats.Mean(window)
	if err != nil {
		return Normal{}, errors.Wrap(err, "mean")
	}
	sigma, err := stats.StandardDeviationPopulation(window)
	if err != nil {
		return Normal{}, errors.Wrap(err, "standard deviation")
	}
	if math.IsNaN(mu) || math.IsNaN(sigma) || math.IsInf(mu, 0) || math.IsInf(sigma, 0) {
		return Normal{}, errors.Errorf("forecast: non-finite fit mu=%v sigma=%v", mu, sigma)
	}
	if sigma == 0 {
		return Normal{}, ErrZeroSpread
	}
	return Normal{Mu: mu, Sigma: sigma}, nil
}

// NormalFitter is a Fitter backed by FitNormal.
func NormalFitter(window []float64) (Distribution, error) {
	n, err := FitNormal(window)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// EmpiricalFitter is a Fitter that uses the window itself as the forecast.
func EmpiricalFitter(window []float64) (Distribution, error) {
	e, err := NewEmpirical(window)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Rolling produces aligned samples and one-step-ahead forecasts from values.
// The first train values seed the window. For each later index t the forecast
// is fit on the train values immediately preceding it, values[t-train:t], and
// the sample is values[t]. The result has len(values)-train entries.
func Rolling(values []float64, train int, fit Fitter) ([]float64, []Distribution, error) {
	if train <= 0 || train >= len(values) {
		return nil, nil, errors.Wrapf(ErrBadWindow, "train=%d len=%d", train, len(values))
	}

	n := len(values) - train
	samples := make([]float64, n)
	forecasts := make([]Distribution, n)
	for i := 0; i < n; i++ {
		d, err := fit(values[i : train+i])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "fit window ending at %d", train+i)
		}
		samples[i] = values[train+i]
		forecasts[i] = d
	}
	return samples, forecasts, nil
}
