package berkowitz

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/pkg/errors"

	"github.com/sartorproj/goberkowitz/forecast"
	"github.com/sartorproj/goberkowitz/stats"
	"github.com/sartorproj/goberkowitz/timeseries"
)

// Decision is the outcome of the backtest's hypothesis test.
type Decision int

const (
	// FailToReject means the deviates are consistent with calibrated forecasts.
	FailToReject Decision = iota
	// Reject means the forecasts are not well calibrated at the chosen alpha.
	Reject
)

func (d Decision) String() string {
	if d == Reject {
		return "reject H0"
	}
	return "fail to reject H0"
}

// Result represents the result of a Berkowitz backtest.
type Result struct {
	Decision  Decision
	PValue    float64
	Statistic float64 // normality test statistic (Shapiro-Wilk W by default)
	Alpha     float64
	N         int
	PIT       []float64 // u_i = F_i(x_i)
	Deviates  []float64 // z_i = Φ⁻¹(u_i)
}

// Rejected reports whether H0 was rejected.
func (r *Result) Rejected() bool {
	return r.Decision == Reject
}

// Transform applies the probability integral transform to each sample under
// its own forecast and maps the result to a standard normal deviate.
// A forecast probability of exactly 0 or 1 yields -Inf or +Inf in z.
func Transform(samples []float64, forecasts []forecast.Distribution) (u, z []float64, err error) {
	if len(samples) != len(forecasts) {
		return nil, nil, errors.Wrapf(ErrLengthMismatch, "%d samples, %d forecasts", len(samples), len(forecasts))
	}
	if len(samples) == 0 {
		return nil, nil, ErrEmptyInput
	}

	u = make([]float64, len(samples))
	z = make([]float64, len(samples))
	for i, x := range samples {
		if forecasts[i] == nil {
			return nil, nil, errors.Wrapf(ErrInvalidProbability, "index %d: nil forecast", i)
		}
		p, err := evaluate(forecasts[i], x)
		if err != nil {
			return nil, nil, errors.Wrapf(ErrInvalidProbability, "index %d: %v", i, err)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, nil, errors.Wrapf(ErrInvalidProbability, "index %d: F(%v) = %v", i, x, p)
		}
		u[i] = p
		z[i] = stats.NormalQuantile(p)
	}
	return u, z, nil
}

// evaluate calls d.CDF(x). A panic, such as a nil receiver behind a non-nil
// interface, is returned as an error.
func evaluate(d forecast.Distribution, x float64) (p float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("forecast CDF panicked: %v", r)
		}
	}()
	return d.CDF(x), nil
}

// Test runs the Berkowitz backtest of forecasts against the realized samples.
// forecasts[i] is the distribution that was predicted to generate samples[i].
func Test(samples []float64, forecasts []forecast.Distribution, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	if !(cfg.alpha > 0 && cfg.alpha < 1) {
		return nil, errors.Wrapf(ErrInvalidAlpha, "alpha=%v", cfg.alpha)
	}

	u, z, err := Transform(samples, forecasts)
	if err != nil {
		return nil, err
	}

	if cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		boundary := 0
		for _, v := range z {
			if math.IsInf(v, 0) {
				boundary++
			}
		}
		cfg.logger.Debug("probability integral transform complete",
			"n", len(z), "boundary", boundary)
	}

	stat, pValue, err := cfg.normality.Test(z)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNormalityTest, err)
	}

	decision := FailToReject
	if pValue < cfg.alpha {
		decision = Reject
	}

	cfg.logger.Debug("berkowitz backtest",
		"n", len(z), "statistic", stat, "p_value", pValue,
		"alpha", cfg.alpha, "decision", decision.String())

	return &Result{
		Decision:  decision,
		PValue:    pValue,
		Statistic: stat,
		Alpha:     cfg.alpha,
		N:         len(z),
		PIT:       u,
		Deviates:  z,
	}, nil
}

// TestSeries runs Test on the values of a realized series.
func TestSeries(series *timeseries.Series, forecasts []forecast.Distribution, opts ...Option) (*Result, error) {
	if series == nil {
		return nil, ErrEmptyInput
	}
	return Test(series.Values, forecasts, opts...)
}
