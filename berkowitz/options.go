package berkowitz

import (
	"io"
	"log/slog"

	"github.com/sartorproj/goberkowitz/stats"
)

// DefaultAlpha is the significance level used when none is given.
const DefaultAlpha = 0.05

// NormalityTest tests the null hypothesis that a sample is normally
// distributed and reports the test statistic and p-value.
type NormalityTest interface {
	Test(x []float64) (statistic, pValue float64, err error)
}

// NormalityTestFunc adapts a function to the NormalityTest interface.
type NormalityTestFunc func(x []float64) (statistic, pValue float64, err error)

// Test calls f(x).
func (f NormalityTestFunc) Test(x []float64) (float64, float64, error) {
	return f(x)
}

// ShapiroWilk is the default NormalityTest.
var ShapiroWilk NormalityTest = NormalityTestFunc(func(x []float64) (float64, float64, error) {
	r, err := stats.ShapiroWilk(x)
	if err != nil {
		return 0, 0, err
	}
	return r.Statistic, r.PValue, nil
})

type config struct {
	alpha     float64
	normality NormalityTest
	logger    *slog.Logger
}

func newConfig(opts []Option) *config {
	c := &config{
		alpha:     DefaultAlpha,
		normality: ShapiroWilk,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a backtest run.
type Option func(*config)

// WithAlpha sets the significance level. It must lie in (0, 1).
func WithAlpha(alpha float64) Option {
	return func(c *config) {
		c.alpha = alpha
	}
}

// WithNormalityTest replaces the Shapiro-Wilk test. A nil test is ignored.
func WithNormalityTest(t NormalityTest) Option {
	return func(c *config) {
		if t != nil {
			c.normality = t
		}
	}
}

// WithLogger sets the logger used for debug tracing. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
