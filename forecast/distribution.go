package forecast

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is a predictive distribution that can evaluate its cumulative
// probability at a point. CDF must be non-decreasing with range [0, 1].
type Distribution interface {
	CDF(x float64) float64
}

// CDFFunc adapts an ordinary function to the Distribution interface.
type CDFFunc func(x float64) float64

// CDF calls f(x). A nil CDFFunc returns NaN.
func (f CDFFunc) CDF(x float64) float64 {
	if f == nil {
		return math.NaN()
	}
	return f(x)
}

// Normal is a Gaussian forecast with mean Mu and standard deviation Sigma.
type Normal struct {
	Mu    float64
	Sigma float64
}

// CDF returns P(X <= x).
func (n Normal) CDF(x float64) float64 {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}.CDF(x)
}

// StudentsT is a location-scale Student's t forecast with Nu degrees of freedom.
type StudentsT struct {
	Mu    float64
	Sigma float64
	Nu    float64
}

// CDF returns P(X <= x).
func (s StudentsT) CDF(x float64) float64 {
	return distuv.StudentsT{Mu: s.Mu, Sigma: s.Sigma, Nu: s.Nu}.CDF(x)
}

// Empirical is the step-function CDF of a reference sample. Observations
// outside the sample range map to exactly 0 or 1.
type Empirical struct {
	sorted []float64
}

// NewEmpirical builds an empirical forecast from sample. The sample is copied.
func NewEmpirical(sample []float64) (*Empirical, error) {
	if len(sample) == 0 {
		return nil, ErrEmptyWindow
	}
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)
	return &Empirical{sorted: sorted}, nil
}

// CDF returns the fraction of the reference sample less than or equal to x.
// A nil or empty Empirical returns NaN.
func (e *Empirical) CDF(x float64) float64 {
	if e == nil || len(e.sorted) == 0 || math.IsNaN(x) {
		return math.NaN()
	}
	return stat.CDF(x, stat.Empirical, e.sorted, nil)
}

// Len returns the size of the reference sample.
func (e *Empirical) Len() int {
	if e == nil {
		return 0
	}
	return len(e.sorted)
}
