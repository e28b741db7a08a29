package stats

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Errors returned by ShapiroWilk.
var (
	ErrTooFewSamples = errors.New("stats: at least 3 observations are required")
	ErrNonFinite     = errors.New("stats: data contains NaN or infinite values")
	ErrZeroRange     = errors.New("stats: data has zero range")
)

// Polynomial coefficients from Royston (1995), algorithm AS R94.
var (
	swC1 = []float64{0, 0.221157, -0.147981, -2.07119, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.544, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
	swG  = []float64{-2.273, 0.459}
)

// ShapiroWilkResult represents the result of a Shapiro-Wilk test.
type ShapiroWilkResult struct {
	Statistic float64 // W, in (0, 1]
	PValue    float64
	N         int
}

// ShapiroWilk performs the Shapiro-Wilk test for normality using Royston's
// approximation. The null hypothesis is that the data was drawn from a normal
// distribution with unspecified mean and variance.
//
// The test is location-scale invariant. It has low power for small samples
// and rejects trivial departures from normality for very large ones
// (Royston's approximation is validated up to n = 5000).
func ShapiroWilk(x []float64) (*ShapiroWilkResult, error) {
	n := len(x)
	if n < 3 {
		return nil, errors.Wrapf(ErrTooFewSamples, "got %d", n)
	}
	if floats.HasNaN(x) {
		return nil, ErrNonFinite
	}
	for i, v := range x {
		if math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrNonFinite, "value %v at index %d", v, i)
		}
	}

	sorted := make([]float64, n)
	copy(sorted, x)
	sort.Float64s(sorted)

	span := sorted[n-1] - sorted[0]
	if span < 1e-19 {
		return nil, ErrZeroRange
	}

	// Work on range-scaled values to keep the sums well conditioned.
	for i := range sorted {
		sorted[i] /= span
	}

	a := shapiroWilkCoefficients(n)
	num := 0.0
	for i, ai := range a {
		num += ai * (sorted[n-1-i] - sorted[i])
	}

	mean := floats.Sum(sorted) / float64(n)
	ss := 0.0
	for _, v := range sorted {
		d := v - mean
		ss += d * d
	}

	w := math.Min(num*num/ss, 1)

	return &ShapiroWilkResult{
		Statistic: w,
		PValue:    shapiroWilkPValue(w, n),
		N:         n,
	}, nil
}

// shapiroWilkCoefficients returns the first n/2 weights of the antisymmetric
// coefficient vector; the full vector has unit norm.
func shapiroWilkCoefficients(n int) []float64 {
	half := n / 2
	a := make([]float64, half)
	if n == 3 {
		a[0] = math.Sqrt(0.5)
		return a
	}

	an25 := float64(n) + 0.25
	summ2 := 0.0
	for i := range a {
		a[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / an25)
		summ2 += a[i] * a[i]
	}
	summ2 *= 2
	ssumm2 := math.Sqrt(summ2)
	rsn := 1 / math.Sqrt(float64(n))
	a1 := poly(swC1, rsn) - a[0]/ssumm2

	var first int
	var fac float64
	if n > 5 {
		first = 2
		a2 := -a[1]/ssumm2 + poly(swC2, rsn)
		fac = math.Sqrt((summ2 - 2*a[0]*a[0] - 2*a[1]*a[1]) / (1 - 2*a1*a1 - 2*a2*a2))
		a[1] = a2
	} else {
		first = 1
		fac = math.Sqrt((summ2 - 2*a[0]*a[0]) / (1 - 2*a1*a1))
	}
	a[0] = a1
	for i := first; i < half; i++ {
		a[i] = -a[i] / fac
	}

	return a
}

// shapiroWilkPValue maps W to an upper-tail p-value. The n = 3 case is exact.
func shapiroWilkPValue(w float64, n int) float64 {
	if w >= 1 {
		return 1
	}
	if n == 3 {
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Pi/3)
		return math.Max(0, math.Min(1, p))
	}

	y := math.Log(1 - w)
	an := float64(n)

	var m, s float64
	if n <= 11 {
		gamma := poly(swG, an)
		if y >= gamma {
			return 1e-99
		}
		y = -math.Log(gamma - y)
		m = poly(swC3, an)
		s = math.Exp(poly(swC4, an))
	} else {
		lnN := math.Log(an)
		m = poly(swC5, lnN)
		s = math.Exp(poly(swC6, lnN))
	}

	return distuv.Normal{Mu: m, Sigma: s}.Survival(y)
}

// poly evaluates c[0] + c[1]*x + c[2]*x^2 + ...
func poly(c []float64, x float64) float64 {
	r := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}
