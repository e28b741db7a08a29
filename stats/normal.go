package stats

import "gonum.org/v1/gonum/stat/distuv"

// NormalQuantile returns the standard normal quantile of p. It returns -Inf
// for p == 0 and +Inf for p == 1, and panics outside [0, 1].
func NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// NormalCDF returns the standard normal cumulative probability of x.
func NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}
