// Package berkowitz implements the Berkowitz backtest for density forecasts.
//
// Each realized observation x_i is passed through the CDF of the forecast that
// predicted it (the probability integral transform, u_i = F_i(x_i)) and then
// mapped to a standard normal deviate z_i = Φ⁻¹(u_i). If every forecast is
// correct the deviates are i.i.d. standard normal; a normality test on z
// decides whether to reject that hypothesis.
//
//	result, err := berkowitz.Test(samples, forecasts, berkowitz.WithAlpha(0.05))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Decision, result.PValue) // "fail to reject H0" 0.42...
//
// # Boundary Probabilities
//
// A forecast that assigns an observation cumulative probability exactly 0 or
// 1 produces an infinite deviate. The deviate is kept as ±Inf; the default
// Shapiro-Wilk test then fails with stats.ErrNonFinite, returned wrapped in
// ErrNormalityTest. Use Transform to inspect the deviates directly.
//
// # Limitations
//
// The default normality test is location-scale invariant: it checks the shape
// of the deviates, not that their mean is 0 and variance 1. Forecasts whose
// only error is a constant shift or rescaling of an otherwise correct normal
// are not detected. Shapiro-Wilk also has little power for small samples and
// becomes very sensitive for samples in the thousands.
package berkowitz
