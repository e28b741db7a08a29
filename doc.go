// Package goberkowitz provides the Berkowitz backtest for density forecasts.
//
// A density forecast predicts the whole distribution of the next observation,
// not just a point. The Berkowitz backtest asks whether a sequence of such
// forecasts was calibrated: each realized value is passed through the CDF of
// the forecast that predicted it, the resulting probabilities are mapped to
// standard normal deviates, and a normality test is applied to the deviates.
//
// # Quick Start
//
//	samples, forecasts, _ := forecast.Rolling(values, 800, forecast.NormalFitter)
//	result, err := berkowitz.Test(samples, forecasts, berkowitz.WithAlpha(0.05))
//	fmt.Println(result.Decision, result.PValue)
//
// # Packages
//
//   - berkowitz: the backtest, its options and errors
//   - forecast: forecast distributions and rolling-window fitting
//   - stats: Shapiro-Wilk normality test, normal quantiles, Ljung-Box
//   - timeseries: observation series and CSV loading
//
// # References
//
//   - Berkowitz, J. (2001). Testing Density Forecasts, With Applications to Risk Management
//   - Royston, P. (1995). Remark AS R94: A Remark on Algorithm AS 181: The W-test for Normality
package goberkowitz
