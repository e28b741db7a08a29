// Package stats provides the statistical primitives behind the Berkowitz
// backtest.
//
// # Normality Testing
//
// Test whether a sample is normally distributed:
//
//	// Shapiro-Wilk test (Royston's approximation)
//	// H0: data is drawn from a normal distribution
//	sw, err := stats.ShapiroWilk(values)
//	if err != nil {
//	    // fewer than 3 values, NaN/Inf input, or zero range
//	}
//	fmt.Printf("W=%.4f, p=%.4f\n", sw.Statistic, sw.PValue)
//
// # Standard Normal
//
//	z := stats.NormalQuantile(0.975) // 1.959964...
//	p := stats.NormalCDF(z)
//
// NormalQuantile returns -Inf and +Inf at probabilities 0 and 1.
//
// # Independence Diagnostics
//
// Test transformed forecast errors for autocorrelation:
//
//	acf := stats.ACF(deviates, 20)
//	significant := stats.SignificantLags(acf, stats.ConfidenceBound(len(deviates)))
//
//	// Ljung-Box test for autocorrelation
//	lb := stats.LjungBox(deviates, 10, 0)
//	if lb != nil && lb.PValue > 0.05 {
//	    // no evidence of autocorrelation
//	}
package stats
