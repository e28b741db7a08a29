// Package forecast models the predictive distributions evaluated by the
// Berkowitz backtest.
//
// A forecast set is a []Distribution aligned positionally with the realized
// observations: forecast i is the distribution predicted to generate
// observation i. Any type with a CDF method qualifies, and CDFFunc adapts a
// plain function.
//
//	forecasts := []forecast.Distribution{
//	    forecast.Normal{Mu: 0, Sigma: 1},
//	    forecast.StudentsT{Mu: 0, Sigma: 1, Nu: 5},
//	    forecast.CDFFunc(func(x float64) float64 { return myModel.CDF(x) }),
//	}
//
// Rolling builds one fitted forecast per evaluation point from a trailing
// window of the preceding observations:
//
//	samples, forecasts, err := forecast.Rolling(values, 800, forecast.NormalFitter)
package forecast
