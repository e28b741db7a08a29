// Package timeseries holds the realized observations a forecast backtest is
// evaluated against.
//
// # Creating a Series
//
//	series := timeseries.New([]float64{0.1, -0.2, 0.05, 0.3, -0.1})
//
// # Loading from CSV
//
//	series, err := timeseries.LoadCSVColumn("returns.csv", "ret")
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.DateColumn = "date"
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Train and Evaluation Windows
//
//	train, test := series.Split(800)
//
// # Summary Statistics
//
//	mean := series.Mean()
//	std := series.Std()
package timeseries
