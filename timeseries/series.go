// Package timeseries provides the observation series container used by the backtest.
package timeseries

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

var (
	// ErrNonFinite is returned by Validate when a value is NaN or infinite.
	ErrNonFinite = errors.New("timeseries: series contains NaN or infinite values")
	// ErrLengthMismatch is returned when timestamps and values do not align.
	ErrLengthMismatch = errors.New("timeseries: timestamps and values must have the same length")
)

// Series represents an ordered sequence of realized observations.
// Timestamps are optional; when present they align with Values.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a new series from values without timestamps.
func New(values []float64) *Series {
	return &Series{
		Values: values,
	}
}

// NewWithTimestamps creates a series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d timestamps, %d values", len(timestamps), len(values))
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// HasTimestamps reports whether every value carries a timestamp.
func (s *Series) HasTimestamps() bool {
	return len(s.Values) > 0 && len(s.Timestamps) == len(s.Values)
}

// Mean calculates the arithmetic mean of the series. It returns NaN for an
// empty series.
func (s *Series) Mean() float64 {
	mean, err := stats.Mean(s.Values)
	if err != nil {
		return math.NaN()
	}
	return mean
}

// Std calculates the sample standard deviation of the series.
func (s *Series) Std() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	std, err := stats.StandardDeviationSample(s.Values)
	if err != nil {
		return math.NaN()
	}
	return std
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	min, err := stats.Min(s.Values)
	if err != nil {
		return math.NaN()
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	max, err := stats.Max(s.Values)
	if err != nil {
		return math.NaN()
	}
	return max
}

// Validate checks that every value is finite.
func (s *Series) Validate() error {
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	return nil
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	var timestamps []time.Time
	if len(s.Timestamps) >= end {
		timestamps = make([]time.Time, len(values))
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Split divides the series into a training prefix of length train and the
// remaining evaluation suffix.
func (s *Series) Split(train int) (*Series, *Series) {
	return s.Slice(0, train), s.Slice(train, len(s.Values))
}
