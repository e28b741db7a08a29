package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	series := New(values)

	assert.Equal(t, 5, series.Len())
	assert.False(t, series.HasTimestamps())
	assert.InDelta(t, 3.0, series.Mean(), 1e-12)
}

func TestNewWithTimestamps(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := []time.Time{base, base.AddDate(0, 0, 1)}

	series, err := NewWithTimestamps(ts, []float64{1, 2})
	require.NoError(t, err)
	assert.True(t, series.HasTimestamps())

	_, err = NewWithTimestamps(ts, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSummaryStatistics(t *testing.T) {
	series := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.InDelta(t, 5.0, series.Mean(), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), series.Std(), 1e-12)
	assert.Equal(t, 2.0, series.Min())
	assert.Equal(t, 9.0, series.Max())

	empty := New(nil)
	assert.True(t, math.IsNaN(empty.Mean()))
	assert.True(t, math.IsNaN(empty.Min()))
	assert.True(t, math.IsNaN(empty.Max()))
	assert.Equal(t, 0.0, empty.Std())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, New([]float64{1, -2, 3}).Validate())
	assert.ErrorIs(t, New([]float64{1, math.NaN()}).Validate(), ErrNonFinite)
	assert.ErrorIs(t, New([]float64{math.Inf(-1)}).Validate(), ErrNonFinite)
}

func TestSlice(t *testing.T) {
	series := New([]float64{1, 2, 3, 4, 5})

	sliced := series.Slice(1, 4)
	assert.Equal(t, []float64{2, 3, 4}, sliced.Values)

	// Slices are copies
	sliced.Values[0] = 100
	assert.Equal(t, 2.0, series.Values[1])

	assert.Equal(t, 0, series.Slice(4, 2).Len())
	assert.Equal(t, 5, series.Slice(-3, 99).Len())
}

func TestSplit(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := make([]time.Time, 5)
	for i := range ts {
		ts[i] = base.AddDate(0, 0, i)
	}
	series, err := NewWithTimestamps(ts, []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	train, test := series.Split(3)
	assert.Equal(t, []float64{1, 2, 3}, train.Values)
	assert.Equal(t, []float64{4, 5}, test.Values)
	assert.Equal(t, ts[3], test.Timestamps[0])
}
