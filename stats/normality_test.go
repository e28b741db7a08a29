package stats

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestShapiroWilkReferenceValues(t *testing.T) {
	tests := []struct {
		name   string
		data   []float64
		wantW  float64
		wantP  float64
		tolerP float64
	}{
		{
			name:   "exact n=3",
			data:   []float64{1, 2, 4},
			wantW:  27.0 / 28.0,
			wantP:  0.636887,
			tolerP: 1e-5,
		},
		{
			name:   "small well behaved sample",
			data:   []float64{0.1, -0.2, 0.05, 0.3, -0.1},
			wantW:  0.978716,
			wantP:  0.927636,
			tolerP: 1e-4,
		},
		{
			name:   "skewed small sample",
			data:   []float64{148, 154, 158, 160, 161, 162, 166, 170, 182, 195, 236},
			wantW:  0.788815,
			wantP:  0.006704,
			tolerP: 1e-4,
		},
		{
			name:   "uniform grid",
			data:   []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
			wantW:  0.960375,
			wantP:  0.551372,
			tolerP: 1e-4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ShapiroWilk(tt.data)
			require.NoError(t, err)
			assert.Equal(t, len(tt.data), result.N)
			assert.InDelta(t, tt.wantW, result.Statistic, 1e-5)
			assert.InDelta(t, tt.wantP, result.PValue, tt.tolerP)
		})
	}
}

func TestShapiroWilkCoefficients(t *testing.T) {
	// Published Shapiro-Wilk table for n = 10.
	table := []float64{0.5739, 0.3291, 0.2141, 0.1224, 0.0399}
	a := shapiroWilkCoefficients(10)
	require.Len(t, a, len(table))
	for i := range table {
		assert.InDelta(t, table[i], a[i], 1e-3, "coefficient %d", i)
	}

	for _, n := range []int{3, 4, 5, 6, 7, 10, 11, 12, 50, 101, 1000} {
		a := shapiroWilkCoefficients(n)
		norm := 0.0
		for _, v := range a {
			norm += 2 * v * v
		}
		assert.InDelta(t, 1.0, norm, 1e-9, "n=%d", n)
		for i := 1; i < len(a); i++ {
			assert.Greater(t, a[i-1], a[i], "n=%d: coefficients must decrease", n)
		}
	}
}

func TestShapiroWilkLocationScaleInvariance(t *testing.T) {
	src := rand.NewPCG(7, 11)
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	data := make([]float64, 60)
	for i := range data {
		data[i] = dist.Rand()
	}
	shifted := make([]float64, len(data))
	for i, v := range data {
		shifted[i] = 3*v - 12
	}

	a, err := ShapiroWilk(data)
	require.NoError(t, err)
	b, err := ShapiroWilk(shifted)
	require.NoError(t, err)

	assert.InDelta(t, a.Statistic, b.Statistic, 1e-12)
	assert.InDelta(t, a.PValue, b.PValue, 1e-9)
}

func TestShapiroWilkPower(t *testing.T) {
	src := rand.NewPCG(1, 2)

	normal := distuv.Normal{Mu: 5, Sigma: 2, Src: src}
	values := make([]float64, 1000)
	for i := range values {
		values[i] = normal.Rand()
	}
	result, err := ShapiroWilk(values)
	require.NoError(t, err)
	t.Logf("normal sample: W=%f p=%f", result.Statistic, result.PValue)
	assert.Greater(t, result.Statistic, 0.99)

	exp := distuv.Exponential{Rate: 1, Src: src}
	skewed := make([]float64, 500)
	for i := range skewed {
		skewed[i] = exp.Rand()
	}
	result, err = ShapiroWilk(skewed)
	require.NoError(t, err)
	t.Logf("exponential sample: W=%f p=%g", result.Statistic, result.PValue)
	assert.Less(t, result.PValue, 1e-6)
}

func TestShapiroWilkErrors(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want error
	}{
		{name: "empty", data: nil, want: ErrTooFewSamples},
		{name: "two values", data: []float64{1, 2}, want: ErrTooFewSamples},
		{name: "NaN", data: []float64{1, math.NaN(), 2, 3}, want: ErrNonFinite},
		{name: "positive infinity", data: []float64{1, 2, math.Inf(1), 3}, want: ErrNonFinite},
		{name: "negative infinity", data: []float64{math.Inf(-1), 1, 2, 3}, want: ErrNonFinite},
		{name: "constant", data: []float64{4, 4, 4, 4, 4}, want: ErrZeroRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ShapiroWilk(tt.data)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestShapiroWilkPValueBounds(t *testing.T) {
	// W = 1 is a perfect fit for every n, including the exact n=3 branch.
	for _, n := range []int{3, 4, 11, 12, 20, 500} {
		assert.Equal(t, 1.0, shapiroWilkPValue(1, n), "n=%d", n)
	}
	assert.LessOrEqual(t, shapiroWilkPValue(0.9999999, 3), 1.0)
	assert.InDelta(t, 0.0, shapiroWilkPValue(0.75, 3), 1e-12)
	// Below the small-sample support the p-value is pinned.
	assert.Equal(t, 1e-99, shapiroWilkPValue(0.3, 4))
}

func TestNormalHelpers(t *testing.T) {
	assert.InDelta(t, 0.5, NormalCDF(0), 1e-15)
	assert.InDelta(t, 1.959964, NormalQuantile(0.975), 1e-6)
	assert.True(t, math.IsInf(NormalQuantile(0), -1))
	assert.True(t, math.IsInf(NormalQuantile(1), 1))
	for _, x := range []float64{-2.5, -0.3, 0, 0.05, 1.7} {
		assert.InDelta(t, x, NormalQuantile(NormalCDF(x)), 1e-9)
	}
}
