package channel

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/nathanhack/radioae/internal/simerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRate(t *testing.T) {
	tests := []struct {
		k, n     int
		expected float64
	}{
		{4, 7, 4.0 / 7.0},
		{2, 2, 1},
		{8, 8, 1},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := Rate(test.k, test.n)
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}

	r, _ := Rate(4, 7)
	assert.InDelta(t, 0.5714, r, 1e-4)

	_, err := Rate(0, 7)
	assert.True(t, errors.Is(err, simerr.ErrInvalidArgument))
}

func TestNoiseStd(t *testing.T) {
	tests := []struct {
		snr, rate float64
		expected  float64
	}{
		{0, 1, math.Sqrt(0.5)},
		{10, 1, math.Sqrt(1 / 20.0)},
		{8, 4.0 / 7.0, math.Sqrt(1 / (2 * 4.0 / 7.0 * math.Pow(10, 0.8)))},
		{-4, 0.5, math.Sqrt(1 / math.Pow(10, -0.4))},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := NoiseStd(test.snr, test.rate)
			require.NoError(t, err)
			assert.InDelta(t, test.expected, actual, 1e-12)
		})
	}
}

func TestNoiseStdInvalid(t *testing.T) {
	tests := []struct {
		snr, rate float64
	}{
		{0, 0},
		{0, -1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 1},
		{3, math.NaN()},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := NoiseStd(test.snr, test.rate)
			assert.True(t, errors.Is(err, simerr.ErrInvalidArgument), "found %v", err)

			_, err = NewWithSeed(1).Apply(mat.NewDense(1, 2, nil), test.snr, test.rate)
			assert.True(t, errors.Is(err, simerr.ErrInvalidArgument), "found %v", err)

			_, err = NewWithSeed(1).ApplyComplex([]complex128{1}, test.snr, test.rate)
			assert.True(t, errors.Is(err, simerr.ErrInvalidArgument), "found %v", err)
		})
	}
}

func TestApplyReproducible(t *testing.T) {
	symbols := mat.NewDense(3, 4, []float64{1, -1, 1, -1, 0.5, 0.5, -0.5, -0.5, 1, 1, 1, 1})

	a, err := NewWithSeed(42).Apply(symbols, 2, 4.0/7.0)
	require.NoError(t, err)
	b, err := NewWithSeed(42).Apply(symbols, 2, 4.0/7.0)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, b))

	c, err := NewWithSeed(43).Apply(symbols, 2, 4.0/7.0)
	require.NoError(t, err)
	assert.False(t, mat.Equal(a, c))

	// input untouched
	assert.Equal(t, 0.5, symbols.At(1, 0))
}

func TestApplyComplexReproducible(t *testing.T) {
	symbols := []complex128{-1, 1, 1, -1, 1}
	a, err := NewWithSeed(7).ApplyComplex(symbols, 0, 1)
	require.NoError(t, err)
	b, err := NewWithSeed(7).ApplyComplex(symbols, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, complex128(-1), symbols[0])
}

func TestApplyStatistics(t *testing.T) {
	const samples = 200_000
	snr, rate := 3.0, 0.5
	σ, _ := NoiseStd(snr, rate)

	noisy, err := NewWithSeed(1).Apply(mat.NewDense(1, samples, nil), snr, rate)
	require.NoError(t, err)

	sum, sumSq := 0.0, 0.0
	for _, v := range noisy.RawRowView(0) {
		sum += v
		sumSq += v * v
	}
	mean := sum / samples
	std := math.Sqrt(sumSq/samples - mean*mean)
	assert.InDelta(t, 0, mean, 0.01)
	assert.InDelta(t, σ, std, 0.01*σ)

	complexNoise, err := NewWithSeed(2).ApplyComplex(make([]complex128, samples), snr, rate)
	require.NoError(t, err)
	re, im := 0.0, 0.0
	for _, c := range complexNoise {
		re += real(c) * real(c)
		im += imag(c) * imag(c)
	}
	assert.InDelta(t, σ, math.Sqrt(re/samples), 0.01*σ)
	assert.InDelta(t, σ, math.Sqrt(im/samples), 0.01*σ)
}

func TestAddNoiseZeroStd(t *testing.T) {
	dst := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	NewWithSeed(1).AddNoise(dst, 0)
	assert.True(t, mat.Equal(dst, mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
}
