package autoencoder

import (
	"math"

	"github.com/nathanhack/radioae/internal/simerr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ZeroNormTolerance is the smallest L2 norm an encoding row may have before
// normalization reports a numeric degeneracy.
const ZeroNormTolerance = 1e-12

// Normalize scales every row of raw to an L2 norm of sqrt(n), n being the number of
// columns, so each block carries unit average energy per channel use.
func Normalize(raw mat.Matrix) (*mat.Dense, error) {
	rows, n := raw.Dims()
	scale := math.Sqrt(float64(n))

	result := mat.DenseCopyOf(raw)
	for i := 0; i < rows; i++ {
		row := result.RawRowView(i)
		norm := floats.Norm(row, 2)
		if !(norm >= ZeroNormTolerance) || math.IsInf(norm, 0) {
			return nil, simerr.NumericDegeneracy("encoding row %v has norm %v", i, norm)
		}
		floats.Scale(scale/norm, row)
	}
	return result, nil
}

// MeanEnergy returns the mean squared symbol magnitude of every row.
func MeanEnergy(symbols mat.Matrix) []float64 {
	rows, n := symbols.Dims()
	result := make([]float64, rows)
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			v := symbols.At(i, j)
			sum += v * v
		}
		result[i] = sum / float64(n)
	}
	return result
}
