package autoencoder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	weightStdDev = 0.01
	biasInit     = 0.01
)

// Dense is a fully connected layer y = xW + b. Training updates it through the
// variables of Model.Context; inference runs here on gonum.
type Dense struct {
	W *mat.Dense // in x out
	B []float64  // out
}

func newDense(in, out int, rng *rand.Rand) *Dense {
	w := make([]float64, in*out)
	for i := range w {
		w[i] = truncatedNormal(rng, weightStdDev)
	}
	b := make([]float64, out)
	for i := range b {
		b[i] = biasInit
	}
	return &Dense{W: mat.NewDense(in, out, w), B: b}
}

// truncatedNormal draws from N(0, std^2) re-drawing anything beyond two standard deviations.
func truncatedNormal(rng *rand.Rand, std float64) float64 {
	for {
		v := rng.NormFloat64()
		if math.Abs(v) <= 2 {
			return v * std
		}
	}
}

// Dims returns the input and output widths.
func (d *Dense) Dims() (in, out int) {
	return d.W.Dims()
}

// Forward computes xW + b for every row of x.
func (d *Dense) Forward(x mat.Matrix) *mat.Dense {
	rows, _ := x.Dims()
	_, out := d.W.Dims()
	y := mat.NewDense(rows, out, nil)
	y.Mul(x, d.W)
	for i := 0; i < rows; i++ {
		floats.Add(y.RawRowView(i), d.B)
	}
	return y
}

// relu applies max(0, v) in place.
func relu(m *mat.Dense) {
	rows, _ := m.Dims()
	for i := 0; i < rows; i++ {
		row := m.RawRowView(i)
		for j, v := range row {
			if v < 0 {
				row[j] = 0
			}
		}
	}
}

// Softmax returns the row-wise softmax of logits. Each row is shifted by its
// maximum first so large logits do not overflow.
func Softmax(logits mat.Matrix) *mat.Dense {
	probs := mat.DenseCopyOf(logits)
	rows, _ := probs.Dims()
	for i := 0; i < rows; i++ {
		row := probs.RawRowView(i)
		max := floats.Max(row)
		sum := 0.0
		for j, v := range row {
			e := math.Exp(v - max)
			row[j] = e
			sum += e
		}
		floats.Scale(1/sum, row)
	}
	return probs
}

// Predict returns the arg-max column of every row.
func Predict(probs mat.Matrix) []int {
	rows, cols := probs.Dims()
	result := make([]int, rows)
	for i := 0; i < rows; i++ {
		best := 0
		for j := 1; j < cols; j++ {
			if probs.At(i, j) > probs.At(i, best) {
				best = j
			}
		}
		result[i] = best
	}
	return result
}
