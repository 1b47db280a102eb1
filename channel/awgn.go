// Package channel models the additive white Gaussian noise (AWGN) channel shared by
// every transmission scheme.
package channel

import (
	"math"
	"math/rand"
	"time"

	"github.com/nathanhack/radioae/internal/simerr"
	"gonum.org/v1/gonum/mat"
)

// Rate returns the code rate k/n of a scheme sending k information bits in n channel uses.
func Rate(k, n int) (float64, error) {
	if k < 1 || n < 1 {
		return 0, simerr.InvalidArgument("rate requires k>=1 and n>=1 but found k=%v n=%v", k, n)
	}
	return float64(k) / float64(n), nil
}

// NoiseStd returns the per-dimension standard deviation of the channel noise for the given
// SNR (in dB, per information bit) and code rate.
//
// Using σ^2 = N_0/2 with unit symbol energy and E_b = 1/rate
// we get σ = sqrt(1/(2*rate*10^(snr/10))).
func NoiseStd(snrDb, rate float64) (float64, error) {
	if math.IsNaN(snrDb) || math.IsInf(snrDb, 0) {
		return 0, simerr.InvalidArgument("snr must be finite but found %v", snrDb)
	}
	if !(rate > 0) {
		return 0, simerr.InvalidArgument("rate must be >0 but found %v", rate)
	}
	return math.Sqrt(1 / (2 * rate * math.Pow(10, 0.1*snrDb))), nil
}

// AWGN draws calibrated Gaussian noise from its own random source.
// It is not safe for concurrent use, same as the *rand.Rand it wraps.
type AWGN struct {
	rng *rand.Rand
}

// New creates an AWGN channel drawing from rng. A nil rng gets a time seeded source.
func New(rng *rand.Rand) *AWGN {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AWGN{rng: rng}
}

// NewWithSeed creates an AWGN channel with a deterministic source.
func NewWithSeed(seed int64) *AWGN {
	return New(rand.New(rand.NewSource(seed)))
}

// Apply returns a noisy copy of the real valued symbols, one draw per element.
func (a *AWGN) Apply(symbols mat.Matrix, snrDb, rate float64) (*mat.Dense, error) {
	σ, err := NoiseStd(snrDb, rate)
	if err != nil {
		return nil, err
	}
	result := mat.DenseCopyOf(symbols)
	a.AddNoise(result, σ)
	return result, nil
}

// ApplyComplex returns a noisy copy of complex symbols. The real and imaginary
// parts receive independent draws each with the per-dimension standard deviation.
func (a *AWGN) ApplyComplex(symbols []complex128, snrDb, rate float64) ([]complex128, error) {
	σ, err := NoiseStd(snrDb, rate)
	if err != nil {
		return nil, err
	}
	result := make([]complex128, len(symbols))
	for i, s := range symbols {
		re := a.rng.NormFloat64() * σ
		im := a.rng.NormFloat64() * σ
		result[i] = s + complex(re, im)
	}
	return result, nil
}

// AddNoise adds zero mean Gaussian noise with standard deviation std to every element
// of dst in place. A std of zero leaves dst untouched and consumes no random draws.
func (a *AWGN) AddNoise(dst *mat.Dense, std float64) {
	if std == 0 {
		return
	}
	rows, cols := dst.Dims()
	for i := 0; i < rows; i++ {
		row := dst.RawRowView(i)
		for j := 0; j < cols; j++ {
			row[j] += a.rng.NormFloat64() * std
		}
	}
}
