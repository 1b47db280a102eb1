// Package autoencoder implements a jointly trained encoder/decoder pair that learns
// its own channel code: one-hot message -> encoder -> power normalization ->
// AWGN -> decoder -> softmax over all messages.
package autoencoder

import (
	"math/rand"

	"github.com/nathanhack/radioae/channel"
	"github.com/nathanhack/radioae/internal/simerr"
	"gonum.org/v1/gonum/mat"
)

// Model owns the parameters of the encoder and decoder networks for one
// (block size, channel use) pair.
type Model struct {
	BlockSize  int // k information bits per message
	ChannelUse int // n real channel symbols per message

	Encoder1 *Dense // 2^k -> 2^k, ReLU
	Encoder2 *Dense // 2^k -> n, linear
	Decoder1 *Dense // n -> 2^k, ReLU
	Output   *Dense // 2^k -> 2^k, softmax
}

// New creates a model with freshly initialized parameters drawn from rng.
func New(blockSize, channelUse int, rng *rand.Rand) (*Model, error) {
	size, err := AlphabetSize(blockSize)
	if err != nil {
		return nil, err
	}
	if channelUse < 1 {
		return nil, simerr.InvalidArgument("channel use must be >=1 but found %v", channelUse)
	}

	return &Model{
		BlockSize:  blockSize,
		ChannelUse: channelUse,
		Encoder1:   newDense(size, size, rng),
		Encoder2:   newDense(size, channelUse, rng),
		Decoder1:   newDense(channelUse, size, rng),
		Output:     newDense(size, size, rng),
	}, nil
}

// AlphabetSize is 2^k.
func (m *Model) AlphabetSize() int {
	return 1 << m.BlockSize
}

// Rate is k/n.
func (m *Model) Rate() float64 {
	r, _ := channel.Rate(m.BlockSize, m.ChannelUse)
	return r
}

// Encode maps one-hot messages (rows of x) to raw, not yet normalized, encodings.
func (m *Model) Encode(x mat.Matrix) *mat.Dense {
	h := m.Encoder1.Forward(x)
	relu(h)
	return m.Encoder2.Forward(h)
}

// Decode maps received symbols to a probability distribution over all messages.
func (m *Model) Decode(noisy mat.Matrix) *mat.Dense {
	h := m.Decoder1.Forward(noisy)
	relu(h)
	return Softmax(m.Output.Forward(h))
}

// Symbols returns the normalized channel symbols for the messages in x.
func (m *Model) Symbols(x mat.Matrix) (*mat.Dense, error) {
	return Normalize(m.Encode(x))
}

// Transmit pushes the messages in x through encoder, normalization, AWGN of
// standard deviation std and decoder, and returns the decoder's probabilities.
func (m *Model) Transmit(x mat.Matrix, std float64, awgn *channel.AWGN) (*mat.Dense, error) {
	symbols, err := m.Symbols(x)
	if err != nil {
		return nil, err
	}
	awgn.AddNoise(symbols, std)
	return m.Decode(symbols), nil
}

// Layers returns the layers in pipeline order.
func (m *Model) Layers() []*Dense {
	return []*Dense{m.Encoder1, m.Encoder2, m.Decoder1, m.Output}
}
