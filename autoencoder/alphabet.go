package autoencoder

import (
	"github.com/nathanhack/radioae/internal/simerr"
	"gonum.org/v1/gonum/mat"
)

// MaxBlockSize is the largest supported message length k. The alphabet and the
// 2^k x 2^k dense layers grow exponentially; at k=10 each of those layers already
// holds a million weights (plus two Adam moments each).
const MaxBlockSize = 10

// AlphabetSize returns 2^k, the number of distinct k bit messages.
func AlphabetSize(blockSize int) (int, error) {
	if blockSize < 1 {
		return 0, simerr.InvalidArgument("block size must be >=1 but found %v", blockSize)
	}
	if blockSize > MaxBlockSize {
		return 0, simerr.ResourceExhaustion("block size %v exceeds the supported maximum of %v", blockSize, MaxBlockSize)
	}
	return 1 << blockSize, nil
}

// Alphabet returns every one-hot encoded k bit message in order: row i is message i.
// Each call returns a fresh matrix.
func Alphabet(blockSize int) (*mat.Dense, error) {
	size, err := AlphabetSize(blockSize)
	if err != nil {
		return nil, err
	}
	alphabet := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		alphabet.Set(i, i, 1)
	}
	return alphabet, nil
}

// Messages returns the message index of every one-hot row of x.
func Messages(x mat.Matrix) []int {
	return Predict(x)
}

// OneHot fills dst (rows x alphabet size) with the one-hot rows of messages.
func OneHot(dst *mat.Dense, messages []int) {
	dst.Zero()
	for i, m := range messages {
		dst.Set(i, m, 1)
	}
}
