package linearblock_test

import (
	"context"
	"testing"

	"github.com/nathanhack/radioae/linearblock"
	"github.com/nathanhack/radioae/linearblock/hamming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearBlock_EncodeBits(t *testing.T) {
	code, err := hamming.New(context.Background(), 3, 1)
	require.NoError(t, err)

	// all 16 messages back to back
	bits := make([]uint8, 0, 16*4)
	for m := 0; m < 16; m++ {
		for i := 0; i < 4; i++ {
			bits = append(bits, uint8((m>>i)&1))
		}
	}

	encoded, err := code.EncodeBits(bits)
	require.NoError(t, err)
	require.Len(t, encoded, 16*7)

	for b := 0; b < 16; b++ {
		codeword := linearblock.VectorFromBits(encoded[b*7 : (b+1)*7])
		assert.True(t, code.Syndrome(codeword).IsZero(), "block %v is not a codeword", b)

		message := make([]uint8, 4)
		linearblock.BitsFromVector(code.Decode(codeword), message)
		assert.Equal(t, bits[b*4:(b+1)*4], message)
	}

	_, err = code.EncodeBits(make([]uint8, 5))
	assert.Error(t, err)
}

func TestLinearBlock_CodeRate(t *testing.T) {
	code, err := hamming.New(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, code.MessageLength())
	assert.Equal(t, 7, code.CodewordLength())
	assert.Equal(t, 3, code.ParitySymbols())
	assert.InDelta(t, 4.0/7.0, code.CodeRate(), 1e-12)
}
