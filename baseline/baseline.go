// Package baseline holds the classical schemes the autoencoder is compared with.
// Every scheme works on flat bitstreams: Encode turns k bit messages into n bit
// channel words and Decode turns received hard decided words back into messages.
package baseline

import (
	"context"
	"fmt"

	"github.com/nathanhack/radioae/internal/simerr"
	"github.com/nathanhack/radioae/linearblock"
	"github.com/nathanhack/radioae/linearblock/hamming"
	"github.com/nathanhack/radioae/linearblock/harddecision"
)

// Uncoded sends the message bits as they are, so k == n.
type Uncoded struct {
	Bits int
}

func NewUncoded(blockSize int) (*Uncoded, error) {
	if blockSize < 1 {
		return nil, simerr.InvalidArgument("block size must be >=1 but found %v", blockSize)
	}
	return &Uncoded{Bits: blockSize}, nil
}

func (u *Uncoded) Name() string {
	return fmt.Sprintf("Uncoded BPSK (%v,%v)", u.Bits, u.Bits)
}

func (u *Uncoded) BlockSize() int  { return u.Bits }
func (u *Uncoded) ChannelUse() int { return u.Bits }

func (u *Uncoded) Encode(bits []uint8) ([]uint8, error) {
	if len(bits)%u.Bits != 0 {
		return nil, simerr.InvalidArgument("bitstream length %v is not a multiple of %v", len(bits), u.Bits)
	}
	return append([]uint8(nil), bits...), nil
}

func (u *Uncoded) Decode(bits []uint8) ([]uint8, error) {
	return u.Encode(bits)
}

// DefaultMaxIter bounds the bit flipping iterations per codeword.
const DefaultMaxIter = 50

// Hamming encodes with a systematic Hamming code and corrects hard decided codewords
// with Gallager bit flipping, which for a Hamming code fixes any single bit error.
type Hamming struct {
	Code    *linearblock.LinearBlock
	MaxIter int
}

// NewHamming builds the Hamming code mapped to blockSize.
func NewHamming(ctx context.Context, blockSize int) (*Hamming, error) {
	code, err := hamming.ForBlockSize(ctx, blockSize, 1)
	if err != nil {
		return nil, err
	}
	return &Hamming{Code: code, MaxIter: DefaultMaxIter}, nil
}

func (h *Hamming) Name() string {
	return fmt.Sprintf("Hamming (%v,%v)", h.ChannelUse(), h.BlockSize())
}

func (h *Hamming) BlockSize() int  { return h.Code.MessageLength() }
func (h *Hamming) ChannelUse() int { return h.Code.CodewordLength() }

func (h *Hamming) Encode(bits []uint8) ([]uint8, error) {
	words, err := h.Code.EncodeBits(bits)
	if err != nil {
		return nil, simerr.InvalidArgument("%v", err)
	}
	return words, nil
}

// Decode corrects every received codeword then strips the parity symbols.
// A codeword the flipping rule can not bring to a zero syndrome is decoded as is.
func (h *Hamming) Decode(bits []uint8) ([]uint8, error) {
	k, n := h.BlockSize(), h.ChannelUse()
	if len(bits)%n != 0 {
		return nil, simerr.InvalidArgument("bitstream length %v is not a multiple of %v", len(bits), n)
	}

	blocks := len(bits) / n
	result := make([]uint8, blocks*k)
	alg := harddecision.NewGallager(h.Code.H)
	for b := 0; b < blocks; b++ {
		received := linearblock.VectorFromBits(bits[b*n : (b+1)*n])
		alg.Reset()
		corrected, _ := harddecision.BitFlipping(alg, h.Code.H, received, h.MaxIter)
		linearblock.BitsFromVector(h.Code.Decode(corrected), result[b*k:(b+1)*k])
	}
	return result, nil
}
