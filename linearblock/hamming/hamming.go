package hamming

import (
	"context"
	"fmt"

	"github.com/nathanhack/radioae/internal/simerr"
	"github.com/nathanhack/radioae/linearblock"
	"github.com/nathanhack/radioae/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

// paritySymbolsByBlockSize maps a message length k to the number of parity
// symbols m of the Hamming code carrying it: 3 gives the (7,4) code.
var paritySymbolsByBlockSize = map[int]int{
	4: 3,
}

// ParitySymbolsFor returns the number of parity symbols of the Hamming code
// used for messages of blockSize bits.
func ParitySymbolsFor(blockSize int) (int, error) {
	m, has := paritySymbolsByBlockSize[blockSize]
	if !has {
		return 0, simerr.InvalidArgument("no Hamming code is mapped for block size %v", blockSize)
	}
	return m, nil
}

// CodewordLength is 2^m-1 for a Hamming code with m parity symbols.
func CodewordLength(paritySymbols int) int {
	return 1<<paritySymbols - 1
}

// New creates the systematic hamming code with paritySymbols number of parity symbols.
// Hamming codes can detect up to two-bit errors or correct one-bit errors without
// detection of uncorrected errors.
func New(ctx context.Context, paritySymbols int, threads int) (*linearblock.LinearBlock, error) {
	if paritySymbols < 3 {
		return nil, simerr.InvalidArgument("hamming codes require >=3 parity symbols but found %v", paritySymbols)
	}
	n := CodewordLength(paritySymbols)
	H := mat.CSRMat(paritySymbols, n)

	//To make Hamming codes we make the columns the bit versions
	// of every number from 1 to and including n -> [1,n] (note they're nonzero)
	for i := 1; i <= n; i++ {
		vec := mat.CSRVec(paritySymbols)
		for j := 0; j < paritySymbols; j++ {
			if i&(1<<j) > 0 {
				vec.Set(j, 1)
			}
		}
		H.SetColumn(i-1, vec)
	}

	order, g := internal.NewFromH(ctx, H, threads)
	if order == nil {
		return nil, fmt.Errorf("unable to create generator for H matrix")
	}

	return &linearblock.LinearBlock{
		H: H,
		Processing: &linearblock.Systematic{
			HColumnOrder: order,
			G:            g,
		},
	}, nil
}

// ForBlockSize creates the Hamming code mapped to messages of blockSize bits.
func ForBlockSize(ctx context.Context, blockSize int, threads int) (*linearblock.LinearBlock, error) {
	m, err := ParitySymbolsFor(blockSize)
	if err != nil {
		return nil, err
	}
	return New(ctx, m, threads)
}
