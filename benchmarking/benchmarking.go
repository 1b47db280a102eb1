// Package benchmarking measures the block error ratio (BLER) of every scheme over a sweep
// of SNR values. The autoencoder is measured exactly by enumerating its whole message
// alphabet, the classical schemes by a Monte-Carlo estimate over a random bitstream.
package benchmarking

import (
	"context"
	"math/rand"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/nathanhack/radioae/channel"
	"github.com/nathanhack/radioae/internal/simerr"
	"github.com/nathanhack/radioae/modulation"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// Point is the BLER measured at one SNR.
type Point struct {
	SNR    float64 `json:"snr"`
	BLER   float64 `json:"bler"`
	Blocks int     `json:"blocks"`
	Errors int     `json:"errors"`
}

// Scheme is a classical codec working on hard decided bitstreams.
type Scheme interface {
	Name() string
	BlockSize() int  // k
	ChannelUse() int // n
	Encode(bits []uint8) ([]uint8, error)
	Decode(bits []uint8) ([]uint8, error)
}

const (
	// HammingBitsFactor and UncodedBitsFactor size the Monte-Carlo bitstreams per information bit.
	HammingBitsFactor = 10000
	UncodedBitsFactor = 30000

	// DefaultChunkBlocks is the number of blocks simulated by one work item.
	DefaultChunkBlocks = 1000
)

// RequiredBits returns the Monte-Carlo stream length for a scheme carrying blockSize bits per block.
func RequiredBits(blockSize, factor int) int {
	return factor * blockSize
}

// MonteCarlo configures EvaluateScheme.
type MonteCarlo struct {
	Bits         int        // message bits per SNR, rounded up to whole blocks
	Threads      int        // workers, 1 when <1
	ChunkBlocks  int        // blocks per work item, DefaultChunkBlocks when <1
	Rng          *rand.Rand // the source of every chunk's seed
	ShowProgress bool
}

// EvaluateScheme estimates the BLER of scheme at every SNR in snrsDb: a random bitstream is
// encoded, BPSK modulated, sent through the complex AWGN channel, hard demodulated and decoded.
//
// The stream is split into chunks of mc.ChunkBlocks blocks and every chunk draws from its own
// source seeded sequentially from mc.Rng, so the result does not depend on mc.Threads.
func EvaluateScheme(ctx context.Context, scheme Scheme, snrsDb []float64, mc MonteCarlo) ([]Point, error) {
	k, n := scheme.BlockSize(), scheme.ChannelUse()
	rate, err := channel.Rate(k, n)
	if err != nil {
		return nil, err
	}
	if mc.Bits < 1 {
		return nil, simerr.InvalidArgument("monte-carlo bits must be >=1 but found %v", mc.Bits)
	}
	if mc.Threads < 1 {
		mc.Threads = 1
	}
	if mc.ChunkBlocks < 1 {
		mc.ChunkBlocks = DefaultChunkBlocks
	}
	if mc.Rng == nil {
		mc.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	blocks := (mc.Bits + k - 1) / k
	chunks := (blocks + mc.ChunkBlocks - 1) / mc.ChunkBlocks
	logrus.Debugf("Evaluating %v with %v blocks per snr", scheme.Name(), humanize.Comma(int64(blocks)))

	results := make([]Point, 0, len(snrsDb))
	for _, snr := range snrsDb {
		if _, err := channel.NoiseStd(snr, rate); err != nil {
			return nil, err
		}

		seeds := make([]int64, chunks)
		for i := range seeds {
			seeds[i] = mc.Rng.Int63()
		}

		var bar *pb.ProgressBar
		if mc.ShowProgress {
			bar = pb.StartNew(chunks)
		}

		outcomes := make([][]bool, chunks)
		errs := make([]error, chunks)
		pool := threadpool.NewFixedSize(ctx, mc.Threads, chunks)
		for c := 0; c < chunks; c++ {
			chunk := c
			size := mc.ChunkBlocks
			if chunk == chunks-1 {
				size = blocks - chunk*mc.ChunkBlocks
			}
			pool.Add(func() {
				outcomes[chunk], errs[chunk] = simulateChunk(scheme, snr, rate, size, seeds[chunk])
				if bar != nil {
					bar.Increment()
				}
			})
		}
		pool.Wait()
		if bar != nil {
			bar.Finish()
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		counter := &BlockErrorCounter{BlockSize: k}
		for c := range outcomes {
			if errs[c] != nil {
				return nil, errs[c]
			}
			for _, wrong := range outcomes[c] {
				counter.Add(wrong)
			}
		}
		logrus.Debugf("%v at %v dB: %v", scheme.Name(), snr, counter)
		results = append(results, Point{SNR: snr, BLER: counter.ErrorRate(), Blocks: counter.Blocks(), Errors: counter.Errors()})
	}
	return results, nil
}

// simulateChunk sends blocks random messages through the scheme and reports which came back wrong.
func simulateChunk(scheme Scheme, snr, rate float64, blocks int, seed int64) ([]bool, error) {
	rng := rand.New(rand.NewSource(seed))
	k := scheme.BlockSize()

	source := RandomBits(rng, blocks*k)
	encoded, err := scheme.Encode(source)
	if err != nil {
		return nil, err
	}

	bpsk := modulation.BPSK{}
	received, err := channel.New(rng).ApplyComplex(bpsk.Modulate(encoded), snr, rate)
	if err != nil {
		return nil, err
	}
	decoded, err := scheme.Decode(bpsk.Demodulate(received))
	if err != nil {
		return nil, err
	}
	if len(decoded) != len(source) {
		return nil, simerr.InvalidArgument("%v decoded %v bits from %v", scheme.Name(), len(decoded), len(source))
	}

	return blockErrors(source, decoded, k), nil
}
