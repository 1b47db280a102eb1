package benchmarking

import (
	"fmt"
	"math"

	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/radioae/internal/simerr"
)

// BlockErrorCounter accumulates block errors between source and decoded bitstreams.
// Every block contributes a 0 (correct) or 1 (any bit wrong) sample, so the mean of
// the samples is the block error ratio.
type BlockErrorCounter struct {
	BlockSize int
	stats     avgstd.AvgStd
	errors    int
}

func NewBlockErrorCounter(blockSize int) (*BlockErrorCounter, error) {
	if blockSize < 1 {
		return nil, simerr.InvalidArgument("block size must be >=1 but found %v", blockSize)
	}
	return &BlockErrorCounter{BlockSize: blockSize}, nil
}

// Count compares source and decoded block by block.
func (c *BlockErrorCounter) Count(source, decoded []uint8) error {
	if len(source) != len(decoded) {
		return simerr.InvalidArgument("source has %v bits but decoded has %v", len(source), len(decoded))
	}
	if len(source)%c.BlockSize != 0 {
		return simerr.InvalidArgument("bitstream length %v is not a multiple of %v", len(source), c.BlockSize)
	}

	for _, wrong := range blockErrors(source, decoded, c.BlockSize) {
		c.Add(wrong)
	}
	return nil
}

// blockErrors reports per block whether any bit differs. Both slices hold whole blocks.
func blockErrors(source, decoded []uint8, blockSize int) []bool {
	wrong := make([]bool, len(source)/blockSize)
	for b := range wrong {
		for i := b * blockSize; i < (b+1)*blockSize; i++ {
			if source[i] != decoded[i] {
				wrong[b] = true
				break
			}
		}
	}
	return wrong
}

// Add records a single block outcome.
func (c *BlockErrorCounter) Add(wrong bool) {
	if wrong {
		c.errors++
		c.stats.Update(1)
	} else {
		c.stats.Update(0)
	}
}

// ErrorRate is the fraction of counted blocks in error, 0 before any block is counted.
func (c *BlockErrorCounter) ErrorRate() float64 {
	if c.stats.Count == 0 {
		return 0
	}
	return float64(c.errors) / float64(c.stats.Count)
}

func (c *BlockErrorCounter) Blocks() int {
	return c.stats.Count
}

func (c *BlockErrorCounter) Errors() int {
	return c.errors
}

// StdErr is the standard error of ErrorRate as an estimate of the true block error probability.
func (c *BlockErrorCounter) StdErr() float64 {
	if c.stats.Count < 2 {
		return 0
	}
	return math.Sqrt(c.stats.SampledVariance() / float64(c.stats.Count))
}

func (c *BlockErrorCounter) String() string {
	return fmt.Sprintf("{BLER:%0.06f(+/-%0.06f), Blocks:%v}", c.ErrorRate(), c.StdErr(), c.Blocks())
}
