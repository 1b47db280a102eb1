// Package experiment reproduces the BLER vs SNR comparisons: the (7,4) Hamming experiment
// and the uncoded experiment, each producing report.Results.
package experiment

import (
	"os"

	"github.com/nathanhack/radioae/internal/simerr"
	"gopkg.in/yaml.v3"
)

type Config struct {
	SNRs    []float64 `yaml:"snrs"`
	Seed    int64     `yaml:"seed"`
	Threads int       `yaml:"threads"`

	// BatchBudget/k copies of the alphabet make up a training batch and
	// StepBudget/k steps are trained, so every block size gets a similar budget.
	BatchBudget  int     `yaml:"batch_budget"`
	StepBudget   int     `yaml:"step_budget"`
	LearningRate float64 `yaml:"learning_rate"`

	// TestRepeatsPerBatch times the batch size is the number of passes over the
	// alphabet when evaluating the autoencoder.
	TestRepeatsPerBatch int `yaml:"test_repeats_per_batch"`

	HammingBitsFactor int `yaml:"hamming_bits_factor"`
	UncodedBitsFactor int `yaml:"uncoded_bits_factor"`

	Hamming struct {
		BlockSize int         `yaml:"block_size"`
		ChannelUse map[int]int `yaml:"channel_use"`
	} `yaml:"hamming"`

	Uncoded struct {
		BlockSizes []int `yaml:"block_sizes"`
	} `yaml:"uncoded"`
}

func DefaultSNRs() []float64 {
	snrs := make([]float64, 0, 13)
	for snr := -4; snr <= 8; snr++ {
		snrs = append(snrs, float64(snr))
	}
	return snrs
}

func DefaultConfig() *Config {
	c := &Config{
		SNRs:                DefaultSNRs(),
		Seed:                1,
		Threads:             1,
		BatchBudget:         20,
		StepBudget:          200000,
		LearningRate:        1e-3,
		TestRepeatsPerBatch: 1000,
		HammingBitsFactor:   10000,
		UncodedBitsFactor:   30000,
	}
	c.Hamming.BlockSize = 4
	c.Hamming.ChannelUse = map[int]int{4: 7}
	c.Uncoded.BlockSizes = []int{2, 8}
	return c
}

// LoadConfig reads a yaml file on top of DefaultConfig, so the file only needs the
// values it changes.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if len(c.SNRs) == 0 {
		return simerr.InvalidArgument("at least one snr is required")
	}
	if c.BatchBudget < 1 || c.StepBudget < 1 {
		return simerr.InvalidArgument("batch budget and step budget must be >=1 but found %v and %v", c.BatchBudget, c.StepBudget)
	}
	if c.TestRepeatsPerBatch < 1 {
		return simerr.InvalidArgument("test repeats per batch must be >=1 but found %v", c.TestRepeatsPerBatch)
	}
	if c.HammingBitsFactor < 1 || c.UncodedBitsFactor < 1 {
		return simerr.InvalidArgument("bits factors must be >=1")
	}
	return nil
}

// BatchSize is BatchBudget/k but at least 1.
func (c *Config) BatchSize(blockSize int) int {
	return atLeastOne(c.BatchBudget / blockSize)
}

// Steps is StepBudget/k but at least 1.
func (c *Config) Steps(blockSize int) int {
	return atLeastOne(c.StepBudget / blockSize)
}

// TestRepeats is the number of alphabet passes per SNR when evaluating the autoencoder.
func (c *Config) TestRepeats(blockSize int) int {
	return c.BatchSize(blockSize) * c.TestRepeatsPerBatch
}

// ChannelUse returns the channel uses paired with blockSize in the Hamming experiment.
func (c *Config) ChannelUse(blockSize int) (int, error) {
	n, has := c.Hamming.ChannelUse[blockSize]
	if !has {
		return 0, simerr.InvalidArgument("no channel use is mapped for block size %v", blockSize)
	}
	return n, nil
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
