package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/nathanhack/radioae/autoencoder"
	"github.com/nathanhack/radioae/baseline"
	"github.com/nathanhack/radioae/benchmarking"
	"github.com/nathanhack/radioae/channel"
	"github.com/nathanhack/radioae/internal/simerr"
	"github.com/nathanhack/radioae/report"
	"github.com/nathanhack/radioae/train"
	"github.com/sirupsen/logrus"
)

const (
	HammingExperiment = "hamming"
	UncodedExperiment = "uncoded"
)

// Names lists the experiments Run knows.
var Names = []string{HammingExperiment, UncodedExperiment}

// Runner runs experiments. Everything random in one run is drawn from a single
// source seeded with Config.Seed, one step after the other, so a run is reproducible.
type Runner struct {
	Config       *Config
	Progress     train.Progress // training progress, logged when nil
	ShowProgress bool           // progress bars for the Monte-Carlo sweeps
}

// Run runs the experiment called name.
func (r *Runner) Run(ctx context.Context, name string) (*report.Results, error) {
	switch name {
	case HammingExperiment:
		return r.Hamming(ctx)
	case UncodedExperiment:
		return r.Uncoded(ctx)
	}
	return nil, simerr.InvalidArgument("unknown experiment %q, expected one of %v", name, Names)
}

// Hamming compares uncoded BPSK, the Hamming code and an autoencoder, all carrying
// the same block size, the coded ones over the same number of channel uses.
func (r *Runner) Hamming(ctx context.Context) (*report.Results, error) {
	c := r.Config
	if err := c.Validate(); err != nil {
		return nil, err
	}
	k := c.Hamming.BlockSize
	n, err := c.ChannelUse(k)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(c.Seed))

	uncoded, err := baseline.NewUncoded(k)
	if err != nil {
		return nil, err
	}
	hamming, err := baseline.NewHamming(ctx, k)
	if err != nil {
		return nil, err
	}
	if hamming.ChannelUse() != n {
		return nil, simerr.InvalidArgument("the Hamming code for block size %v uses %v channel symbols, not %v", k, hamming.ChannelUse(), n)
	}

	results := &report.Results{
		Title: "BLER vs SNR for Autoencoder and several baseline communication schemes",
		Seed:  c.Seed,
	}
	for _, s := range []struct {
		scheme benchmarking.Scheme
		factor int
	}{
		{uncoded, c.UncodedBitsFactor},
		{hamming, c.HammingBitsFactor},
	} {
		series, err := r.scheme(ctx, s.scheme, s.factor, rng)
		if err != nil {
			return nil, err
		}
		results.Series = append(results.Series, series)
	}

	series, err := r.autoencoder(ctx, k, n, rng)
	if err != nil {
		return nil, err
	}
	results.Series = append(results.Series, series)
	return results, nil
}

// Uncoded compares uncoded BPSK with an autoencoder using one channel symbol per bit,
// for every configured block size.
func (r *Runner) Uncoded(ctx context.Context) (*report.Results, error) {
	c := r.Config
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(c.Seed))

	results := &report.Results{
		Title: "BLER vs SNR for Autoencoder and BPSK",
		Seed:  c.Seed,
	}
	for _, k := range c.Uncoded.BlockSizes {
		uncoded, err := baseline.NewUncoded(k)
		if err != nil {
			return nil, err
		}
		series, err := r.scheme(ctx, uncoded, c.UncodedBitsFactor, rng)
		if err != nil {
			return nil, err
		}
		results.Series = append(results.Series, series)

		series, err = r.autoencoder(ctx, k, k, rng)
		if err != nil {
			return nil, err
		}
		results.Series = append(results.Series, series)
	}
	return results, nil
}

func (r *Runner) scheme(ctx context.Context, scheme benchmarking.Scheme, factor int, rng *rand.Rand) (report.Series, error) {
	logrus.Infof("Evaluating BLER for %v over AWGN", scheme.Name())
	points, err := benchmarking.EvaluateScheme(ctx, scheme, r.Config.SNRs, benchmarking.MonteCarlo{
		Bits:         benchmarking.RequiredBits(scheme.BlockSize(), factor),
		Threads:      r.Config.Threads,
		Rng:          rng,
		ShowProgress: r.ShowProgress,
	})
	if err != nil {
		return report.Series{}, err
	}
	return report.Series{
		Scheme:     scheme.Name(),
		BlockSize:  scheme.BlockSize(),
		ChannelUse: scheme.ChannelUse(),
		Points:     points,
	}, nil
}

func (r *Runner) autoencoder(ctx context.Context, k, n int, rng *rand.Rand) (report.Series, error) {
	c := r.Config
	name := fmt.Sprintf("Autoencoder (%v,%v)", n, k)
	logrus.Infof("Evaluating BLER for %v over AWGN", name)

	model, err := autoencoder.New(k, n, rng)
	if err != nil {
		return report.Series{}, err
	}
	alphabet, err := autoencoder.Alphabet(k)
	if err != nil {
		return report.Series{}, err
	}

	trainer := train.New(train.Config{
		BatchSize:    c.BatchSize(k),
		Steps:        c.Steps(k),
		LearningRate: c.LearningRate,
		Progress:     r.Progress,
	}, rng)
	summary, err := trainer.Train(ctx, model, alphabet, c.SNRs)
	if err != nil {
		return report.Series{}, err
	}
	logrus.Debugf("%v trained at %v dB, accuracy %v", name, summary.SNR, summary.Accuracy)

	points, err := benchmarking.EvaluateAutoencoder(model, c.SNRs, alphabet, channel.New(rng), c.TestRepeats(k))
	if err != nil {
		return report.Series{}, err
	}
	return report.Series{
		Scheme:     name,
		BlockSize:  k,
		ChannelUse: n,
		Points:     points,
	}, nil
}
