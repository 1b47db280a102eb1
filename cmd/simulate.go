package cmd

import (
	"github.com/nathanhack/radioae/cmd/internal/simulate"
	"github.com/nathanhack/radioae/experiment"
	"github.com/spf13/cobra"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:     "simulate",
	Aliases: []string{"sim", "s"},
	Short:   "Runs a BLER vs SNR experiment",
	Long:    `Trains the autoencoders, evaluates every scheme over the SNR sweep and saves the results.`,
}

// simulateHammingCmd represents the hamming command
var simulateHammingCmd = &cobra.Command{
	Use:     "hamming",
	Aliases: []string{"h", "ham"},
	Short:   "Uncoded BPSK vs Hamming vs autoencoder",
	Long:    `Compares uncoded BPSK (k,k), the Hamming (n,k) code and an (n,k) autoencoder, k=4 and n=7 by default.`,
	Args:    cobra.NoArgs,
	RunE:    simulate.Run(experiment.HammingExperiment),
}

// simulateUncodedCmd represents the uncoded command
var simulateUncodedCmd = &cobra.Command{
	Use:     "uncoded",
	Aliases: []string{"u"},
	Short:   "Uncoded BPSK vs autoencoder",
	Long:    `Compares uncoded BPSK (k,k) with a (k,k) autoencoder for every block size, 2 and 8 by default.`,
	Args:    cobra.NoArgs,
	RunE:    simulate.Run(experiment.UncodedExperiment),
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.AddCommand(simulateHammingCmd)
	simulateCmd.AddCommand(simulateUncodedCmd)

	flags := simulateCmd.PersistentFlags()
	flags.StringVarP(&simulate.ConfigFile, "config", "c", "", "yaml file with the experiment configuration")
	flags.Int64VarP(&simulate.Seed, "seed", "s", 1, "seed of the random source")
	flags.IntVar(&simulate.Threads, "threads", 1, "number of threads for the Monte-Carlo baselines")
	flags.Float64SliceVar(&simulate.SNRs, "snr", experiment.DefaultSNRs(), "the SNRs [dB] to evaluate")
	flags.IntVar(&simulate.StepBudget, "steps", 200000, "training steps times the block size")
	flags.IntVar(&simulate.BatchBudget, "batch", 20, "training batch size times the block size")
	flags.StringVarP(&simulate.Output, "output", "o", "", "results json (defaults to the experiment name)")
	flags.BoolVarP(&simulate.Chart, "chart", "p", true, "also render a png and an html chart next to the results")
}
