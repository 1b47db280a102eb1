package simulate

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nathanhack/radioae/experiment"
	"github.com/nathanhack/radioae/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var (
	ConfigFile  string
	Seed        int64
	Threads     int
	SNRs        []float64
	StepBudget  int
	BatchBudget int
	Output      string
	Chart       bool
)

// Run returns the cobra handler running the named experiment.
func Run(name string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			select {
			case sig := <-sigs:
				fmt.Println()
				fmt.Println(sig)
				cancel()
			case <-ctx.Done():
			}
		}()

		runner := &experiment.Runner{
			Config:       config,
			Progress:     &barProgress{},
			ShowProgress: true,
		}
		results, err := runner.Run(ctx, name)
		if err != nil {
			return err
		}

		output := Output
		if output == "" {
			output = name + ".json"
		}
		err = report.SaveResults(output, results)
		if err != nil {
			return err
		}
		logrus.Infof("Results saved to %v", output)

		if !Chart {
			return nil
		}
		return renderCharts(strings.TrimSuffix(output, filepath.Ext(output)), results)
	}
}

// loadConfig starts from the yaml file (or the defaults) and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*experiment.Config, error) {
	config := experiment.DefaultConfig()
	if ConfigFile != "" {
		var err error
		config, err = experiment.LoadConfig(ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("error while loading config %v: %w", ConfigFile, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") || ConfigFile == "" {
		config.Seed = Seed
	}
	if flags.Changed("threads") || ConfigFile == "" {
		config.Threads = Threads
	}
	if flags.Changed("snr") {
		config.SNRs = SNRs
	}
	if flags.Changed("steps") {
		config.StepBudget = StepBudget
	}
	if flags.Changed("batch") {
		config.BatchBudget = BatchBudget
	}
	return config, config.Validate()
}

func renderCharts(base string, results *report.Results) error {
	png, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	defer png.Close()
	err = report.RenderPNG(png, results.Title, 8*vg.Inch, 6*vg.Inch, results)
	if err != nil {
		return err
	}

	html, err := os.Create(base + ".html")
	if err != nil {
		return err
	}
	defer html.Close()
	err = report.RenderHTML(html, results.Title, results)
	if err != nil {
		return err
	}
	logrus.Infof("Charts saved to %v.png and %v.html", base, base)
	return nil
}
