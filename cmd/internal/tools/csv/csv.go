package csv

import (
	"fmt"
	"os"

	"github.com/nathanhack/radioae/report"
	"github.com/spf13/cobra"
)

var OutputFile string

var CSVRun = func(cmd *cobra.Command, args []string) error {
	results, err := report.LoadAll(args...)
	if err != nil {
		return err
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	err = report.WriteCSV(f, results...)
	if err != nil {
		return fmt.Errorf("error while writing %v: %v", OutputFile, err)
	}
	return nil
}

