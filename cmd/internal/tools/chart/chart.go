package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanhack/radioae/report"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var (
	OutputFile string
	Title      string
)

var ChartRun = func(cmd *cobra.Command, args []string) error {
	ext := strings.ToLower(filepath.Ext(OutputFile))
	if ext != ".png" && ext != ".html" {
		return fmt.Errorf("unsupported chart format %v, use .html or .png", ext)
	}

	results, err := report.LoadAll(args...)
	if err != nil {
		return err
	}

	title := Title
	if title == "" {
		title = results[0].Title
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if ext == ".png" {
		return report.RenderPNG(f, title, 8*vg.Inch, 6*vg.Inch, results...)
	}
	return report.RenderHTML(f, title, results...)
}
