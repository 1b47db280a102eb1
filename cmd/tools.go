package cmd

import (
	"github.com/nathanhack/radioae/cmd/internal/tools/chart"
	"github.com/nathanhack/radioae/cmd/internal/tools/csv"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for simulation results",
	Long:    `Tools for simulation results`,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export the BLER of every scheme in the results to a CSV file, one column per SNR`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:   "chart RESULTS_JSON [RESULTS_JSON] ...",
	Short: "Plot BLER vs SNR",
	Long:  `Plot BLER vs SNR on a logarithmic axis; the output extension (.html or .png) picks the format`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart (.html or .png)")
	toolsChartCmd.Flags().StringVarP(&chart.Title, "title", "t", "", "chart title (defaults to the first results title)")
}
