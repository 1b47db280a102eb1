package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML writes an interactive BLER vs SNR line chart with a logarithmic BLER axis.
// Zero BLER can not be shown on that axis so those points are left out of their line.
func RenderHTML(w io.Writer, title string, results ...*Results) error {
	snrs := SNRs(results...)
	names := make([]string, len(snrs))
	for i, snr := range snrs {
		names[i] = fmt.Sprint(snr)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Block Error Ratio",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "SNR [dB]",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Block Error Ratio",
			Type:      "log",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	line.SetXAxis(names)
	for _, r := range results {
		for _, s := range r.Series {
			line.AddSeries(s.Scheme, lineData(s, snrs))
		}
	}

	return line.Render(w)
}

func lineData(s Series, snrs []float64) []opts.LineData {
	results := make([]opts.LineData, len(snrs))
	null := opts.LineData{Value: nil}
	for i, snr := range snrs {
		v, has := s.BLER(snr)
		if !has || v <= 0 {
			results[i] = null
			continue
		}
		results[i] = opts.LineData{Value: v}
	}
	return results
}
