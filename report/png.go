package report

import (
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// minBLER is the lower end of the BLER axis when nothing smaller was measured.
const minBLER = 1e-5

// RenderPNG draws the semilog BLER vs SNR plot of results as a width x height PNG.
// Zero BLER points are omitted since they have no place on a logarithmic axis.
func RenderPNG(w io.Writer, title string, width, height vg.Length, results ...*Results) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "SNR [dB]"
	p.Y.Label.Text = "Block Error Ratio"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Left = true
	p.Legend.Top = false
	p.Add(plotter.NewGrid())

	lowest := 1.0
	var lines []interface{}
	for _, r := range results {
		for _, s := range r.Series {
			xys := make(plotter.XYs, 0, len(s.Points))
			for _, pt := range s.Points {
				if pt.BLER <= 0 {
					continue
				}
				xys = append(xys, plotter.XY{X: pt.SNR, Y: pt.BLER})
				lowest = math.Min(lowest, pt.BLER)
			}
			if len(xys) == 0 {
				continue
			}
			lines = append(lines, s.Scheme, xys)
		}
	}

	if len(lines) > 0 {
		err := plotutil.AddLinePoints(p, lines...)
		if err != nil {
			return err
		}
	}

	p.Y.Min = math.Min(minBLER, math.Pow(10, math.Floor(math.Log10(lowest))))
	p.Y.Max = 1
	if len(lines) == 0 {
		p.X.Min, p.X.Max = 0, 1
	}

	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}
