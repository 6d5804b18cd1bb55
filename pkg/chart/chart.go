// Package chart draws simulation time series with gonum/plot.
package chart

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/liserjrqlxue/bioforge/pkg/simulate"
)

// image size
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

func xys(time []int, values []float64) plotter.XYs {
	pts := make(plotter.XYs, min(len(time), len(values)))
	for i := range pts {
		pts[i].X = float64(time[i])
		pts[i].Y = values[i]
	}
	return pts
}

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Level"
	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

// Simulation plots growth, protein and metabolite curves
func Simulation(title string, ts *simulate.TimeSeries) (*plot.Plot, error) {
	p := newPlot(title)
	err := plotutil.AddLines(p,
		"growth", xys(ts.Time, ts.Growth),
		"protein", xys(ts.Time, ts.Protein),
		"metabolite", xys(ts.Time, ts.Metabolite),
	)
	if err != nil {
		return nil, fmt.Errorf("simulation lines: %w", err)
	}
	return p, nil
}

// Pathway plots substrate, intermediate and product curves
func Pathway(title string, ts *simulate.PathwaySeries) (*plot.Plot, error) {
	p := newPlot(title)
	err := plotutil.AddLines(p,
		"substrate", xys(ts.Time, ts.Substrate),
		"intermediate", xys(ts.Time, ts.Intermediate),
		"product", xys(ts.Time, ts.Product),
	)
	if err != nil {
		return nil, fmt.Errorf("pathway lines: %w", err)
	}
	return p, nil
}

// Write renders p as format (png, svg, pdf, ...) to w
func Write(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// Save renders p to path, the format following its extension
func Save(path string, p *plot.Plot) error {
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
