package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// writeScatterPlot renders one point per run, colors used on the X axis
// and elapsed microseconds on the Y axis, to an SVG file at path.
func writeScatterPlot(path string, runs []run) error {
	p := plot.New()
	p.Title.Text = "vcolorbench: colors used vs. time"
	p.X.Label.Text = "colors"
	p.Y.Label.Text = "microseconds"

	pts := make(plotter.XYs, len(runs))
	for i, r := range runs {
		pts[i].X = float64(r.colors)
		pts[i].Y = float64(r.micros)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(scatter)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
