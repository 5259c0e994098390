package plots

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Points pairs x and y in file order.
func Points(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must be the same length: %d != %d", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts, nil
}

// RenderLine builds a connected line figure through pts.
func RenderLine(spec Spec, pts plotter.XYs) (*plot.Plot, error) {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Width = vg.Points(1)

	p := newFigure(spec)
	p.Add(line)

	if spec.HasXLimits {
		p.X.Min = spec.XMin
		p.X.Max = spec.XMax
	}

	if spec.LegendLabel != "" {
		p.Legend.Add(spec.LegendLabel, line)
		p.Legend.TextStyle.Font = labelFont()
		// lower right
		p.Legend.Top = false
		p.Legend.Left = false
	}

	return p, nil
}
