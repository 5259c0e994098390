package plots

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// Spec is the fixed cosmetic bundle of one figure.
type Spec struct {
	Title  string
	XLabel string
	YLabel string

	// XMin/XMax pin the x axis when HasXLimits is set; otherwise it is autoscaled.
	HasXLimits bool
	XMin, XMax float64

	LegendLabel string
}

const (
	fontSize = 16
	histBins = 50
)

var (
	// matplotlib "green" at alpha 0.75
	histFill  = color.NRGBA{R: 0, G: 128, B: 0, A: 191}
	lineColor = color.Black
)

func labelFont() font.Font {
	return font.Font{Typeface: "Liberation", Variant: "Sans", Size: vg.Points(fontSize)}
}

// newFigure returns a plot with title, axis labels and the sans-serif 16pt font applied.
func newFigure(spec Spec) *plot.Plot {
	p := plot.New()

	p.Title.Text = spec.Title
	p.Title.TextStyle.Font = labelFont()
	p.Title.TextStyle.Color = color.Black

	p.X.Label.Text = spec.XLabel
	p.X.Label.TextStyle.Font = labelFont()
	p.X.Label.TextStyle.Color = color.Black

	p.Y.Label.Text = spec.YLabel
	p.Y.Label.TextStyle.Font = labelFont()
	p.Y.Label.TextStyle.Color = color.Black

	return p
}
