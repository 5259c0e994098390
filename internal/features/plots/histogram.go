package plots

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Bin is one equal-width histogram interval [Min, Max) with its raw count.
// The last bin of a histogram also includes its Max.
type Bin struct {
	Min, Max float64
	Count    int
}

// BinValues splits [min, max] of values into n equal-width bins and counts
// the values falling in each. Counts are not normalised.
func BinValues(values []float64, n int) ([]Bin, error) {
	if n <= 0 {
		return nil, fmt.Errorf("bin count must be positive, got %d", n)
	}
	if len(values) == 0 {
		return nil, errors.New("no values to bin")
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("cannot bin non-finite value %v", v)
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Min = lo + float64(i)*width
		bins[i].Max = lo + float64(i+1)*width
	}
	bins[n-1].Max = hi

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		// the division can land one bin off a stored edge
		if i > 0 && v < bins[i].Min {
			i--
		} else if i < n-1 && v >= bins[i+1].Min {
			i++
		}
		bins[i].Count++
	}

	return bins, nil
}

// RenderHistogram builds the histogram figure for values.
func RenderHistogram(spec Spec, values []float64) (*plot.Plot, []Bin, error) {
	bins, err := BinValues(values, histBins)
	if err != nil {
		return nil, nil, err
	}

	hbins := make([]plotter.HistogramBin, len(bins))
	for i, b := range bins {
		hbins[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: float64(b.Count)}
	}

	p := newFigure(spec)
	p.Add(plotter.NewGrid())
	p.Add(&plotter.Histogram{
		Bins:      hbins,
		Width:     bins[0].Max - bins[0].Min,
		FillColor: histFill,
		LineStyle: plotter.DefaultLineStyle,
	})

	return p, bins, nil
}
