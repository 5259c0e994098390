package plots

// Fixed plotting scripts for the Moby simulation outputs.
// Each script loads one data file from the work directory, renders one figure
// and writes one PNG next to it. Nothing about a script is configurable.

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"moby-plots/internal/infra/fs"
	logging "moby-plots/internal/infra/log"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

var ErrUnknownScript = errors.New("unknown script")

type Kind int

const (
	KindHistogram Kind = iota
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindHistogram:
		return "histogram"
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Script struct {
	Name   string
	Short  string
	Input  string
	Output string
	Kind   Kind

	// Column feeds a histogram; XColumn and YColumn feed a line plot.
	Column           int
	XColumn, YColumn int

	Spec Spec
}

var catalogue = []Script{
	{
		Name:   "steps",
		Short:  "Histogram of conservative advancement steps for the chain scenario",
		Input:  "distances-l20.dat",
		Output: "hist.png",
		Kind:   KindHistogram,
		Column: 1,
		Spec: Spec{
			Title:  "Histogram of CA steps for the chain scenario",
			XLabel: "Conservative step (maximum 0.01)",
			YLabel: "Count",
		},
	},
	{
		Name:    "tuned",
		Short:   "Kinetic energy of the rotating box under the tuned adaptive scheme",
		Input:   "ke_tuned.dat",
		Output:  "adaptive-tuned.png",
		Kind:    KindLine,
		XColumn: 0,
		YColumn: 1,
		Spec: Spec{
			Title:       "Kinetic energy of the rotating box in tuned adaptive scheme",
			XLabel:      "Time",
			YLabel:      "Kinetic Energy",
			HasXLimits:  true,
			XMin:        -0.001,
			XMax:        0.9,
			LegendLabel: "Kinetic energy",
		},
	},
	{
		Name:    "spin",
		Short:   "Kinetic energy of the spinning box under the adaptive scheme",
		Input:   "ke.dat",
		Output:  "adaptive.png",
		Kind:    KindLine,
		XColumn: 0,
		YColumn: 1,
		Spec: Spec{
			Title:       "Kinetic energy of the spinning box in adaptive scheme",
			XLabel:      "Time",
			YLabel:      "Kinetic Energy",
			HasXLimits:  true,
			XMin:        -0.001,
			XMax:        4,
			LegendLabel: "Kinetic energy",
		},
	},
}

// All returns the scripts in their fixed order.
func All() []Script {
	return append([]Script(nil), catalogue...)
}

func Lookup(name string) (Script, error) {
	for _, s := range catalogue {
		if s.Name == name {
			return s, nil
		}
	}
	return Script{}, fmt.Errorf("%w: %q", ErrUnknownScript, name)
}

// Range is a closed interval of observed values.
type Range struct {
	Min, Max float64
}

// Result is the plot data a script produced, independent of image encoding.
type Result struct {
	Script string
	Output string
	Rows   int

	Bins   []Bin       // histogram scripts
	Points plotter.XYs // line scripts

	X, Y Range
}

// Build loads the script's input from dir and renders its figure without writing it.
func Build(s Script, dir string) (*plot.Plot, *Result, error) {
	input := filepath.Join(dir, s.Input)
	table, err := fs.LoadTable(input)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	logging.LogDebug("Data loaded",
		zap.String("script", s.Name),
		zap.String("input", input),
		zap.Int("rows", table.Rows()),
		zap.Int("cols", table.Cols()))

	res := &Result{
		Script: s.Name,
		Output: filepath.Join(dir, s.Output),
		Rows:   table.Rows(),
	}

	var p *plot.Plot
	switch s.Kind {
	case KindHistogram:
		values, err := table.Column(s.Column)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		p, res.Bins, err = RenderHistogram(s.Spec, values)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: failed to render histogram: %w", s.Name, err)
		}
		res.X = valueRange(values)

	case KindLine:
		x, err := table.Column(s.XColumn)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		y, err := table.Column(s.YColumn)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		res.Points, err = Points(x, y)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		p, err = RenderLine(s.Spec, res.Points)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: failed to render line plot: %w", s.Name, err)
		}
		res.X = valueRange(x)
		res.Y = valueRange(y)

	default:
		return nil, nil, fmt.Errorf("%s: unsupported plot kind %v", s.Name, s.Kind)
	}

	return p, res, nil
}

// Run builds the script's figure from dir and writes it to dir/Output.
// A load or render failure leaves no output file behind.
func Run(s Script, dir string) (*Result, error) {
	start := time.Now()

	p, res, err := Build(s, dir)
	if err != nil {
		return nil, err
	}

	if err := fs.SavePNG(res.Output, p); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}

	logging.LogSuccess("Plot saved",
		zap.String("script", s.Name),
		zap.String("output", res.Output),
		zap.Int("rows", res.Rows),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))

	return res, nil
}

func valueRange(values []float64) Range {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range values {
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	return r
}
