// Package chart computes the geometry of the site's fixed-size SVG charts
// (pie, line, scatter and bar) and draws them.
package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

var (
	// ErrDegenerateInput is returned when a dataset cannot be scaled, e.g. a
	// pie whose values sum to zero or a line with fewer than two points.
	ErrDegenerateInput = errors.New("degenerate chart input")

	// ErrInvalidValue is returned for negative or non-finite datum values.
	ErrInvalidValue = errors.New("invalid chart value")
)

// CategoricalDatum is one labeled value of a pie or bar chart.
type CategoricalDatum struct {
	Label string  `json:"label" doc:"Category label"`
	Value float64 `json:"value" minimum:"0" doc:"Non-negative value"`
	Color string  `json:"color" doc:"Fill color, e.g. #0ea5e9"`
}

// SeriesPoint is one point of a line or scatter chart. Line charts use Label
// as a categorical x value; scatter charts use the numeric X.
type SeriesPoint struct {
	Label string  `json:"label,omitempty" doc:"Categorical x value (line charts)"`
	X     float64 `json:"x,omitempty" doc:"Numeric x value (scatter charts)"`
	Y     float64 `json:"y" doc:"Y value"`
}

// Layout is the fixed logical canvas of a chart kind.
type Layout struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
}

// PlotWidth is the horizontal extent between the paddings.
func (l Layout) PlotWidth() float64 { return l.Width - l.Padding*2 }

// PlotHeight is the vertical extent between the paddings.
func (l Layout) PlotHeight() float64 { return l.Height - l.Padding*2 }

// Baseline is the canvas y of the horizontal axis.
func (l Layout) Baseline() float64 { return l.Height - l.Padding }

var (
	lineLayout    = Layout{Width: 600, Height: 350, Padding: 50}
	scatterLayout = Layout{Width: 600, Height: 350, Padding: 60}
	barLayout     = Layout{Width: 600, Height: 300, Padding: 50}
)

// barTitleSpace is reserved above the tallest bar for the chart title.
const barTitleSpace = 40

func categoricalValues(data []CategoricalDatum) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no data", ErrDegenerateInput)
	}
	values := make([]float64, len(data))
	for i, d := range data {
		if d.Value < 0 || math.IsNaN(d.Value) || math.IsInf(d.Value, 0) {
			return nil, fmt.Errorf("%w: %q has value %v", ErrInvalidValue, d.Label, d.Value)
		}
		values[i] = d.Value
	}
	return values, nil
}

func seriesValues(data []SeriesPoint) (xs, ys []float64, err error) {
	xs = make([]float64, len(data))
	ys = make([]float64, len(data))
	for i, p := range data {
		if !finite(p.X) || !finite(p.Y) {
			return nil, nil, fmt.Errorf("%w: point %d is not finite", ErrInvalidValue, i)
		}
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys, nil
}

// maxOf wraps stats.Max so an empty slice surfaces as ErrDegenerateInput.
func maxOf(values []float64) (float64, error) {
	m, err := stats.Max(values)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDegenerateInput, err)
	}
	return m, nil
}

func minOf(values []float64) (float64, error) {
	m, err := stats.Min(values)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDegenerateInput, err)
	}
	return m, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
