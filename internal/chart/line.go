package chart

import (
	"fmt"
	"strings"
)

// lineHeadroom leaves 20% of the plot above the highest point.
const lineHeadroom = 1.2

// gridTicks are the fractions of the plot height that get a grid line.
var gridTicks = []float64{0, 0.25, 0.5, 0.75, 1}

// PlotPoint is a datum mapped onto the canvas.
type PlotPoint struct {
	X     float64 `json:"x" doc:"Canvas x"`
	Y     float64 `json:"y" doc:"Canvas y"`
	Label string  `json:"label,omitempty" doc:"Axis label of the point"`
	Value float64 `json:"value" doc:"Original y value"`
}

// LineChart is the geometry of a categorical line chart.
type LineChart struct {
	Layout    Layout      `json:"layout"`
	MaxY      float64     `json:"max_y" doc:"Top of the vertical scale"`
	Points    []PlotPoint `json:"points"`
	GridLines []float64   `json:"grid_lines" doc:"Canvas y of each horizontal grid line"`
}

// Polyline returns the SVG points attribute joining every vertex.
func (c *LineChart) Polyline() string {
	parts := make([]string, len(c.Points))
	for i, p := range c.Points {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

// Line spaces the points evenly across the canvas and scales y against the
// maximum value plus headroom. The x axis is categorical.
func Line(data []SeriesPoint) (*LineChart, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: line chart needs at least 2 points, got %d", ErrDegenerateInput, len(data))
	}
	_, ys, err := seriesValues(data)
	if err != nil {
		return nil, err
	}
	top, err := maxOf(ys)
	if err != nil {
		return nil, err
	}
	if top <= 0 {
		return nil, fmt.Errorf("%w: maximum y must be positive", ErrDegenerateInput)
	}

	l := lineLayout
	maxY := top * lineHeadroom
	step := l.PlotWidth() / float64(len(data)-1)

	chart := &LineChart{
		Layout: l,
		MaxY:   maxY,
		Points: make([]PlotPoint, len(data)),
	}
	for i, d := range data {
		chart.Points[i] = PlotPoint{
			X:     l.Padding + float64(i)*step,
			Y:     l.Baseline() - (d.Y/maxY)*l.PlotHeight(),
			Label: d.Label,
			Value: d.Y,
		}
	}
	for _, tick := range gridTicks {
		chart.GridLines = append(chart.GridLines, l.Baseline()-tick*l.PlotHeight())
	}
	return chart, nil
}
