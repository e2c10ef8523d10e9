package chart

import "fmt"

const (
	scatterMinScale = 0.8
	scatterMaxScale = 1.1
)

// ScatterChart is the geometry of a numeric scatter plot.
type ScatterChart struct {
	Layout Layout      `json:"layout"`
	MinX   float64     `json:"min_x" doc:"Left edge of the horizontal scale"`
	MaxX   float64     `json:"max_x" doc:"Right edge of the horizontal scale"`
	MaxY   float64     `json:"max_y" doc:"Top of the vertical scale"`
	Points []PlotPoint `json:"points"`
}

// Scatter normalizes x into [min(x)*0.8, max(x)*1.1] and y into
// [0, max(y)*1.1]. The scaled minimum, not the raw one, is subtracted before
// dividing by the range; rendered output depends on it.
func Scatter(data []SeriesPoint) (*ScatterChart, error) {
	xs, ys, err := seriesValues(data)
	if err != nil {
		return nil, err
	}
	lowX, err := minOf(xs)
	if err != nil {
		return nil, err
	}
	highX, err := maxOf(xs)
	if err != nil {
		return nil, err
	}
	highY, err := maxOf(ys)
	if err != nil {
		return nil, err
	}

	minX := lowX * scatterMinScale
	maxX := highX * scatterMaxScale
	maxY := highY * scatterMaxScale
	xRange := maxX - minX
	if xRange == 0 {
		return nil, fmt.Errorf("%w: x values have no spread", ErrDegenerateInput)
	}
	if maxY <= 0 {
		return nil, fmt.Errorf("%w: maximum y must be positive", ErrDegenerateInput)
	}

	l := scatterLayout
	chart := &ScatterChart{
		Layout: l,
		MinX:   minX,
		MaxX:   maxX,
		MaxY:   maxY,
		Points: make([]PlotPoint, len(data)),
	}
	for i, d := range data {
		chart.Points[i] = PlotPoint{
			X:     l.Padding + ((d.X-minX)/xRange)*l.PlotWidth(),
			Y:     l.Baseline() - (d.Y/maxY)*l.PlotHeight(),
			Label: d.Label,
			Value: d.Y,
		}
	}
	return chart, nil
}
