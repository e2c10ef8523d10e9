package chart

import (
	"fmt"
	"strings"
)

// BarRect is one bar of a bar chart in canvas coordinates.
type BarRect struct {
	Label      string   `json:"label"`
	Color      string   `json:"color"`
	Value      float64  `json:"value"`
	X          float64  `json:"x" doc:"Canvas x of the bar's left edge"`
	Y          float64  `json:"y" doc:"Canvas y of the bar's top edge"`
	Height     float64  `json:"height"`
	Ratio      float64  `json:"ratio" doc:"Height relative to the tallest bar"`
	LabelLines []string `json:"label_lines" doc:"Label split on whitespace, one line each"`
}

// BarChart is the geometry of a bar chart.
type BarChart struct {
	Layout   Layout    `json:"layout"`
	BarWidth float64   `json:"bar_width"`
	Bars     []BarRect `json:"bars"`
}

// Center is the canvas x of the middle of b.
func (c *BarChart) Center(b BarRect) float64 { return b.X + c.BarWidth/2 }

// Bar scales every bar linearly against the largest value. Each bar
// takes half of its slot and is centred in it.
func Bar(data []CategoricalDatum) (*BarChart, error) {
	values, err := categoricalValues(data)
	if err != nil {
		return nil, err
	}
	top, err := maxOf(values)
	if err != nil {
		return nil, err
	}
	if top <= 0 {
		return nil, fmt.Errorf("%w: maximum value must be positive", ErrDegenerateInput)
	}

	l := barLayout
	slot := l.PlotWidth() / float64(len(data))
	barWidth := slot / 2
	area := l.PlotHeight() - barTitleSpace

	chart := &BarChart{
		Layout:   l,
		BarWidth: barWidth,
		Bars:     make([]BarRect, len(data)),
	}
	for i, d := range data {
		ratio := d.Value / top
		height := ratio * area
		chart.Bars[i] = BarRect{
			Label:      d.Label,
			Color:      d.Color,
			Value:      d.Value,
			X:          l.Padding + float64(i)*slot + barWidth/2,
			Y:          l.Baseline() - height,
			Height:     height,
			Ratio:      ratio,
			LabelLines: strings.Fields(d.Label),
		}
	}
	return chart, nil
}
