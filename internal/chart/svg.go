package chart

import (
	"bytes"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// Labels are the texts drawn around a chart. Empty fields are skipped.
type Labels struct {
	Title string `json:"title,omitempty"`
	X     string `json:"x,omitempty"`
	Y     string `json:"y,omitempty"`
	XNote string `json:"x_note,omitempty"`
	YNote string `json:"y_note,omitempty"`
}

// pieRadius scales the unit circle so the integer canvas keeps its precision.
const pieRadius = 100

const (
	axisStyle  = "stroke:#64748b;stroke-width:2"
	gridStyle  = "stroke:#e2e8f0;stroke-width:1;stroke-dasharray:5,5"
	titleStyle = "text-anchor:middle;font-size:16px;font-weight:bold;fill:#0f172a"
	axisText   = "text-anchor:middle;font-size:14px;font-weight:600;fill:#0f172a"
	noteText   = "text-anchor:middle;font-size:11px;font-style:italic;fill:#ef4444"
	valueText  = "text-anchor:middle;font-size:12px;font-weight:bold;fill:#0f172a"
	tickText   = "text-anchor:middle;font-size:12px;fill:#64748b"
	lineColor  = "#0ea5e9"
)

// WritePie draws slices on a 280 unit square, rotated so the first slice
// starts at twelve o'clock.
func WritePie(w io.Writer, slices []Slice, labels Labels) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	view := int(pieRadius * 1.2)
	canvas.Startview(280, 280, -view, -view, 2*view, 2*view)
	if labels.Title != "" {
		canvas.Title(labels.Title)
	}
	canvas.Gtransform("rotate(-90)")
	for _, s := range slices {
		canvas.Path(s.Path(pieRadius), "fill:"+s.Color+";stroke:#ffffff;stroke-width:2")
	}
	canvas.Gend()
	canvas.End()
	return flush(w, &buf)
}

// WriteLine draws the grid, the axes, the polyline and a labeled dot per point.
func WriteLine(w io.Writer, c *LineChart, labels Labels) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	l := c.Layout
	start(canvas, l, labels.Title)

	for _, y := range c.GridLines {
		canvas.Line(px(l.Padding), px(y), px(l.Width-l.Padding), px(y), gridStyle)
	}
	axes(canvas, l)
	axisLabels(canvas, l, labels, 10, 15)

	xs := make([]int, len(c.Points))
	ys := make([]int, len(c.Points))
	for i, p := range c.Points {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	canvas.Polyline(xs, ys, "fill:none;stroke:"+lineColor+";stroke-width:4;stroke-linecap:round;stroke-linejoin:round")

	for _, p := range c.Points {
		canvas.Circle(px(p.X), px(p.Y), 6, "fill:#ffffff;stroke:"+lineColor+";stroke-width:3")
		canvas.Text(px(p.X), px(p.Y-15), num(p.Value), valueText)
		canvas.Text(px(p.X), px(l.Baseline()+20), p.Label, tickText)
	}
	canvas.End()
	return flush(w, &buf)
}

// WriteScatter draws the plot background, the axes and one dot per point.
func WriteScatter(w io.Writer, c *ScatterChart, labels Labels) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	l := c.Layout
	start(canvas, l, labels.Title)

	canvas.Rect(px(l.Padding), px(l.Padding), px(l.PlotWidth()), px(l.PlotHeight()), "fill:#f8fafc")
	axes(canvas, l)
	axisLabels(canvas, l, labels, 15, 20)
	if labels.XNote != "" {
		canvas.Text(px(l.Width/2), px(l.Height-2), labels.XNote, noteText)
	}
	if labels.YNote != "" {
		canvas.TranslateRotate(35, px(l.Height/2), -90)
		canvas.Text(0, 0, labels.YNote, noteText)
		canvas.Gend()
	}

	for _, p := range c.Points {
		canvas.Circle(px(p.X), px(p.Y), 6, "fill:#10b981;opacity:0.8;stroke:#065f46;stroke-width:1")
	}
	canvas.End()
	return flush(w, &buf)
}

// WriteBar draws the title, the baseline and each bar with its value above
// and its label lines below.
func WriteBar(w io.Writer, c *BarChart, labels Labels) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	l := c.Layout
	canvas.Startview(px(l.Width), px(l.Height), 0, 0, px(l.Width), px(l.Height))
	if labels.Title != "" {
		canvas.Title(labels.Title)
		canvas.Text(px(l.Width/2), 30, labels.Title, titleStyle)
	}
	canvas.Line(px(l.Padding), px(l.Baseline()), px(l.Width-l.Padding), px(l.Baseline()), "stroke:#e2e8f0;stroke-width:2")

	for _, b := range c.Bars {
		center := px(c.Center(b))
		canvas.Roundrect(px(b.X), px(b.Y), px(c.BarWidth), px(b.Height), 4, 4, "fill:"+b.Color)
		canvas.Text(center, px(b.Y-5), num(b.Value)+"%", valueText)
		for i, line := range b.LabelLines {
			canvas.Text(center, px(l.Baseline()+15)+12*i, line, "text-anchor:middle;font-size:10px;fill:#64748b")
		}
	}
	canvas.End()
	return flush(w, &buf)
}

func start(canvas *svg.SVG, l Layout, title string) {
	canvas.Startview(px(l.Width), px(l.Height), 0, 0, px(l.Width), px(l.Height))
	if title != "" {
		canvas.Title(title)
	}
}

func axes(canvas *svg.SVG, l Layout) {
	canvas.Line(px(l.Padding), px(l.Baseline()), px(l.Width-l.Padding), px(l.Baseline()), axisStyle)
	canvas.Line(px(l.Padding), px(l.Padding), px(l.Padding), px(l.Baseline()), axisStyle)
}

// axisLabels places the x label above the bottom edge and the y label rotated
// along the left edge.
func axisLabels(canvas *svg.SVG, l Layout, labels Labels, bottom, left int) {
	if labels.X != "" {
		canvas.Text(px(l.Width/2), px(l.Height)-bottom, labels.X, axisText)
	}
	if labels.Y != "" {
		canvas.TranslateRotate(left, px(l.Height/2), -90)
		canvas.Text(0, 0, labels.Y, axisText)
		canvas.Gend()
	}
}

func px(v float64) int { return int(math.Round(v)) }

func flush(w io.Writer, buf *bytes.Buffer) error {
	_, err := buf.WriteTo(w)
	return err
}
