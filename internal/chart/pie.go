package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/montanaflynn/stats"
)

// Slice is one wedge of a pie chart. Start and End are fractions of a full
// turn measured from the positive x axis of the unit circle.
type Slice struct {
	Label    string  `json:"label"`
	Color    string  `json:"color"`
	Value    float64 `json:"value"`
	Start    float64 `json:"start_angle" doc:"Start of the wedge as a fraction of a turn"`
	End      float64 `json:"end_angle" doc:"End of the wedge as a fraction of a turn"`
	Percent  int     `json:"percent" doc:"Share of the total, rounded half up"`
	LargeArc bool    `json:"large_arc" doc:"SVG large-arc flag, set when the wedge spans more than half a turn"`
	StartX   float64 `json:"start_x"`
	StartY   float64 `json:"start_y"`
	EndX     float64 `json:"end_x"`
	EndY     float64 `json:"end_y"`
}

// Span is the angular size of the slice as a fraction of a turn.
func (s Slice) Span() float64 { return s.End - s.Start }

// Path returns the SVG path of the wedge on a circle of the given radius
// centred on the origin.
func (s Slice) Path(radius float64) string {
	flag := 0
	if s.LargeArc {
		flag = 1
	}
	r := num(radius)
	return fmt.Sprintf("M 0 0 L %s %s A %s %s 0 %d 1 %s %s L 0 0",
		num(s.StartX*radius), num(s.StartY*radius), r, r, flag,
		num(s.EndX*radius), num(s.EndY*radius))
}

// Pie partitions a full turn among data proportionally to each value, in
// input order.
func Pie(data []CategoricalDatum) ([]Slice, error) {
	values, err := categoricalValues(data)
	if err != nil {
		return nil, err
	}
	total, err := stats.Sum(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateInput, err)
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: values sum to zero", ErrDegenerateInput)
	}

	slices := make([]Slice, 0, len(data))
	cumulative := 0.0
	for _, d := range data {
		span := d.Value / total
		start := cumulative
		cumulative += span

		sx, sy := pointOnCircle(start)
		ex, ey := pointOnCircle(cumulative)
		slices = append(slices, Slice{
			Label:    d.Label,
			Color:    d.Color,
			Value:    d.Value,
			Start:    start,
			End:      cumulative,
			Percent:  int(math.Floor(span*100 + 0.5)),
			LargeArc: span > 0.5,
			StartX:   sx,
			StartY:   sy,
			EndX:     ex,
			EndY:     ey,
		})
	}
	return slices, nil
}

func pointOnCircle(turn float64) (x, y float64) {
	return math.Cos(2 * math.Pi * turn), math.Sin(2 * math.Pi * turn)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
