package site

import (
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/RMahshie/codesigma/internal/sampling"
)

// CalculatorState is the sample size form as submitted by the reader.
type CalculatorState struct {
	Inputs         sampling.Inputs
	PopulationText string
	Submitted      bool
}

// PageState is everything the page varies on. It travels in the query string
// so every render is a pure function of the request.
type PageState struct {
	Calculator CalculatorState
	Cards      map[string]int
	Dark       bool
}

// ParseState reads the page state from q. Unparseable numbers keep their
// defaults so a hand-edited URL still renders.
func ParseState(q url.Values) PageState {
	s := PageState{
		Calculator: CalculatorState{Inputs: sampling.DefaultInputs},
		Cards:      map[string]int{},
		Dark:       q.Get("dark") == "1",
	}

	c := &s.Calculator
	c.Submitted = q.Get("calc") == "1"
	if v, err := strconv.ParseFloat(q.Get("z"), 64); err == nil {
		c.Inputs.Z = v
	}
	if v, err := strconv.ParseFloat(q.Get("p"), 64); err == nil {
		c.Inputs.P = v
	}
	if v, err := strconv.ParseFloat(q.Get("e"), 64); err == nil {
		c.Inputs.E = v
	}
	c.PopulationText = strings.TrimSpace(q.Get("n"))
	if v, ok := parsePopulation(c.PopulationText); ok {
		c.Inputs.Population = v
	}

	for key, values := range q {
		id, ok := strings.CutPrefix(key, "card.")
		if !ok || len(values) == 0 {
			continue
		}
		if v, err := strconv.Atoi(values[0]); err == nil {
			s.Cards[id] = v
		}
	}
	return s
}

// Query encodes s back into a query string.
func (s PageState) Query() url.Values {
	q := url.Values{}
	if s.Dark {
		q.Set("dark", "1")
	}
	if s.Calculator.Submitted {
		in := s.Calculator.Inputs
		q.Set("calc", "1")
		q.Set("z", strconv.FormatFloat(in.Z, 'f', -1, 64))
		q.Set("p", strconv.FormatFloat(in.P, 'f', -1, 64))
		q.Set("e", strconv.FormatFloat(in.E, 'f', -1, 64))
		if s.Calculator.PopulationText != "" {
			q.Set("n", s.Calculator.PopulationText)
		}
	}
	ids := make([]string, 0, len(s.Cards))
	for id := range s.Cards {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		q.Set("card."+id, strconv.Itoa(s.Cards[id]))
	}
	return q
}

// WithCard returns a copy of s with card id at index.
func (s PageState) WithCard(id string, index int) PageState {
	cards := make(map[string]int, len(s.Cards)+1)
	for k, v := range s.Cards {
		cards[k] = v
	}
	cards[id] = index
	s.Cards = cards
	return s
}

// WithDark returns a copy of s with the theme set.
func (s PageState) WithDark(dark bool) PageState {
	s.Dark = dark
	return s
}

// parsePopulation accepts a decimal population and keeps its integer part.
func parsePopulation(text string) (int, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) >= maxPopulation {
		return 0, false
	}
	return int(math.Trunc(v)), true
}

// maxPopulation keeps the truncated value inside int range.
const maxPopulation = 1e15
