package site

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/codesigma/internal/content"
	"github.com/RMahshie/codesigma/internal/sampling"
)

func TestParseStateDefaults(t *testing.T) {
	s := ParseState(url.Values{})
	assert.Equal(t, sampling.DefaultInputs, s.Calculator.Inputs)
	assert.False(t, s.Calculator.Submitted)
	assert.False(t, s.Dark)
	assert.Empty(t, s.Cards)
}

func TestParseStateRoundTrip(t *testing.T) {
	q, err := url.ParseQuery("calc=1&z=2.576&p=0.3&e=0.04&n=5000&dark=1&card.seguro=2")
	require.NoError(t, err)

	s := ParseState(q)
	assert.True(t, s.Calculator.Submitted)
	assert.Equal(t, sampling.Inputs{Z: 2.576, P: 0.3, E: 0.04, Population: 5000}, s.Calculator.Inputs)
	assert.True(t, s.Dark)
	assert.Equal(t, map[string]int{"seguro": 2}, s.Cards)

	assert.Equal(t, s, ParseState(s.Query()))
}

func TestWithCardDoesNotMutate(t *testing.T) {
	s := ParseState(url.Values{"card.probable": {"1"}})
	next := s.WithCard("probable", 2)
	assert.Equal(t, 1, s.Cards["probable"])
	assert.Equal(t, 2, next.Cards["probable"])
}

func TestRenderInitialPage(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, ParseState(nil)))
	page := buf.String()

	for _, s := range content.Sections() {
		assert.Contains(t, page, `id="`+s.ID+`"`)
	}
	assert.Equal(t, len(content.Datasets()), strings.Count(page, "<svg"))
	assert.NotContains(t, page, "<?xml")
	assert.Contains(t, page, "Lic. en Arquitectura</strong> (45%)")
	assert.Contains(t, page, "Lanzar un dado de 6 caras y obtener un 8.")
	assert.Contains(t, page, "card.imposible=1")
	assert.NotContains(t, page, "Tamaño de muestra recomendado")
}

func TestRenderCalculatorResult(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "infinite population",
			query: "calc=1&z=1.96&p=0.5&e=0.05",
			want:  []string{"<strong>385</strong>", "Población Infinita"},
		},
		{
			name:  "finite population",
			query: "calc=1&z=1.96&p=0.5&e=0.05&n=5000",
			want:  []string{"<strong>357</strong>", "Población Finita"},
		},
		{
			name:  "invalid margin",
			query: "calc=1&z=1.96&p=0.5&e=0",
			want:  []string{"error-box", "margin of error"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, ParseState(q)))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestRenderAdvancesCards(t *testing.T) {
	r, err := NewRenderer("https://codesigma.example/")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, ParseState(url.Values{"card.seguro": {"2"}})))
	page := buf.String()

	assert.Contains(t, page, "Que el día de mañana tenga 24 horas.")
	// The last example links back to the first one.
	assert.Contains(t, page, "https://codesigma.example/?card.seguro=0#mod2-experiencias")
}

func TestArtifacts(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	artifacts, err := r.Artifacts()
	require.NoError(t, err)
	require.Len(t, artifacts, 1+len(content.Datasets()))

	assert.Equal(t, "index.html", artifacts[0].Key)
	for _, a := range artifacts[1:] {
		assert.True(t, strings.HasPrefix(a.Key, "charts/"))
		assert.Equal(t, "image/svg+xml", a.ContentType)
		assert.Contains(t, string(a.Body), "<svg")
	}

	_, err = r.ChartSVG("missing")
	assert.ErrorIs(t, err, content.ErrUnknownDataset)
}

func TestParseStatePopulation(t *testing.T) {
	tests := []struct {
		name string
		n    string
		want int
	}{
		{name: "integer", n: "5000", want: 5000},
		{name: "decimal keeps the integer part", n: "5000.5", want: 5000},
		{name: "surrounding spaces", n: " 68 ", want: 68},
		{name: "empty", n: "", want: 0},
		{name: "not a number", n: "muchos", want: 0},
		{name: "out of range", n: "1e300", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ParseState(url.Values{"n": {tt.n}})
			assert.Equal(t, tt.want, s.Calculator.Inputs.Population)
		})
	}
}

func TestRenderDecimalPopulationUsesFiniteFormula(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	q, err := url.ParseQuery("calc=1&z=1.96&p=0.5&e=0.05&n=5000.5")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, ParseState(q)))

	assert.Contains(t, buf.String(), "<strong>357</strong>")
	assert.Contains(t, buf.String(), "Población Finita")
}

func TestCalculatorFormKeepsCardState(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	q, err := url.ParseQuery("card.probable=2&card.seguro=1&dark=1")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, ParseState(q)))
	page := buf.String()

	assert.Contains(t, page, `<input type="hidden" name="card.probable" value="2">`)
	assert.Contains(t, page, `<input type="hidden" name="card.seguro" value="1">`)
	assert.Contains(t, page, `<input type="hidden" name="dark" value="1">`)

	// Submitting the form sends the card indexes back unchanged.
	submitted := ParseState(url.Values{
		"calc":          {"1"},
		"card.probable": {"2"},
		"card.seguro":   {"1"},
	})
	assert.Equal(t, map[string]int{"probable": 2, "seguro": 1}, submitted.Cards)
}
