package content

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleCycleWrapsAround(t *testing.T) {
	card, err := EventCardByID("probable")
	require.NoError(t, err)

	cycle, err := card.Cycle(0)
	require.NoError(t, err)
	seen := []string{card.Example(cycle)}
	for i := 0; i < len(card.Examples); i++ {
		cycle = cycle.Advance()
		seen = append(seen, card.Example(cycle))
	}

	assert.Equal(t, card.Examples, seen[:len(card.Examples)])
	assert.Equal(t, seen[0], seen[len(card.Examples)], "advancing past the last example returns to the first")
}

func TestNewExampleCycle(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		start int
		want  int
	}{
		{name: "in range", size: 3, start: 1, want: 1},
		{name: "past the end", size: 3, start: 4, want: 1},
		{name: "negative", size: 3, start: -1, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewExampleCycle(tt.size, tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Index())
		})
	}

	_, err := NewExampleCycle(0, 0)
	assert.Error(t, err)
}

func TestEventCardByID(t *testing.T) {
	for _, c := range EventCards() {
		got, err := EventCardByID(c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.Title, got.Title)
		assert.NotEmpty(t, got.Examples)
	}

	_, err := EventCardByID("posible")
	assert.ErrorIs(t, err, ErrUnknownCard)
}

func TestDatasetsDraw(t *testing.T) {
	for _, d := range Datasets() {
		t.Run(d.Name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, d.WriteSVG(&buf))
			assert.Contains(t, buf.String(), "<svg")
			assert.Contains(t, buf.String(), "</svg>")
		})
	}

	_, err := DatasetByName("missing")
	assert.ErrorIs(t, err, ErrUnknownDataset)
}

func TestSectionsReferenceKnownWidgets(t *testing.T) {
	var calculators, cardBlocks int
	for _, s := range Sections() {
		for _, b := range s.Blocks {
			switch b.Widget {
			case WidgetChart:
				_, err := DatasetByName(b.Dataset)
				assert.NoError(t, err, "section %s block %s", s.ID, b.Anchor)
			case WidgetCalculator:
				calculators++
			case WidgetEventCards:
				cardBlocks++
			}
		}
	}
	assert.Equal(t, 1, calculators)
	assert.Equal(t, 1, cardBlocks)
}

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("**Total:** 68 estudiantes.\n\n- uno\n- dos\n"))
	assert.Contains(t, out, "<strong>Total:</strong>")
	assert.Equal(t, 2, strings.Count(out, "<li>"))
}
