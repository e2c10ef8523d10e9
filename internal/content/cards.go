package content

import (
	"errors"
	"fmt"
)

// ErrUnknownCard is returned when no event card has the requested ID.
var ErrUnknownCard = errors.New("unknown event card")

// EventCard is a clickable card that cycles through examples of one kind of
// probabilistic event.
type EventCard struct {
	ID       string   `json:"id" doc:"Card identifier"`
	Title    string   `json:"title" doc:"Kind of event"`
	Emoji    string   `json:"emoji"`
	Color    string   `json:"color"`
	Examples []string `json:"examples"`
}

// ExampleCycle is the state of an event card: the index of the example on
// display, always in [0, size).
type ExampleCycle struct {
	index int
	size  int
}

// NewExampleCycle starts a cycle over size examples at start. Out of range
// starts wrap around, negative ones included.
func NewExampleCycle(size, start int) (ExampleCycle, error) {
	if size <= 0 {
		return ExampleCycle{}, fmt.Errorf("example cycle needs at least one example, got %d", size)
	}
	start %= size
	if start < 0 {
		start += size
	}
	return ExampleCycle{index: start, size: size}, nil
}

// Index is the example on display.
func (c ExampleCycle) Index() int { return c.index }

// Advance moves to the next example, wrapping after the last one.
func (c ExampleCycle) Advance() ExampleCycle {
	c.index = (c.index + 1) % c.size
	return c
}

// Cycle returns the card's state at index.
func (c EventCard) Cycle(index int) (ExampleCycle, error) {
	return NewExampleCycle(len(c.Examples), index)
}

// Example returns the text shown in state s.
func (c EventCard) Example(s ExampleCycle) string {
	return c.Examples[s.index]
}

var eventCards = []EventCard{
	{
		ID:    "imposible",
		Title: "Imposible",
		Emoji: "🚫",
		Color: "#ef4444",
		Examples: []string{
			"Lanzar un dado de 6 caras y obtener un 8.",
			"Sacar una bola verde de una urna con solo bolas rojas.",
			"Dibujar un triángulo plano con 4 lados.",
		},
	},
	{
		ID:    "probable",
		Title: "Probable",
		Emoji: "🎲",
		Color: "#f59e0b",
		Examples: []string{
			"Lanzar una moneda y que salga cara.",
			"Que llueva mañana en una ciudad tropical.",
			"Sacar una carta de corazones de una baraja.",
		},
	},
	{
		ID:    "seguro",
		Title: "Seguro",
		Emoji: "✅",
		Color: "#10b981",
		Examples: []string{
			"Lanzar un dado y obtener un número menor a 7.",
			"Extraer una bola roja de una urna con solo bolas rojas.",
			"Que el día de mañana tenga 24 horas.",
		},
	},
}

// EventCards returns the cards of the "Tipos de Eventos" block.
func EventCards() []EventCard {
	return append([]EventCard(nil), eventCards...)
}

// EventCardByID looks a card up by its ID.
func EventCardByID(id string) (EventCard, error) {
	for _, c := range eventCards {
		if c.ID == id {
			return c, nil
		}
	}
	return EventCard{}, fmt.Errorf("%w: %s", ErrUnknownCard, id)
}
