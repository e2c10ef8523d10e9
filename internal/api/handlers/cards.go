package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RMahshie/codesigma/internal/content"
	"github.com/RMahshie/codesigma/pkg/models"
)

// EventCardHandler handles the probabilistic event cards
type EventCardHandler struct{}

// NewEventCardHandler creates a new event card handler
func NewEventCardHandler() *EventCardHandler {
	return &EventCardHandler{}
}

// List returns every event card with its examples
func (h *EventCardHandler) List(ctx context.Context, _ *struct{}) (*models.ListEventCardsResponse, error) {
	resp := &models.ListEventCardsResponse{}
	resp.Body.Cards = content.EventCards()
	return resp, nil
}

// Advance moves a card from the example at the request index to the next one
func (h *EventCardHandler) Advance(ctx context.Context, req *models.AdvanceEventCardRequest) (*models.EventCardStateResponse, error) {
	card, err := content.EventCardByID(req.ID)
	if err != nil {
		if errors.Is(err, content.ErrUnknownCard) {
			return nil, huma.Error404NotFound("Event card not found", err)
		}
		return nil, huma.Error500InternalServerError("Failed to load event card", err)
	}

	cycle, err := card.Cycle(req.Body.Index)
	if err != nil {
		return nil, huma.Error500InternalServerError("Event card has no examples", err)
	}
	cycle = cycle.Advance()

	resp := &models.EventCardStateResponse{}
	resp.Body.ID = card.ID
	resp.Body.Index = cycle.Index()
	resp.Body.Example = card.Example(cycle)
	return resp, nil
}
