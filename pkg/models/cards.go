package models

import "github.com/RMahshie/codesigma/internal/content"

// ListEventCardsResponse lists the event cards
type ListEventCardsResponse struct {
	Body struct {
		Cards []content.EventCard `json:"cards"`
	}
}

// AdvanceEventCardRequest moves a card to its next example
type AdvanceEventCardRequest struct {
	ID   string `path:"id" example:"probable" doc:"Event card ID"`
	Body struct {
		Index int `json:"index" minimum:"0" doc:"Index of the example currently shown"`
	}
}

// EventCardStateResponse is the example a card shows
type EventCardStateResponse struct {
	Body struct {
		ID      string `json:"id" doc:"Event card ID"`
		Index   int    `json:"index" doc:"Index of the example now shown"`
		Example string `json:"example" doc:"Example now shown"`
	}
}
