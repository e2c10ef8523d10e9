package handlers

import (
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/codesigma/internal/site"
)

// PageRenderer renders the course page
type PageRenderer interface {
	Render(w io.Writer, state site.PageState) error
}

// PageHandler serves the course page. Its interactive state travels in the
// query string, so every link and form submit is a plain GET.
type PageHandler struct {
	renderer PageRenderer
}

// NewPageHandler creates a new page handler
func NewPageHandler(renderer PageRenderer) *PageHandler {
	return &PageHandler{renderer: renderer}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	state := site.ParseState(r.URL.Query())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if err := h.renderer.Render(w, state); err != nil {
		log.Error().Err(err).Str("query", r.URL.RawQuery).Msg("Failed to render page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
