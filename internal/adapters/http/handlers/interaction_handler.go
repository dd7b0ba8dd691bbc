package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

// InteractionHandler handles page load and the stateless page reactors.
type InteractionHandler struct {
	svc ports.InteractionService
}

// NewInteractionHandler creates a new InteractionHandler with the given service port.
func NewInteractionHandler(svc ports.InteractionService) *InteractionHandler {
	return &InteractionHandler{svc: svc}
}

// PageLoad handles POST /api/v1/page/load.
func (h *InteractionHandler) PageLoad(w http.ResponseWriter, r *http.Request) {
	var req dto.PageLoadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := h.svc.PageLoad(r.Context(), req.ToDomain())
	writePatch(w, r, p, err)
}

// FilterNews handles POST /api/v1/interactions/news-filter.
func (h *InteractionHandler) FilterNews(w http.ResponseWriter, r *http.Request) {
	var req dto.NewsFilterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := h.svc.FilterNews(r.Context(), req.ToDomain())
	writePatch(w, r, p, err)
}

// ToggleFAQ handles POST /api/v1/interactions/faq.
func (h *InteractionHandler) ToggleFAQ(w http.ResponseWriter, r *http.Request) {
	var req dto.FAQRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := h.svc.ToggleFAQ(r.Context(), req.ToDomain())
	writePatch(w, r, p, err)
}

// KeyDown handles POST /api/v1/interactions/keydown.
func (h *InteractionHandler) KeyDown(w http.ResponseWriter, r *http.Request) {
	var req dto.KeyDownRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := h.svc.KeyDown(r.Context(), req.ToDomain())
	writePatch(w, r, p, err)
}
