package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

// CatalogHandler handles the program and club dialogs.
type CatalogHandler struct {
	svc ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler with the given service port.
func NewCatalogHandler(svc ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Show handles GET /api/v1/catalogs/{catalog}/{key}. The response opens the
// catalog's dialog; unknown keys show the placeholder entry.
func (h *CatalogHandler) Show(w http.ResponseWriter, r *http.Request) {
	name, err := parseCatalogName(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	key, err := pathParam(r, ParamKey)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.Show(r.Context(), name, key)
	writePatch(w, r, p, err)
}

// Lookup handles GET /api/v1/catalogs/{catalog}/entries/{key}.
func (h *CatalogHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	name, err := parseCatalogName(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	key, err := pathParam(r, ParamKey)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	e, err := h.svc.Lookup(r.Context(), name, key)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToEntryResponse(e))
}
