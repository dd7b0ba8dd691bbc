package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-web/internal/domain/form"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

// FormHandler handles field and submit events of the page's forms.
type FormHandler struct {
	svc ports.FormService
}

// NewFormHandler creates a new FormHandler with the given service port.
func NewFormHandler(svc ports.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

// Input handles POST /api/v1/forms/{formId}/input.
func (h *FormHandler) Input(w http.ResponseWriter, r *http.Request) {
	f, field, ok := decodeFieldEvent(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Input(r.Context(), f, field)
	writePatch(w, r, p, err)
}

// Blur handles POST /api/v1/forms/{formId}/blur.
func (h *FormHandler) Blur(w http.ResponseWriter, r *http.Request) {
	f, field, ok := decodeFieldEvent(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Blur(r.Context(), f, field)
	writePatch(w, r, p, err)
}

// Submit handles POST /api/v1/forms/{formId}/submit.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	formID, err := pathParam(r, ParamFormID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SubmitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	f := req.Form.ToDomain(formID)
	if err := f.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.Submit(r.Context(), f)
	writePatch(w, r, p, err)
}

// decodeFieldEvent decodes an input or blur event and checks the form
// snapshot. On failure it writes an error response and returns false.
func decodeFieldEvent(w http.ResponseWriter, r *http.Request) (*form.Form, string, bool) {
	formID, err := pathParam(r, ParamFormID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil, "", false
	}

	var req dto.FieldEventRequest
	if !decodeAndValidate(w, r, &req) {
		return nil, "", false
	}
	f := req.Form.ToDomain(formID)
	if err := f.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil, "", false
	}
	return f, req.Field, true
}
