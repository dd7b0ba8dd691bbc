package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/catalog"
	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
	"github.com/jsamuelsen11/campus-web/internal/platform/logging"
)

// Route parameter names, shared with the router.
const (
	ParamFormID  = "formId"
	ParamCatalog = "catalog"
	ParamKey     = "key"
)

// maxBody caps event payloads. Snapshots are small; 1 MiB is generous.
const maxBody = 1 << 20

func pathParam(r *http.Request, name string) (string, error) {
	if v := chi.URLParam(r, name); v != "" {
		return v, nil
	}
	return "", &domain.ValidationError{Fields: map[string]string{name: domain.MsgRequired}}
}

// parseCatalogName reads the catalog parameter. A catalog that does not
// exist is a missing resource, not a bad request.
func parseCatalogName(r *http.Request) (catalog.Name, error) {
	raw, err := pathParam(r, ParamCatalog)
	if err != nil {
		return "", err
	}
	if name := catalog.Name(raw); name.IsValid() {
		return name, nil
	}
	return "", domain.ErrNotFound
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response body", slog.Any("error", err))
	}
}

// writePatch answers an event with its command list, or with a problem
// document when the service failed.
func writePatch(w http.ResponseWriter, r *http.Request, p ui.Patch, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToPatchResponse(p))
}

type validatable interface {
	Validate() error
}

// decodeAndValidate fills dst from the JSON body and runs its Validate.
// When either step fails the problem response is already written and the
// handler should return.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(dst)
	if err != nil {
		msg := "invalid JSON"
		if mbe := new(http.MaxBytesError); errors.As(err, &mbe) {
			msg = fmt.Sprintf("larger than %d bytes", mbe.Limit)
		}
		err = &domain.ValidationError{Fields: map[string]string{"body": msg}}
	} else {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
