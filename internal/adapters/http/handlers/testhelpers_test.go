package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-web/internal/domain/form"
)

// routed attaches chi URL parameters so handlers can be called without a
// router.
func routed(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for name, value := range params {
		rctx.URLParams.Add(name, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// contactSnapshot is a complete contact form as the browser would send it.
func contactSnapshot() dto.FormSnapshot {
	return dto.FormSnapshot{
		ID: form.IDContact,
		Fields: []dto.FieldSnapshot{
			{ID: "contactName", Name: "name", Type: "text", Value: "Ada", Required: true},
			{ID: "contactEmail", Name: "email", Type: "email", Value: "ada@example.edu", Required: true},
			{ID: form.IDContactMessage, Name: "message", Type: "textarea", Value: "Hello there", Required: true},
			{Name: "_t", Type: "hidden", Value: "token"},
		},
		Submit: dto.SubmitSnapshot{Label: "Send Message"},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	return bytes.NewReader(b)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
