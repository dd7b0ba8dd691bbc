package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-web/internal/domain"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"snapshot rejected", &domain.ValidationError{Fields: map[string]string{"field": domain.MsgRequired}}, http.StatusBadRequest},
		{"unknown catalog", fmt.Errorf("catalog %q: %w", "events", domain.ErrNotFound), http.StatusNotFound},
		{"duplicate key", domain.ErrConflict, http.StatusConflict},
		{"throttled", domain.ErrRateLimited, http.StatusTooManyRequests},
		{"content service down", fmt.Errorf("fetching clubs: %w", domain.ErrUnavailable), http.StatusBadGateway},
		{"deadline", fmt.Errorf("request exceeded 10s: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"unclassified", errors.New("template exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := dto.StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		err    error
		want   dto.ErrorResponse
	}{
		{
			name:   "unknown catalog entry",
			target: "/api/v1/catalogs/programs/entries/nuclear",
			err:    fmt.Errorf("programs entry %q: %w", "nuclear", domain.ErrNotFound),
			want: dto.ErrorResponse{
				Type:     "about:blank",
				Title:    "Not Found",
				Status:   http.StatusNotFound,
				Detail:   `programs entry "nuclear": not found`,
				Instance: "/api/v1/catalogs/programs/entries/nuclear",
			},
		},
		{
			name:   "malformed snapshot lists fields in order",
			target: "/api/v1/forms/contactForm/input",
			err: &domain.ValidationError{Fields: map[string]string{
				"field":          domain.MsgRequired,
				"form.fields[1]": "needs an id or a name",
				"form.fields[0]": "needs an id or a name",
			}},
			want: dto.ErrorResponse{
				Type:     "about:blank",
				Title:    "Bad Request",
				Status:   http.StatusBadRequest,
				Detail:   "validation error: field: is required; form.fields[0]: needs an id or a name; form.fields[1]: needs an id or a name",
				Instance: "/api/v1/forms/contactForm/input",
				Errors: []dto.ErrorDetail{
					{Location: "body.field", Message: domain.MsgRequired},
					{Location: "body.form.fields[0]", Message: "needs an id or a name"},
					{Location: "body.form.fields[1]", Message: "needs an id or a name"},
				},
			},
		},
		{
			name:   "internal detail hidden",
			target: "/api/v1/forms/registrationForm/submit",
			err:    errors.New("rendering spinner: unexpected EOF"),
			want: dto.ErrorResponse{
				Type:     "about:blank",
				Title:    "Internal Server Error",
				Status:   http.StatusInternalServerError,
				Detail:   "the server could not build a response",
				Instance: "/api/v1/forms/registrationForm/submit",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, tt.target, nil)
			if diff := cmp.Diff(tt.want, dto.NewErrorResponse(r, tt.err)); diff != "" {
				t.Errorf("NewErrorResponse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/interactions/news-filter", nil)
	dto.WriteErrorResponse(w, r, domain.ErrRateLimited)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	var got dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got.Title != "Too Many Requests" || got.Instance != "/api/v1/interactions/news-filter" {
		t.Errorf("body = %+v", got)
	}
	if got.Errors != nil {
		t.Errorf("Errors = %v, want none", got.Errors)
	}
}
