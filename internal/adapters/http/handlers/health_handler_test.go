package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/campus-web/mocks"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	// Liveness never consults the registry.
	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	if got := decodeJSON[map[string]string](t, rec); got["status"] != "ok" {
		t.Errorf("status = %q, want ok", got["status"])
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantStatus int
		want       dto.ReadinessResponse
	}{
		{
			name:       "no checks registered",
			results:    map[string]error{},
			wantStatus: http.StatusOK,
			want:       dto.ReadinessResponse{Status: "ready", Checks: map[string]string{}},
		},
		{
			name:       "catalogs loaded",
			results:    map[string]error{"catalogs": nil},
			wantStatus: http.StatusOK,
			want:       dto.ReadinessResponse{Status: "ready", Checks: map[string]string{"catalogs": "ok"}},
		},
		{
			name: "content service down",
			results: map[string]error{
				"catalogs":    nil,
				"content-api": errors.New("content-api: failing (circuit breaker open)"),
			},
			wantStatus: http.StatusServiceUnavailable,
			want: dto.ReadinessResponse{Status: "not_ready", Checks: map[string]string{
				"catalogs":    "ok",
				"content-api": "content-api: failing (circuit breaker open)",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec,
				httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

			requireStatus(t, rec, tt.wantStatus)
			if diff := cmp.Diff(tt.want, decodeJSON[dto.ReadinessResponse](t, rec)); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
