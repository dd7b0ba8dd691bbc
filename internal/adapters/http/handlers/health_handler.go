package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-web/internal/platform/logging"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": dto.StatusOK})
}

// Readiness handles GET /health/ready: 200 when every registered check
// passes and 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))
	if resp.Ready() {
		writeJSON(w, r, http.StatusOK, resp)
		return
	}

	for name, msg := range resp.Checks {
		if msg != dto.StatusOK {
			logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
				slog.String("check", name),
				slog.String("error", msg),
			)
		}
	}
	writeJSON(w, r, http.StatusServiceUnavailable, resp)
}
