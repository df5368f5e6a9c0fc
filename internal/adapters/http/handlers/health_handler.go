package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-app/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-app/internal/platform/logging"
	"github.com/jsamuelsen11/todo-app/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 when the todo store answers,
// 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))
	if !resp.Ready() {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.Any("failed", resp.Failed),
		)
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
