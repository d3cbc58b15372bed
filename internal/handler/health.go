package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/tabletalk/tabletalk/internal/backend"
	"github.com/tabletalk/tabletalk/internal/models"
)

const version = "1.0.0"

// HealthHandler handles GET /health with a backend reachability check
type HealthHandler struct {
	backend *backend.Client
}

func NewHealthHandler(client *backend.Client) *HealthHandler {
	return &HealthHandler{backend: client}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"server": "ok"}
	overallStatus := "healthy"

	// Short timeout so a slow backend doesn't block the probe
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.backend.TestConnection(ctx); err != nil {
		checks["backend"] = "unavailable: " + err.Error()
		overallStatus = "degraded"
	} else {
		checks["backend"] = "ok"
	}

	statusCode := http.StatusOK
	if overallStatus == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	models.WriteJSON(w, statusCode, models.HealthResponse{
		Status:  overallStatus,
		Version: version,
		Checks:  checks,
	})
}
