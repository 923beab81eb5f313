package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quinnbmay/mem0-webhook/internal/api/respond"
	"github.com/quinnbmay/mem0-webhook/internal/model"
)

// Prober reports whether the upstream memory store answers queries.
type Prober interface {
	Probe(ctx context.Context) error
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	prober Prober
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(p Prober) *HealthHandler { return &HealthHandler{prober: p} }

// CheckHealth handles GET /health.
// Always returns 200; a failing mem0 probe degrades the body, never the status.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	resp := model.HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC(),
		Mem0Connected: true,
		WebhookReady:  true,
	}
	if err := h.prober.Probe(r.Context()); err != nil {
		log.Warn().Err(err).Msg("mem0 health probe failed")
		resp.Status = "degraded"
		resp.Mem0Connected = false
	}
	respond.WriteJSON(w, http.StatusOK, resp)
}
