package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/quinnbmay/mem0-webhook/internal/api/respond"
	"github.com/quinnbmay/mem0-webhook/internal/model"
	"github.com/quinnbmay/mem0-webhook/internal/services"
)

// WebhookHandler handles the webhook ingest endpoints (thin transport layer).
type WebhookHandler struct {
	svc *services.WebhookService
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(svc *services.WebhookService) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

// CreateMemory handles POST /webhook/memory.
func (h *WebhookHandler) CreateMemory(w http.ResponseWriter, r *http.Request) {
	var req model.MemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON payload")
		return
	}

	sub, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		if model.IsValidation(err) {
			respond.WriteBadRequest(w, err.Error())
		} else {
			respond.WriteInternalError(w, err.Error())
		}
		return
	}

	respond.WriteJSON(w, http.StatusOK, model.MemoryResponse{
		Success:   true,
		Message:   "Memory created successfully",
		MemoryID:  sub.MemoryID,
		Timestamp: time.Now().UTC(),
		UserID:    sub.UserID,
	})
}

// CreateMemoriesBatch handles POST /webhook/memories/batch.
// Partial failures stay a 200; the body carries per-entry errors.
func (h *WebhookHandler) CreateMemoriesBatch(w http.ResponseWriter, r *http.Request) {
	var req model.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON payload")
		return
	}

	resp := h.svc.SubmitBatch(r.Context(), req.Memories)
	respond.WriteJSON(w, http.StatusOK, resp)
}

// ZapierWebhook handles POST /webhook/zapier, accepting whatever field
// layout the automation sends.
func (h *WebhookHandler) ZapierWebhook(w http.ResponseWriter, r *http.Request) {
	var payload interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.WriteBadRequest(w, "invalid JSON payload")
		return
	}

	req := services.NormalizeAutomation(payload, h.svc.DefaultUserID())
	sub, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}

	respond.WriteJSON(w, http.StatusOK, model.IntegrationResponse{
		Success:   true,
		Message:   "Memory created via Zapier",
		MemoryID:  sub.MemoryID,
		Timestamp: time.Now().UTC(),
	})
}

// GenericWebhook handles POST /webhook/generic. Any JSON document is
// stored verbatim under a rendered wrapper.
func (h *WebhookHandler) GenericWebhook(w http.ResponseWriter, r *http.Request) {
	var payload interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.WriteBadRequest(w, "invalid JSON payload")
		return
	}

	req := services.NormalizeOpaque(payload, h.svc.DefaultUserID())
	sub, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}

	respond.WriteJSON(w, http.StatusOK, model.IntegrationResponse{
		Success:   true,
		Message:   "Data stored as memory",
		MemoryID:  sub.MemoryID,
		Timestamp: time.Now().UTC(),
	})
}
