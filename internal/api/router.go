package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quinnbmay/mem0-webhook/internal/api/accesslog"
	"github.com/quinnbmay/mem0-webhook/internal/api/recovery"
	"github.com/quinnbmay/mem0-webhook/internal/api/respond"
	"github.com/quinnbmay/mem0-webhook/internal/services"
)

// NewRouter creates the HTTP router with all webhook routes.
func NewRouter(svc *services.WebhookService) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)
	router.Use(accesslog.Middleware)

	webhookHandler := NewWebhookHandler(svc)
	healthHandler := NewHealthHandler(svc)

	// Service document and probes
	router.HandleFunc("/", RootPage).Methods("GET")
	router.HandleFunc("/health", healthHandler.CheckHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Ingest endpoints
	router.HandleFunc("/webhook/memory", webhookHandler.CreateMemory).Methods("POST")
	router.HandleFunc("/webhook/memories/batch", webhookHandler.CreateMemoriesBatch).Methods("POST")
	router.HandleFunc("/webhook/zapier", webhookHandler.ZapierWebhook).Methods("POST")
	router.HandleFunc("/webhook/generic", webhookHandler.GenericWebhook).Methods("POST")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteNotFound(w, "no such endpoint")
	})

	return router
}
