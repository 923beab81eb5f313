// Package webhookservice boots the webhook relay: configuration, logging,
// the mem0 client, HTTP routes, and lifecycle management.
package webhookservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/zerolog"

	"github.com/quinnbmay/mem0-webhook/internal/api"
	"github.com/quinnbmay/mem0-webhook/internal/auth"
	"github.com/quinnbmay/mem0-webhook/internal/config"
	"github.com/quinnbmay/mem0-webhook/internal/logger"
	"github.com/quinnbmay/mem0-webhook/internal/mem0"
	"github.com/quinnbmay/mem0-webhook/internal/services"
)

// Run starts the webhook relay HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("mem0-webhook")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("mem0_base_url", cfg.Mem0BaseURL).
		Str("default_user_id", cfg.DefaultUserID).
		Bool("webhook_secret_set", cfg.SecretConfigured()).
		Msg("Webhook relay starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := newServerContext()
	defer stop()

	store := mem0.NewClient(cfg.Mem0BaseURL, cfg.Mem0APIKey, cfg.Mem0Timeout())
	svc := services.NewWebhookService(store, cfg.DefaultUserID, log)
	router := api.NewRouter(svc)

	server := newHTTPServer(ctx, cfg, withCORS(router))
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error.
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// withCORS applies the permissive policy the browser-facing integrations
// rely on. Webhook sources are authenticated by signature, not by origin.
func withCORS(h http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", auth.SignatureHeader}),
	)(h)
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a context cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
