package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the process-wide settings for the webhook relay. It is
// constructed once at startup and read-only afterwards; handlers receive
// it by reference instead of going through globals.
//
// Variable names keep the original deployment contract (MEM0_API_KEY,
// WEBHOOK_SECRET, DEFAULT_USER_ID, PORT), so no prefix is applied.
type Config struct {
	// Mem0 API access.
	Mem0APIKey         string `envconfig:"MEM0_API_KEY"`
	Mem0BaseURL        string `envconfig:"MEM0_BASE_URL" default:"https://api.mem0.ai"`
	Mem0TimeoutSeconds int    `envconfig:"MEM0_TIMEOUT_SECONDS" default:"30"`

	// Optional HMAC secret for webhook signatures. Empty means signature
	// verification is a no-op.
	WebhookSecret string `envconfig:"WEBHOOK_SECRET" default:""`

	// Identity applied when a payload carries no user id of its own.
	DefaultUserID string `envconfig:"DEFAULT_USER_ID" default:"quinn_may"`

	// HTTP listener.
	HTTPPort int `envconfig:"PORT" default:"8000"`
}

// Validate checks the parsed configuration. The relay refuses to start
// without an API key rather than limping along with failing submissions.
func (c *Config) Validate() error {
	if c.Mem0APIKey == "" {
		return fmt.Errorf("MEM0_API_KEY must be set")
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.HTTPPort)
	}
	if c.Mem0TimeoutSeconds <= 0 {
		return fmt.Errorf("MEM0_TIMEOUT_SECONDS must be positive, got %d", c.Mem0TimeoutSeconds)
	}
	return nil
}

// New parses the environment into a Config and validates it.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Int("port", cfg.HTTPPort).
		Str("mem0_base_url", cfg.Mem0BaseURL).
		Str("default_user_id", cfg.DefaultUserID).
		Bool("api_key_set", cfg.Mem0APIKey != "").
		Bool("webhook_secret_set", cfg.SecretConfigured()).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting returns a config with fixed values and no environment
// dependency, for use in unit tests.
func NewForTesting() *Config {
	return &Config{
		Mem0APIKey:         "test-key",
		Mem0BaseURL:        "http://localhost:8765",
		Mem0TimeoutSeconds: 5,
		DefaultUserID:      "quinn_may",
		HTTPPort:           8000,
	}
}

// SecretConfigured reports whether a webhook signing secret is present.
func (c *Config) SecretConfigured() bool {
	return c.WebhookSecret != ""
}

// Mem0Timeout returns the mem0 HTTP timeout as a duration.
func (c *Config) Mem0Timeout() time.Duration {
	return time.Duration(c.Mem0TimeoutSeconds) * time.Second
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
