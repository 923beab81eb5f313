package config

import (
	"os"
	"testing"
)

func setAPIKey(t *testing.T) {
	t.Helper()
	_ = os.Setenv("MEM0_API_KEY", "m0-test")
	t.Cleanup(func() { _ = os.Unsetenv("MEM0_API_KEY") })
}

func TestConfigLoad_Defaults(t *testing.T) {
	setAPIKey(t)
	_ = os.Unsetenv("MEM0_BASE_URL")
	_ = os.Unsetenv("DEFAULT_USER_ID")
	_ = os.Unsetenv("PORT")
	_ = os.Unsetenv("WEBHOOK_SECRET")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.Mem0BaseURL != "https://api.mem0.ai" {
		t.Fatalf("unexpected default base URL: %s", cfg.Mem0BaseURL)
	}
	if cfg.DefaultUserID != "quinn_may" {
		t.Fatalf("unexpected default user id: %s", cfg.DefaultUserID)
	}
	if cfg.HTTPPort != 8000 {
		t.Fatalf("unexpected default port: %d", cfg.HTTPPort)
	}
	if cfg.SecretConfigured() {
		t.Fatalf("secret should be unconfigured by default")
	}
}

func TestConfigLoad_MissingAPIKey(t *testing.T) {
	_ = os.Unsetenv("MEM0_API_KEY")

	if _, err := New(); err == nil {
		t.Fatal("expected error when MEM0_API_KEY is unset")
	}
}

func TestConfigLoad_EnvOverrides(t *testing.T) {
	setAPIKey(t)
	_ = os.Setenv("DEFAULT_USER_ID", "alt_user")
	_ = os.Setenv("PORT", "9100")
	defer func() {
		_ = os.Unsetenv("DEFAULT_USER_ID")
		_ = os.Unsetenv("PORT")
	}()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DefaultUserID != "alt_user" {
		t.Fatalf("default user env override failed, got %s", cfg.DefaultUserID)
	}
	if cfg.HTTPPort != 9100 {
		t.Fatalf("port env override failed, got %d", cfg.HTTPPort)
	}
}

func TestConfigValidate_Ranges(t *testing.T) {
	cfg := NewForTesting()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("testing config should validate: %v", err)
	}

	bad := NewForTesting()
	bad.HTTPPort = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for port 0")
	}

	bad = NewForTesting()
	bad.Mem0TimeoutSeconds = -1
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestConfig_SecretConfigured(t *testing.T) {
	cfg := NewForTesting()
	if cfg.SecretConfigured() {
		t.Fatal("no secret expected")
	}
	cfg.WebhookSecret = "s3cret"
	if !cfg.SecretConfigured() {
		t.Fatal("secret expected")
	}
}
