package services

import (
	"testing"
	"time"

	"github.com/quinnbmay/mem0-webhook/internal/model"
)

func TestEnrichMetadata_DerivedKeys(t *testing.T) {
	req := model.MemoryRequest{
		Category:    "webhook",
		Client:      "webhook",
		ProjectType: "webhook_post",
		Source:      "webhook",
	}
	now := time.Date(2025, time.March, 7, 12, 30, 0, 0, time.UTC)

	meta := EnrichMetadata(&req, now)

	want := map[string]string{
		"category":     "webhook",
		"day":          "2025-03-07",
		"month":        "2025-03",
		"year":         "2025",
		"client":       "webhook",
		"project_type": "webhook_post",
		"device":       "webhook_api",
		"source":       "webhook",
	}
	for k, v := range want {
		if meta[k] != v {
			t.Fatalf("meta[%q] = %v, want %q", k, meta[k], v)
		}
	}
	if meta["timestamp"] != meta["webhook_received"] {
		t.Fatalf("timestamp %v and webhook_received %v should share one clock reading",
			meta["timestamp"], meta["webhook_received"])
	}
	ts, ok := meta["timestamp"].(string)
	if !ok {
		t.Fatalf("timestamp should be a string, got %T", meta["timestamp"])
	}
	if _, err := time.Parse(time.RFC3339Nano, ts); err != nil {
		t.Fatalf("timestamp %q not RFC3339: %v", ts, err)
	}
}

func TestEnrichMetadata_CallerKeysWin(t *testing.T) {
	req := model.MemoryRequest{
		Category: "webhook",
		Metadata: map[string]interface{}{
			"device": "phone",
			"custom": "kept",
		},
	}
	meta := EnrichMetadata(&req, time.Now())

	if meta["device"] != "phone" {
		t.Fatalf("caller metadata should override derived keys, got device=%v", meta["device"])
	}
	if meta["custom"] != "kept" {
		t.Fatalf("caller metadata lost: %v", meta)
	}
	if _, ok := meta["month"]; !ok {
		t.Fatal("derived keys should still be present")
	}
}
