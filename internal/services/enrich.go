package services

import (
	"time"

	"github.com/quinnbmay/mem0-webhook/internal/model"
)

// EnrichMetadata derives the standard memory metadata from a request and a
// single clock reading. Caller-supplied metadata wins on key collisions.
func EnrichMetadata(req *model.MemoryRequest, now time.Time) map[string]interface{} {
	iso := now.Format(time.RFC3339Nano)
	meta := map[string]interface{}{
		"category":         req.Category,
		"day":              now.Format("2006-01-02"),
		"month":            now.Format("2006-01"),
		"year":             now.Format("2006"),
		"client":           req.Client,
		"project_type":     req.ProjectType,
		"device":           "webhook_api",
		"timestamp":        iso,
		"source":           req.Source,
		"webhook_received": iso,
	}
	for k, v := range req.Metadata {
		meta[k] = v
	}
	return meta
}
