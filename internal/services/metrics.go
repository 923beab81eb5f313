package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	memoriesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mem0_webhook",
			Name:      "memories_created_total",
			Help:      "Memories successfully forwarded to mem0.",
		},
		[]string{"source"},
	)

	memoryFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mem0_webhook",
			Name:      "memory_failures_total",
			Help:      "Memory submissions rejected by mem0 or failed in transit.",
		},
		[]string{"source"},
	)
)

// sourceLabel keeps label cardinality bounded to the known ingest paths.
func sourceLabel(source string) string {
	switch source {
	case "webhook", "zapier", "generic":
		return source
	}
	return "other"
}
