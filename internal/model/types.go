package model

import "time"

// MemoryRequest is the structured webhook payload for a single memory.
// Field names stay snake_case on the wire because external integrations
// already post this shape.
type MemoryRequest struct {
	Content     string                 `json:"content"`
	UserID      string                 `json:"user_id,omitempty"`
	Category    string                 `json:"category,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Client      string                 `json:"client,omitempty"`
	ProjectType string                 `json:"project_type,omitempty"`
	Source      string                 `json:"source,omitempty"`
}

// ApplyDefaults fills empty optional fields with the fixed webhook defaults.
func (r *MemoryRequest) ApplyDefaults(defaultUserID string) {
	if r.UserID == "" {
		r.UserID = defaultUserID
	}
	if r.Category == "" {
		r.Category = "webhook"
	}
	if r.Client == "" {
		r.Client = "webhook"
	}
	if r.ProjectType == "" {
		r.ProjectType = "webhook_post"
	}
	if r.Source == "" {
		r.Source = "webhook"
	}
}

// Validate reports whether the request can be submitted.
func (r *MemoryRequest) Validate() error {
	if r.Content == "" {
		return ErrContentRequired
	}
	return nil
}

// BatchRequest wraps the payload of the batch endpoint.
type BatchRequest struct {
	Memories []MemoryRequest `json:"memories"`
}

// Submission is the record returned by the submission executor after the
// storage call. Batch results embed these verbatim.
type Submission struct {
	Success  bool                   `json:"success"`
	MemoryID string                 `json:"memory_id,omitempty"`
	UserID   string                 `json:"user_id"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}

// MemoryResponse is returned by the structured webhook endpoint.
type MemoryResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	MemoryID  string    `json:"memory_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
}

// IntegrationResponse is returned by the zapier and generic endpoints,
// which do not echo a user id.
type IntegrationResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	MemoryID  string    `json:"memory_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// BatchError captures one failed entry of a batch. Content holds a
// truncated preview, never the full payload.
type BatchError struct {
	Content string `json:"content"`
	Error   string `json:"error"`
}

// BatchResponse reports the outcome of a batch submission. Errors is
// always a list; an empty one means every entry succeeded.
type BatchResponse struct {
	Success   bool         `json:"success"`
	Created   int          `json:"created"`
	Failed    int          `json:"failed"`
	Results   []Submission `json:"results"`
	Errors    []BatchError `json:"errors"`
	Timestamp time.Time    `json:"timestamp"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Mem0Connected bool      `json:"mem0_connected"`
	WebhookReady  bool      `json:"webhook_ready"`
}
