package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/quinnbmay/mem0-webhook/internal/mem0"
	"github.com/quinnbmay/mem0-webhook/internal/model"
)

// WebhookService turns normalized webhook requests into mem0 memories.
type WebhookService struct {
	store         mem0.API
	defaultUserID string
	log           zerolog.Logger
}

func NewWebhookService(store mem0.API, defaultUserID string, log zerolog.Logger) *WebhookService {
	return &WebhookService{store: store, defaultUserID: defaultUserID, log: log}
}

// DefaultUserID is the fallback user for payloads that name none.
func (s *WebhookService) DefaultUserID() string { return s.defaultUserID }

// Submit enriches one request and forwards it to mem0. The returned
// Submission carries the extracted memory id when the storage response
// exposes one; an unrecognized response shape is not an error.
func (s *WebhookService) Submit(ctx context.Context, req model.MemoryRequest) (*model.Submission, error) {
	req.ApplyDefaults(s.defaultUserID)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	meta := EnrichMetadata(&req, time.Now())
	resp, err := s.store.Add(ctx, mem0.AddRequest{
		Messages:     []mem0.Message{{Role: "user", Content: req.Content}},
		UserID:       req.UserID,
		Metadata:     meta,
		OutputFormat: mem0.OutputFormatV11,
	})
	if err != nil {
		memoryFailuresTotal.WithLabelValues(sourceLabel(req.Client)).Inc()
		s.log.Error().Err(err).
			Str("user_id", req.UserID).
			Str("content", truncate(req.Content, 50)).
			Msg("mem0 add failed")
		return nil, errors.Wrap(err, "add memory")
	}
	memoriesCreatedTotal.WithLabelValues(sourceLabel(req.Client)).Inc()

	sub := &model.Submission{
		Success:  true,
		UserID:   req.UserID,
		Content:  req.Content,
		Metadata: meta,
	}
	if id, ok := resp.MemoryID(); ok {
		sub.MemoryID = id
	}
	s.log.Info().
		Str("user_id", req.UserID).
		Str("memory_id", sub.MemoryID).
		Str("content", truncate(req.Content, 50)).
		Msg("memory created")
	return sub, nil
}

// SubmitBatch forwards requests one at a time in input order, continuing
// past failures. Failed entries are reported with a truncated content
// preview instead of aborting the batch.
func (s *WebhookService) SubmitBatch(ctx context.Context, reqs []model.MemoryRequest) *model.BatchResponse {
	out := &model.BatchResponse{
		Results: make([]model.Submission, 0, len(reqs)),
		Errors:  make([]model.BatchError, 0),
	}
	for _, req := range reqs {
		sub, err := s.Submit(ctx, req)
		if err != nil {
			out.Failed++
			out.Errors = append(out.Errors, model.BatchError{
				Content: truncate(req.Content, 50),
				Error:   err.Error(),
			})
			continue
		}
		out.Created++
		out.Results = append(out.Results, *sub)
	}
	out.Success = out.Failed == 0
	out.Timestamp = time.Now().UTC()
	return out
}

// Probe verifies mem0 reachability with a minimal search. A probe failure
// signals degradation only; callers must not treat it as fatal.
func (s *WebhookService) Probe(ctx context.Context) error {
	_, err := s.store.Search(ctx, mem0.SearchRequest{
		Query:  "test",
		UserID: s.defaultUserID,
		Limit:  1,
	})
	return err
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
