package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/quinnbmay/mem0-webhook/internal/mem0"
	"github.com/quinnbmay/mem0-webhook/internal/model"
)

type fakeAPI struct {
	addFn    func(ctx context.Context, req mem0.AddRequest) (*mem0.AddResponse, error)
	searchFn func(ctx context.Context, req mem0.SearchRequest) (*mem0.SearchResponse, error)

	addCalls []mem0.AddRequest
}

func (f *fakeAPI) Add(ctx context.Context, req mem0.AddRequest) (*mem0.AddResponse, error) {
	f.addCalls = append(f.addCalls, req)
	if f.addFn != nil {
		return f.addFn(ctx, req)
	}
	return &mem0.AddResponse{}, nil
}

func (f *fakeAPI) Search(ctx context.Context, req mem0.SearchRequest) (*mem0.SearchResponse, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, req)
	}
	return &mem0.SearchResponse{}, nil
}

func newTestService(api mem0.API) *WebhookService {
	return NewWebhookService(api, "default-user", zerolog.Nop())
}

func TestSubmit_ForwardsEnrichedRequest(t *testing.T) {
	api := &fakeAPI{
		addFn: func(_ context.Context, _ mem0.AddRequest) (*mem0.AddResponse, error) {
			return &mem0.AddResponse{Object: &mem0.AddResult{
				Results: []mem0.AddResult{{ID: "mem-42", Event: "ADD"}},
			}}, nil
		},
	}
	svc := newTestService(api)

	sub, err := svc.Submit(context.Background(), model.MemoryRequest{Content: "note to self"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(api.addCalls) != 1 {
		t.Fatalf("expected one Add call, got %d", len(api.addCalls))
	}
	call := api.addCalls[0]
	if call.UserID != "default-user" {
		t.Fatalf("user_id = %q", call.UserID)
	}
	if call.OutputFormat != "v1.1" {
		t.Fatalf("output_format = %q", call.OutputFormat)
	}
	if len(call.Messages) != 1 || call.Messages[0].Role != "user" || call.Messages[0].Content != "note to self" {
		t.Fatalf("messages = %+v", call.Messages)
	}
	if call.Metadata["category"] != "webhook" || call.Metadata["device"] != "webhook_api" {
		t.Fatalf("metadata = %v", call.Metadata)
	}

	if !sub.Success || sub.MemoryID != "mem-42" || sub.UserID != "default-user" {
		t.Fatalf("submission = %+v", sub)
	}
}

func TestSubmit_EmptyContentIsValidationError(t *testing.T) {
	api := &fakeAPI{}
	svc := newTestService(api)

	_, err := svc.Submit(context.Background(), model.MemoryRequest{})
	if !model.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(api.addCalls) != 0 {
		t.Fatal("validation failures must not reach mem0")
	}
}

func TestSubmit_AddFailureIsWrapped(t *testing.T) {
	api := &fakeAPI{
		addFn: func(_ context.Context, _ mem0.AddRequest) (*mem0.AddResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newTestService(api)

	_, err := svc.Submit(context.Background(), model.MemoryRequest{Content: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("underlying cause lost: %v", err)
	}
}

func TestSubmit_AbsentMemoryIDIsNotAnError(t *testing.T) {
	api := &fakeAPI{
		addFn: func(_ context.Context, _ mem0.AddRequest) (*mem0.AddResponse, error) {
			// Accepted, but the response exposes no id (e.g. "results": []).
			return &mem0.AddResponse{Object: &mem0.AddResult{}}, nil
		},
	}
	svc := newTestService(api)

	sub, err := svc.Submit(context.Background(), model.MemoryRequest{Content: "x"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !sub.Success || sub.MemoryID != "" {
		t.Fatalf("submission = %+v", sub)
	}
}

func TestSubmit_ExplicitFieldsSurviveDefaulting(t *testing.T) {
	api := &fakeAPI{}
	svc := newTestService(api)

	_, err := svc.Submit(context.Background(), model.MemoryRequest{
		Content:  "x",
		UserID:   "alice",
		Category: "notes",
		Metadata: map[string]interface{}{"k": "v"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	call := api.addCalls[0]
	if call.UserID != "alice" {
		t.Fatalf("user_id = %q", call.UserID)
	}
	if call.Metadata["category"] != "notes" || call.Metadata["k"] != "v" {
		t.Fatalf("metadata = %v", call.Metadata)
	}
}

func TestSubmitBatch_ContinuesPastFailures(t *testing.T) {
	api := &fakeAPI{
		addFn: func(_ context.Context, req mem0.AddRequest) (*mem0.AddResponse, error) {
			if req.Messages[0].Content == "bad" {
				return nil, errors.New("rejected")
			}
			return &mem0.AddResponse{Object: &mem0.AddResult{ID: "id-" + req.Messages[0].Content}}, nil
		},
	}
	svc := newTestService(api)

	resp := svc.SubmitBatch(context.Background(), []model.MemoryRequest{
		{Content: "first"},
		{Content: "bad"},
		{Content: "third"},
	})

	if resp.Success {
		t.Fatal("batch with failures should not report success")
	}
	if resp.Created != 2 || resp.Failed != 1 {
		t.Fatalf("created=%d failed=%d", resp.Created, resp.Failed)
	}
	if len(resp.Results) != 2 || resp.Results[0].MemoryID != "id-first" || resp.Results[1].MemoryID != "id-third" {
		t.Fatalf("results = %+v", resp.Results)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Content != "bad" {
		t.Fatalf("errors = %+v", resp.Errors)
	}
	if !strings.Contains(resp.Errors[0].Error, "rejected") {
		t.Fatalf("error text = %q", resp.Errors[0].Error)
	}
	if resp.Timestamp.IsZero() {
		t.Fatal("timestamp missing")
	}
}

func TestSubmitBatch_EmptyContentRecorded(t *testing.T) {
	svc := newTestService(&fakeAPI{})

	resp := svc.SubmitBatch(context.Background(), []model.MemoryRequest{{Content: ""}})
	if resp.Created != 0 || resp.Failed != 1 {
		t.Fatalf("created=%d failed=%d", resp.Created, resp.Failed)
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("errors = %+v", resp.Errors)
	}
}

func TestSubmitBatch_ErrorPreviewIsRuneSafeTruncated(t *testing.T) {
	api := &fakeAPI{
		addFn: func(_ context.Context, _ mem0.AddRequest) (*mem0.AddResponse, error) {
			return nil, errors.New("boom")
		},
	}
	svc := newTestService(api)

	long := strings.Repeat("héllo wörld ", 10) // 120 runes, multibyte
	resp := svc.SubmitBatch(context.Background(), []model.MemoryRequest{{Content: long}})

	if len(resp.Errors) != 1 {
		t.Fatalf("errors = %+v", resp.Errors)
	}
	preview := resp.Errors[0].Content
	if got := utf8.RuneCountInString(preview); got != 50 {
		t.Fatalf("preview rune count = %d, want 50", got)
	}
	if !utf8.ValidString(preview) {
		t.Fatalf("preview is not valid UTF-8: %q", preview)
	}
	if !strings.HasPrefix(long, preview) {
		t.Fatalf("preview %q is not a prefix of the content", preview)
	}
}

func TestSubmitBatch_EmptyInput(t *testing.T) {
	svc := newTestService(&fakeAPI{})

	resp := svc.SubmitBatch(context.Background(), nil)
	if !resp.Success || resp.Created != 0 || resp.Failed != 0 {
		t.Fatalf("success=%v created=%d failed=%d", resp.Success, resp.Created, resp.Failed)
	}
	if resp.Results == nil || resp.Errors == nil {
		t.Fatal("results and errors must encode as lists, not null")
	}
}

func TestProbe_UsesDefaultUserSearch(t *testing.T) {
	var got mem0.SearchRequest
	api := &fakeAPI{
		searchFn: func(_ context.Context, req mem0.SearchRequest) (*mem0.SearchResponse, error) {
			got = req
			return &mem0.SearchResponse{}, nil
		},
	}
	svc := newTestService(api)

	if err := svc.Probe(context.Background()); err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if got.Query != "test" || got.UserID != "default-user" || got.Limit != 1 {
		t.Fatalf("search request = %+v", got)
	}
}

func TestProbe_PropagatesFailure(t *testing.T) {
	api := &fakeAPI{
		searchFn: func(_ context.Context, _ mem0.SearchRequest) (*mem0.SearchResponse, error) {
			return nil, errors.New("dial tcp: timeout")
		},
	}
	svc := newTestService(api)

	if err := svc.Probe(context.Background()); err == nil {
		t.Fatal("expected probe error")
	}
}
