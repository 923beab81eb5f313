// Package mem0 is a small client for the mem0 hosted REST API, covering
// the two operations the relay needs: adding memories and searching them.
package mem0

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// API captures the mem0 operations the relay depends on. Handlers and
// services take this interface so tests can substitute a fake.
type API interface {
	Add(ctx context.Context, req AddRequest) (*AddResponse, error)
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// Client talks to the hosted API over HTTPS.
type Client struct {
	http *resty.Client
}

var _ API = (*Client)(nil)

// NewClient builds a Client for the given base URL and API key. The
// timeout bounds each request; there are no client-side retries.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", "Token "+apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{http: c}
}

// Add stores the request's messages as memories.
func (c *Client) Add(ctx context.Context, req AddRequest) (*AddResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&req).
		Post("/v1/memories/")
	if err != nil {
		return nil, fmt.Errorf("mem0 add request: %w", err)
	}
	if !statusOK(resp.StatusCode()) {
		return nil, fmt.Errorf("mem0 add status %d: %s", resp.StatusCode(), resp.String())
	}

	var out AddResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode add response: %w", err)
	}
	return &out, nil
}

// Search queries stored memories for the given user.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&req).
		Post("/v1/memories/search/")
	if err != nil {
		return nil, fmt.Errorf("mem0 search request: %w", err)
	}
	if !statusOK(resp.StatusCode()) {
		return nil, fmt.Errorf("mem0 search status %d: %s", resp.StatusCode(), resp.String())
	}

	var out SearchResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &out, nil
}

func statusOK(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
