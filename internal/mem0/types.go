package mem0

import (
	"bytes"
	"encoding/json"
)

// OutputFormatV11 requests the richest add-response format the hosted
// API offers (an object wrapping a results list).
const OutputFormatV11 = "v1.1"

// Message is one chat-style message wrapped around memory content.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AddRequest is the payload of POST /v1/memories/.
type AddRequest struct {
	Messages     []Message              `json:"messages"`
	UserID       string                 `json:"user_id,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	OutputFormat string                 `json:"output_format,omitempty"`
}

// SearchRequest is the payload of POST /v1/memories/search/.
type SearchRequest struct {
	Query  string `json:"query"`
	UserID string `json:"user_id,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// Memory is a stored record as returned by the API.
type Memory struct {
	ID        string                 `json:"id"`
	Memory    string                 `json:"memory"`
	UserID    string                 `json:"user_id,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Score     float64                `json:"score,omitempty"`
	CreatedAt string                 `json:"created_at,omitempty"`
}

// AddResult is one element of an add response, whichever shape it takes.
// Older API versions return these bare; v1.1 nests them under Results.
type AddResult struct {
	ID      string      `json:"id"`
	Event   string      `json:"event,omitempty"`
	Memory  string      `json:"memory,omitempty"`
	Results []AddResult `json:"results,omitempty"`
}

// AddResponse holds the decoded body of an add call. The API has shipped
// three shapes over time: a bare object, an object wrapping a results
// list, and a bare array. At most one of Object and List is set; both
// nil means the body carried nothing extractable.
type AddResponse struct {
	Object *AddResult
	List   []AddResult
}

// UnmarshalJSON sniffs the body shape instead of probing fields, so an
// unfamiliar-but-valid body degrades to "no identifier" rather than an
// error.
func (r *AddResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '{':
		var obj AddResult
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		r.Object = &obj
	case '[':
		var list []AddResult
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		r.List = list
	default:
		// Scalar or null body: nothing to extract from.
	}
	return nil
}

// MemoryID extracts the server-issued identifier from whichever response
// shape arrived: a direct id field, the first element of a nested results
// list, or the first element of a bare array. A missing identifier is
// reported as absence, never as an error.
func (r *AddResponse) MemoryID() (string, bool) {
	switch {
	case r.Object != nil:
		if r.Object.ID != "" {
			return r.Object.ID, true
		}
		if len(r.Object.Results) > 0 && r.Object.Results[0].ID != "" {
			return r.Object.Results[0].ID, true
		}
	case len(r.List) > 0:
		if r.List[0].ID != "" {
			return r.List[0].ID, true
		}
	}
	return "", false
}

// SearchResponse wraps search results. Tolerates both the wrapped
// `{"results": [...]}` form and the bare-array form of earlier versions.
type SearchResponse struct {
	Results []Memory
}

func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(data, &r.Results)
	}
	var wrapped struct {
		Results []Memory `json:"results"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	r.Results = wrapped.Results
	return nil
}
