package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/quinnbmay/mem0-webhook/internal/model"
)

// NormalizeAutomation maps a flexible automation payload (Zapier and
// friends) onto a memory request. Object payloads pick content from the
// first non-empty of content/message/text and fall back to a compact JSON
// rendering of the whole object; leftover top-level keys ride along as
// metadata. The function never fails.
func NormalizeAutomation(payload interface{}, defaultUserID string) model.MemoryRequest {
	req := model.MemoryRequest{
		UserID:      defaultUserID,
		Category:    "zapier",
		Client:      "zapier",
		ProjectType: "automation",
		Source:      "zapier_webhook",
	}

	obj, ok := payload.(map[string]interface{})
	if !ok {
		// Scalar or array body: store its rendering as-is.
		req.Content = stringify(payload)
		if req.Content == "" {
			req.Content = compactJSON(payload)
		}
		return req
	}

	if s, ok := firstNonEmpty(obj, "content", "message", "text"); ok {
		req.Content = s
	} else {
		req.Content = compactJSON(obj)
	}
	if s, ok := firstNonEmpty(obj, "user_id", "userId"); ok {
		req.UserID = s
	}
	if s, ok := firstNonEmpty(obj, "category"); ok {
		req.Category = s
	}

	meta := make(map[string]interface{})
	for k, v := range obj {
		switch k {
		case "content", "message", "text", "user_id", "userId", "category":
			continue
		}
		meta[k] = v
	}
	if len(meta) > 0 {
		req.Metadata = meta
	}
	return req
}

// NormalizeOpaque wraps an arbitrary payload into a memory request without
// interpreting it: the content is an indented JSON dump behind a fixed
// prefix and the raw payload is preserved under metadata. Never fails.
func NormalizeOpaque(payload interface{}, defaultUserID string) model.MemoryRequest {
	req := model.MemoryRequest{
		UserID:      defaultUserID,
		Category:    "generic_webhook",
		Client:      "generic",
		ProjectType: "webhook",
		Source:      "generic_webhook",
		Metadata:    map[string]interface{}{"raw_payload": payload},
	}
	if obj, ok := payload.(map[string]interface{}); ok {
		if s, ok := firstNonEmpty(obj, "user_id", "userId", "user", "email"); ok {
			req.UserID = s
		}
	}
	req.Content = "Webhook data received: " + indentedJSON(payload)
	return req
}

// firstNonEmpty returns the stringified value of the first listed key whose
// value renders to a non-empty string.
func firstNonEmpty(obj map[string]interface{}, keys ...string) (string, bool) {
	for _, k := range keys {
		v, present := obj[k]
		if !present {
			continue
		}
		if s := stringify(v); s != "" {
			return s, true
		}
	}
	return "", false
}

// stringify renders scalars plainly and composites as compact JSON, so a
// numeric user_id such as 42 arrives as "42" rather than being rejected.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return compactJSON(t)
	}
}

func compactJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func indentedJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
