// Package auth implements the shared-secret signature scheme for webhook
// payloads. Verification is opt-in per deployment; the ingest endpoints
// accept unsigned payloads.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader carries the payload signature on signed webhook requests.
const SignatureHeader = "X-Webhook-Signature"

// Sign computes the hex-encoded HMAC-SHA256 of body under secret.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches body under secret, using a
// constant-time comparison. An empty secret disables verification and
// accepts every payload.
func Verify(body []byte, signature, secret string) bool {
	if secret == "" {
		return true
	}
	want := Sign(body, secret)
	return hmac.Equal([]byte(signature), []byte(want))
}
