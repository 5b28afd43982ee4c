// Package signature implements keyed-hash verification for inbound webhook
// deliveries. The sender computes HMAC-SHA256 over the raw request body with
// the shared secret and sends the lowercase hex digest in the X-Signature
// header; Verify recomputes the digest and compares in constant time.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Compute returns the lowercase hex HMAC-SHA256 digest of body under secret.
func Compute(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether providedHex is the correct HMAC-SHA256 hex digest of
// body under secret.
//
// It must be called with the exact bytes received on the wire, before any
// JSON parsing: re-serializing a parsed body changes whitespace and key
// order and would silently break verification.
//
// Verify never returns an error; a missing header, a non-hex or uppercase
// digest, a length mismatch, or a digest mismatch all yield false. The hex
// strings are compared directly in constant time, so response timing does
// not leak how many leading characters matched, and only the canonical
// lowercase encoding is accepted.
func Verify(secret string, body []byte, providedHex string) bool {
	if secret == "" || providedHex == "" {
		return false
	}
	expected := Compute(secret, body)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(providedHex)) == 1
}
