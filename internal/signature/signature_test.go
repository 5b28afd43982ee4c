package signature

import (
	"strings"
	"testing"
)

func TestVerify_ValidSignature(t *testing.T) {
	body := []byte(`{"message_id":"m1","from":"+10000000001","to":"+10000000002","ts":"2025-01-15T10:00:00Z"}`)
	sig := Compute("topsecret", body)

	if !Verify("topsecret", body, sig) {
		t.Fatalf("expected valid signature to verify")
	}
}

func TestVerify_ExactBytesMatter(t *testing.T) {
	// Same JSON value, different whitespace: the digest must differ because
	// verification operates on raw wire bytes.
	compact := []byte(`{"a":1}`)
	spaced := []byte(`{ "a": 1 }`)
	sig := Compute("k", compact)

	if Verify("k", spaced, sig) {
		t.Fatalf("signature over different bytes must not verify")
	}
}

func TestVerify_Rejections(t *testing.T) {
	body := []byte(`payload`)
	good := Compute("k", body)

	cases := []struct {
		name   string
		secret string
		sig    string
	}{
		{"empty signature", "k", ""},
		{"non-hex signature", "k", "zzzz"},
		{"odd-length hex", "k", good[:len(good)-1]},
		{"truncated digest", "k", good[:32]},
		{"wrong digest", "k", strings.Repeat("ab", 32)},
		{"uppercase hex", "k", strings.ToUpper(good)},
		{"wrong secret", "other", good},
		{"empty secret", "", good},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if Verify(tc.secret, body, tc.sig) {
				t.Fatalf("expected rejection")
			}
		})
	}
}

func TestCompute_IsLowercaseHex(t *testing.T) {
	sig := Compute("k", []byte("x"))
	if len(sig) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(sig))
	}
	if sig != strings.ToLower(sig) {
		t.Fatalf("digest must be lowercase hex: %s", sig)
	}
}
