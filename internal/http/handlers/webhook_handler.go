// Webhook HTTP handler.
//
// This file exposes the ingestion endpoint:
//   - POST /webhook  (authenticate, validate, and persist one message)
//
// The handler owns the transport-level part of the ingestion pipeline: it
// reads the raw body bytes exactly as sent, verifies the X-Signature header
// against them, and only then hands the payload to the service. Parsing
// before verification would let unauthenticated input reach the JSON decoder.
//
// Outcome accounting: every call increments webhook_requests_total exactly
// once with one of created, duplicate, invalid_signature, or
// validation_error, and stashes the same outcome in the Gin context so the
// access log line carries it. Storage faults are surfaced as 503 without an
// outcome label; the request counter and latency histogram still record them.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-message-ingest/internal/http/middleware"
	"github.com/tbourn/go-message-ingest/internal/metrics"
	"github.com/tbourn/go-message-ingest/internal/services"
	"github.com/tbourn/go-message-ingest/internal/signature"
)

// signatureHeader carries the hex HMAC-SHA256 digest of the raw body.
const signatureHeader = "X-Signature"

// webhookAck is the fixed success body for both created and duplicate
// outcomes. Senders retry on anything but 200, so a replay must look exactly
// like the first delivery.
var webhookAck = gin.H{"status": "ok"}

// PostWebhook ingests one signed message.
//
// Pipeline:
//  1. Reject with 503 when no shared secret is configured (readiness reports
//     the same fault).
//  2. Read the raw body and verify X-Signature over those exact bytes;
//     mismatch → 401, nothing parsed, nothing stored.
//  3. Delegate to MessageService.Ingest: validation failure → 422, storage
//     fault → 503, otherwise 200 {"status":"ok"} whether the row was created
//     or already present.
func (h *Handlers) PostWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret == "" {
		fail(c, http.StatusServiceUnavailable, ErrCodeConfiguration, "webhook secret is not configured")
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unable to read request body")
		return
	}

	if !signature.Verify(h.secret, raw, c.GetHeader(signatureHeader)) {
		metrics.WebhookRequests.WithLabelValues(metrics.ResultInvalidSignature).Inc()
		middleware.SetWebhookOutcome(c, metrics.ResultInvalidSignature, "", false)
		fail(c, http.StatusUnauthorized, ErrCodeInvalidSignature, "invalid signature")
		return
	}

	m, dup, err := h.svc.Ingest(ctx, raw)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			metrics.WebhookRequests.WithLabelValues(metrics.ResultValidationError).Inc()
			middleware.SetWebhookOutcome(c, metrics.ResultValidationError, "", false)
			fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, validationMessage(err))
		case errors.Is(err, services.ErrStorageUnavailable):
			fail(c, http.StatusServiceUnavailable, ErrCodeStorageUnavailable, "storage unavailable")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "ingestion failed")
		}
		return
	}

	result := metrics.ResultCreated
	if dup {
		result = metrics.ResultDuplicate
	}
	metrics.WebhookRequests.WithLabelValues(result).Inc()
	middleware.SetWebhookOutcome(c, result, m.MessageID, dup)

	ok(c, http.StatusOK, webhookAck)
}

// validationMessage strips the sentinel prefix from a wrapped validation
// error so clients see only the field-level detail.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := services.ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
