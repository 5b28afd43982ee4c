// Stats HTTP handler.
//
// Exposes GET /stats, a whole-store aggregate view: total messages, distinct
// sender count, the top senders by volume, and the first/last message
// timestamps. The repo result serializes directly; timestamps are RFC 3339
// and null while the store is empty.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-message-ingest/internal/services"
)

// GetStats returns aggregate statistics over all stored messages.
func (h *Handlers) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	res, err := h.svc.Stats(ctx)
	if err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			fail(c, http.StatusServiceUnavailable, ErrCodeStorageUnavailable, "storage unavailable")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeStatsFailed, "stats failed")
		return
	}

	ok(c, http.StatusOK, res)
}
