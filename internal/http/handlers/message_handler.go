// Message query HTTP handler.
//
// This file exposes the read side of the store:
//   - GET /messages  (filtered, paginated listing)
//
// Query parameters:
//   - limit:  page size, default 50, valid range [1, 100]
//   - offset: rows to skip, default 0, must be >= 0
//   - from:   exact sender MSISDN match
//   - since:  inclusive lower bound on ts, RFC 3339
//   - q:      case-insensitive substring match on text
//
// Out-of-range or malformed parameters are rejected with 400 rather than
// silently clamped, so callers notice broken pagination loops immediately.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-message-ingest/internal/domain"
	"github.com/tbourn/go-message-ingest/internal/repo"
	"github.com/tbourn/go-message-ingest/internal/services"
	"github.com/tbourn/go-message-ingest/internal/utils"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
	maxListOffset    = 1 << 30
)

// ListMessagesResponse is the page envelope for GET /messages. Total counts
// every row matching the filter, ignoring limit and offset.
type ListMessagesResponse struct {
	Data   []domain.Message `json:"data"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// ListMessages returns one page of stored messages ordered by
// (ts ASC, message_id ASC).
func (h *Handlers) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	limit, err := utils.ParseBoundedInt(c.Query("limit"), defaultListLimit, 1, maxListLimit)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "limit "+err.Error())
		return
	}
	offset, err := utils.ParseBoundedInt(c.Query("offset"), 0, 0, maxListOffset)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "offset "+err.Error())
		return
	}

	f := repo.MessageFilter{
		From: c.Query("from"),
		Q:    c.Query("q"),
	}
	if raw := c.Query("since"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "since must be an ISO-8601 timestamp")
			return
		}
		utc := ts.UTC()
		f.Since = &utc
	}

	rows, total, err := h.svc.List(ctx, f, limit, offset)
	if err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			fail(c, http.StatusServiceUnavailable, ErrCodeStorageUnavailable, "storage unavailable")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "listing failed")
		return
	}
	if rows == nil {
		// data must serialize as [] on an empty page, never null.
		rows = []domain.Message{}
	}

	ok(c, http.StatusOK, ListMessagesResponse{
		Data:   rows,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}
