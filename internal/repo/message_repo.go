// Package repo implements the data persistence layer for ingested messages,
// backed by GORM. This file provides repository functions for the Message
// model: insert-if-absent and filtered, paginated listing.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-message-ingest/internal/domain"
)

// ErrDuplicateMessage indicates that a row with the same message_id already
// exists. It is a benign outcome of idempotent delivery, not a storage fault.
var ErrDuplicateMessage = errors.New("duplicate message")

// MessageFilter narrows ListMessages results. Zero-valued fields are ignored;
// set fields combine with logical AND.
type MessageFilter struct {
	// From matches the sender MSISDN exactly.
	From string
	// Since is an inclusive lower bound on the caller-asserted send time (ts >= Since).
	Since *time.Time
	// Q is a case-insensitive substring match against the message text.
	Q string
}

// InsertMessage persists a new message row if no row with the same
// message_id exists.
//
// The uniqueness constraint on message_id is the atomicity guarantee: two
// concurrent inserts with the same id resolve inside the storage engine to
// exactly one created row, and the loser surfaces here as a unique-constraint
// violation which is mapped to ErrDuplicateMessage. Any other error is a real
// storage fault and propagates unchanged.
func InsertMessage(ctx context.Context, db *gorm.DB, m *domain.Message) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return ErrDuplicateMessage
		}
		return err
	}
	return nil
}

// ListMessages returns one page of messages matching f plus the total number
// of matching rows ignoring pagination.
//
// Rows are ordered (ts ASC, message_id ASC) so equal-timestamp rows have a
// stable sequence across repeated calls and pagination boundaries. Limit is
// clamped to [1,100] and offset to >= 0; callers validate upstream, the
// clamp here is defensive.
func ListMessages(ctx context.Context, db *gorm.DB, f MessageFilter, limit, offset int) ([]domain.Message, int64, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	// Count and Find mutate the statement, so build the WHERE chain twice.
	base := func() *gorm.DB {
		q := db.WithContext(ctx).Model(&domain.Message{})
		if f.From != "" {
			q = q.Where("from_msisdn = ?", f.From)
		}
		if f.Since != nil {
			q = q.Where("ts >= ?", f.Since.UTC())
		}
		if f.Q != "" {
			q = q.Where("LOWER(text) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(f.Q))+"%")
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Message
	err := base().
		Order("ts ASC, message_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// escapeLike neutralizes LIKE wildcards so Q is treated as a literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
