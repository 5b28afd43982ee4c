// Package domain defines the persistence model for ingested webhook
// messages. The types here are mapped with GORM and form the core data
// layer of the service.
package domain

import "time"

// Message represents a single webhook-delivered message. Rows are immutable
// once created: the caller-supplied MessageID is the idempotency key, and a
// redelivery with the same id never overwrites or duplicates the first row.
//
// Fields:
//   - MessageID: caller-supplied globally unique id; primary key and the
//     uniqueness constraint that backs insert-if-absent semantics.
//   - From / To: MSISDN-style sender and recipient identifiers. Stored in
//     from_msisdn / to_msisdn columns ("from"/"to" are SQL keywords).
//   - TS: caller-asserted send time (ISO-8601 UTC on the wire); used for
//     ordering and filtering, not required to be unique or monotonic.
//   - Text: optional message body (nullable).
//   - CreatedAt: server-assigned insertion time, for audit only.
type Message struct {
	MessageID string    `json:"message_id" gorm:"column:message_id;type:varchar(255);primaryKey"`
	From      string    `json:"from"       gorm:"column:from_msisdn;type:varchar(32);not null;index:idx_msg_sender"`
	To        string    `json:"to"         gorm:"column:to_msisdn;type:varchar(32);not null"`
	TS        time.Time `json:"ts"         gorm:"column:ts;not null;index:idx_msg_ts"`
	Text      *string   `json:"text"       gorm:"column:text;type:text"`
	CreatedAt time.Time `json:"-"          gorm:"column:created_at;not null"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }
