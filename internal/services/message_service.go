// Package services – MessageService
//
// This file implements MessageService, the application-level component that
// owns message ingestion and querying. It parses and validates inbound
// webhook payloads, persists them idempotently through the repo layer, and
// serves filtered/paginated listings and aggregate statistics.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// include the message id, duplicate flag, and pagination parameters where
// applicable.

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/tbourn/go-message-ingest/internal/domain"
	"github.com/tbourn/go-message-ingest/internal/repo"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// defaultMaxTextRunes caps the optional text body length.
const defaultMaxTextRunes = 4096

// InboundMessage is the wire shape of a webhook payload. Field presence and
// format are validated by Ingest before anything touches the store.
type InboundMessage struct {
	MessageID string  `json:"message_id"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	TS        string  `json:"ts"`
	Text      *string `json:"text"`
}

// MessageService coordinates message persistence and retrieval.
type MessageService struct {
	DB *gorm.DB

	// MaxTextRunes overrides the text length cap; <= 0 means the default.
	MaxTextRunes int
}

// Ingest parses raw payload bytes, validates the message fields, and
// persists the row if absent.
//
// Returns the persisted (or previously persisted) message and a duplicate
// flag. A false flag means this call created the row. Errors wrap either
// ErrValidation (malformed payload, nothing written) or
// ErrStorageUnavailable (store fault, retriable).
//
// Signature verification is not this method's concern: the handler verifies
// the raw bytes before calling Ingest, because only the transport layer has
// access to the unparsed body and header.
func (s *MessageService) Ingest(ctx context.Context, raw []byte) (*domain.Message, bool, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "Ingest")
	defer span.End()

	var in InboundMessage
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, false, fmt.Errorf("%w: body is not valid JSON", ErrValidation)
	}

	m, err := s.validate(in)
	if err != nil {
		return nil, false, err
	}
	span.SetAttributes(attribute.String("message.id", m.MessageID))

	switch err := repo.InsertMessage(ctx, s.DB, m); {
	case err == nil:
		span.SetAttributes(attribute.Bool("message.duplicate", false))
		return m, false, nil
	case errors.Is(err, repo.ErrDuplicateMessage):
		span.SetAttributes(attribute.Bool("message.duplicate", true))
		return m, true, nil
	default:
		return nil, false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
}

// List returns one page of messages matching f and the total matching count.
func (s *MessageService) List(ctx context.Context, f repo.MessageFilter, limit, offset int) ([]domain.Message, int64, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.Int("limit", limit),
			attribute.Int("offset", offset),
		),
	)
	defer span.End()

	rows, total, err := repo.ListMessages(ctx, s.DB, f, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return rows, total, nil
}

// Stats returns aggregate statistics over all stored messages.
func (s *MessageService) Stats(ctx context.Context) (*repo.StatsResult, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "Stats")
	defer span.End()

	res, err := repo.Stats(ctx, s.DB)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return res, nil
}

// Ready reports whether the backing store is reachable and migrated.
func (s *MessageService) Ready(ctx context.Context) bool {
	return repo.Ready(ctx, s.DB)
}

// validate checks field presence and formats and builds the domain row.
func (s *MessageService) validate(in InboundMessage) (*domain.Message, error) {
	if strings.TrimSpace(in.MessageID) == "" {
		return nil, fmt.Errorf("%w: message_id is required", ErrValidation)
	}
	if err := validateMSISDN(in.From); err != nil {
		return nil, fmt.Errorf("%w: from %v", ErrValidation, err)
	}
	if err := validateMSISDN(in.To); err != nil {
		return nil, fmt.Errorf("%w: to %v", ErrValidation, err)
	}
	if strings.TrimSpace(in.TS) == "" {
		return nil, fmt.Errorf("%w: ts is required", ErrValidation)
	}
	ts, err := time.Parse(time.RFC3339, in.TS)
	if err != nil {
		return nil, fmt.Errorf("%w: ts must be an ISO-8601 UTC timestamp", ErrValidation)
	}

	maxText := s.MaxTextRunes
	if maxText <= 0 {
		maxText = defaultMaxTextRunes
	}
	if in.Text != nil && utf8.RuneCountInString(*in.Text) > maxText {
		return nil, fmt.Errorf("%w: text exceeds %d characters", ErrValidation, maxText)
	}

	return &domain.Message{
		MessageID: in.MessageID,
		From:      in.From,
		To:        in.To,
		TS:        ts.UTC(),
		Text:      in.Text,
	}, nil
}

// validateMSISDN enforces the E.164-like shape: "+" followed by digits only.
func validateMSISDN(v string) error {
	if v == "" {
		return errors.New("is required")
	}
	if !strings.HasPrefix(v, "+") {
		return errors.New("must start with +")
	}
	digits := v[1:]
	if digits == "" {
		return errors.New("must contain digits after +")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return errors.New("must contain only digits after +")
		}
	}
	return nil
}
