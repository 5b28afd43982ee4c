// Handler wiring.
//
// This file declares the service contract the HTTP layer depends on and the
// Handlers aggregate the router binds endpoints to. Handlers are
// transport-thin: they validate and normalize inputs, delegate to the
// application service, and translate outcomes into the response envelope.
package handlers

import (
	"context"
	"strings"

	"github.com/tbourn/go-message-ingest/internal/domain"
	"github.com/tbourn/go-message-ingest/internal/repo"
)

// MessageService is the application-facing contract the handlers consume.
// Accepting an interface keeps handler tests free to substitute fakes.
type MessageService interface {
	// Ingest validates and persists one raw webhook payload. The duplicate
	// flag is true when the message id was already stored.
	Ingest(ctx context.Context, raw []byte) (*domain.Message, bool, error)
	// List returns one page of messages matching f plus the total match count.
	List(ctx context.Context, f repo.MessageFilter, limit, offset int) ([]domain.Message, int64, error)
	// Stats returns aggregate statistics over all stored messages.
	Stats(ctx context.Context) (*repo.StatsResult, error)
	// Ready reports whether the backing store is reachable and migrated.
	Ready(ctx context.Context) bool
}

// Handlers binds the HTTP endpoints to the message service and the shared
// webhook secret.
type Handlers struct {
	svc    MessageService
	secret string
}

// New constructs a Handlers instance bound to the given service and secret.
// A missing secret is allowed at construction time; the webhook and readiness
// endpoints report the configuration fault per request instead. The secret is
// trimmed so a whitespace-only value counts as unconfigured, matching
// config.HasWebhookSecret.
func New(svc MessageService, secret string) *Handlers {
	return &Handlers{svc: svc, secret: strings.TrimSpace(secret)}
}
