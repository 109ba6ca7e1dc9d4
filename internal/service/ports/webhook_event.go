package ports

import (
	"context"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
)

type WebhookEventRepo interface {
	// Record stores a delivery. It returns false when an event with the same
	// (provider, provider_event_id) was already recorded.
	Record(ctx context.Context, ev *domain.WebhookEvent) (bool, error)
	// GetByProviderEventID loads a recorded delivery so a redelivery can tell
	// whether the earlier attempt ever finished.
	GetByProviderEventID(ctx context.Context, provider, providerEventID string) (*domain.WebhookEvent, error)
	// MarkProcessed stamps the delivery as handled, with an optional warning
	// when the event was acknowledged without mutating the ticket.
	MarkProcessed(ctx context.Context, provider, providerEventID, warning string) error
	ListUnreported(ctx context.Context) ([]*domain.WebhookEvent, error)
	MarkReported(ctx context.Context, ids []int64) error
}
