package ports

import (
	"context"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
)

type TicketWriter interface {
	Create(ctx context.Context, t *domain.Ticket) error
}

type TicketReader interface {
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]*domain.Ticket, error)
}

// TicketUpdater mutates ticket state. UpdateStatus must re-validate the
// transition at persistence time: the implementation only commits when the
// stored status is a legal source for the target, so a stale in-memory check
// can never double-apply a transition.
type TicketUpdater interface {
	UpdateStatus(ctx context.Context, id string, to domain.TicketStatus) (*domain.Ticket, error)
	UpdatePricing(ctx context.Context, id string, priceCents int64, currency string) (*domain.Ticket, error)
}

type TicketStatsReader interface {
	Stats(ctx context.Context) (*domain.TicketStats, error)
}

type TicketRepo interface {
	TicketWriter
	TicketReader
	TicketUpdater
	TicketStatsReader
}
