package ports

import (
	"context"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
)

type TicketNotifier interface {
	NotifyTicketApproved(ctx context.Context, user *domain.User, ticket *domain.Ticket)
	NotifyTicketRejected(ctx context.Context, user *domain.User, ticket *domain.Ticket)
	NotifyTicketPaid(ctx context.Context, user *domain.User, ticket *domain.Ticket)
	NotifyPaymentMismatch(ctx context.Context, user *domain.User, ticket *domain.Ticket, paidAmountCents int64, paidCurrency string)
}
