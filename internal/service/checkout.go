package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/service/ports"
)

type CheckoutService struct {
	ticketRepo ports.TicketReader
	provider   ports.CheckoutProvider
	logger     logger.Logger
}

func NewCheckoutService(
	ticketRepo ports.TicketReader,
	provider ports.CheckoutProvider,
	logger logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		ticketRepo: ticketRepo,
		provider:   provider,
		logger:     logger,
	}
}

// Start builds the checkout spec for a ticket and opens a session at the
// provider. Precondition failures (wrong status, missing or invalid price)
// surface to the caller unchanged and are never retried.
func (s *CheckoutService) Start(ctx context.Context, ticketID string) (*domain.CheckoutSession, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	spec, err := domain.CreateCheckoutForTicket(ticket)
	if err != nil {
		return nil, err
	}

	session, err := s.provider.CreateSession(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	s.logger.Info("checkout session created",
		logger.String("ticket_id", ticket.ID),
		logger.String("session_id", session.ID),
		logger.Int64("amount_cents", spec.AmountCents),
		logger.String("currency", spec.Currency),
	)

	return session, nil
}
