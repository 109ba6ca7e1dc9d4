package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/service/ports"
)

type TicketService struct {
	ticketRepo ports.TicketRepo
	userRepo   ports.UserRepo
	notifier   ports.TicketNotifier
	logger     logger.Logger
}

func NewTicketService(
	ticketRepo ports.TicketRepo,
	userRepo ports.UserRepo,
	notifier ports.TicketNotifier,
	logger logger.Logger,
) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// CreateFromEvidence validates the captured request and persists the initial
// ticket. Input cannot set the status: every ticket starts pending.
func (s *TicketService) CreateFromEvidence(ctx context.Context, input domain.CreateTicketInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.OwnerUserID) == "" {
		return nil, fmt.Errorf("%w: owner_user_id is required", domain.ErrValidation)
	}

	ev := input.Evidence
	if strings.TrimSpace(ev.Platform) == "" {
		return nil, fmt.Errorf("%w: evidence.platform is required", domain.ErrValidation)
	}
	if strings.TrimSpace(ev.Text) == "" {
		return nil, fmt.Errorf("%w: evidence.text is required", domain.ErrValidation)
	}
	if ev.EvidenceAt.IsZero() {
		return nil, fmt.Errorf("%w: evidence.evidence_at must be a valid timestamp", domain.ErrValidation)
	}

	currency := domain.DefaultCurrency
	var priceCents *int64
	if input.Pricing != nil {
		currency = domain.NormalizeCurrency(input.Pricing.Currency)
		if input.Pricing.PriceCents != nil {
			if *input.Pricing.PriceCents < 0 {
				return nil, fmt.Errorf("%w: pricing.price_cents must be a non-negative integer", domain.ErrValidation)
			}
			v := *input.Pricing.PriceCents
			priceCents = &v
		}
	}

	now := time.Now().UTC()
	ticket := &domain.Ticket{
		ID:           uuid.New().String(),
		Status:       domain.TicketStatusPending,
		OwnerUserID:  strings.TrimSpace(input.OwnerUserID),
		PriceCents:   priceCents,
		Currency:     currency,
		Platform:     strings.TrimSpace(ev.Platform),
		EvidenceText: strings.TrimSpace(ev.Text),
		EvidenceAt:   ev.EvidenceAt,
		EvidenceURL:  optionalString(ev.EvidenceURL),
		AssetURL:     optionalString(ev.AssetURL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	s.logger.Info("ticket created",
		logger.String("ticket_id", ticket.ID),
		logger.String("owner_user_id", ticket.OwnerUserID),
		logger.String("platform", ticket.Platform),
	)

	return ticket, nil
}

// Approve moves a pending ticket to approved. The state machine decides
// legality on the loaded snapshot and the repository re-checks the edge
// when it commits.
func (s *TicketService) Approve(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.transition(ctx, ticketID, domain.Approve)
}

func (s *TicketService) Reject(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.transition(ctx, ticketID, domain.Reject)
}

func (s *TicketService) transition(
	ctx context.Context,
	ticketID string,
	apply func(*domain.Ticket) (*domain.Ticket, error),
) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	next, err := apply(ticket)
	if err != nil {
		return nil, err
	}

	updated, err := s.ticketRepo.UpdateStatus(ctx, ticket.ID, next.Status)
	if err != nil {
		return nil, fmt.Errorf("update ticket status: %w", err)
	}

	s.logger.Info("ticket status changed",
		logger.String("ticket_id", updated.ID),
		logger.String("from", string(ticket.Status)),
		logger.String("to", string(updated.Status)),
	)

	go s.notify(context.WithoutCancel(ctx), updated)

	return updated, nil
}

// SetPrice attaches or replaces pricing on an open ticket. Terminal tickets
// keep the price they were closed with.
func (s *TicketService) SetPrice(ctx context.Context, ticketID string, priceCents int64, currency string) (*domain.Ticket, error) {
	if priceCents < 0 {
		return nil, fmt.Errorf("%w: price_cents must be a non-negative integer", domain.ErrValidation)
	}

	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if ticket.Status == domain.TicketStatusPaid || ticket.Status == domain.TicketStatusRejected {
		return nil, fmt.Errorf("%w: cannot price a %s ticket", domain.ErrValidation, ticket.Status)
	}

	updated, err := s.ticketRepo.UpdatePricing(ctx, ticket.ID, priceCents, domain.NormalizeCurrency(currency))
	if err != nil {
		return nil, fmt.Errorf("update ticket pricing: %w", err)
	}

	return updated, nil
}

func (s *TicketService) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.ticketRepo.GetByID(ctx, id)
}

func (s *TicketService) ListByOwner(ctx context.Context, ownerUserID string) ([]*domain.Ticket, error) {
	return s.ticketRepo.ListByOwner(ctx, ownerUserID)
}

func (s *TicketService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.ticketRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("ticket stats: %w", err)
	}

	return &domain.DashboardStats{
		ByStatus:        stats.ByStatus,
		RevenueCents:    stats.RevenueCents,
		RevenueCurrency: domain.ResolveRevenueCurrency(stats.Currencies),
	}, nil
}

func (s *TicketService) notify(ctx context.Context, ticket *domain.Ticket) {
	user, err := s.userRepo.GetByID(ctx, ticket.OwnerUserID)
	if err != nil {
		s.logger.Error("failed to get owner for notification",
			logger.String("ticket_id", ticket.ID),
			logger.String("owner_user_id", ticket.OwnerUserID),
			logger.String("error", err.Error()),
		)
		return
	}

	switch ticket.Status {
	case domain.TicketStatusApproved:
		s.notifier.NotifyTicketApproved(ctx, user, ticket)
	case domain.TicketStatusRejected:
		s.notifier.NotifyTicketRejected(ctx, user, ticket)
	case domain.TicketStatusPaid:
		s.notifier.NotifyTicketPaid(ctx, user, ticket)
	}
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
