package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/service/ports"
)

const providerStripe = "stripe"

type ReconcileService struct {
	verifier   ports.WebhookVerifier
	ticketRepo ports.TicketRepo
	eventRepo  ports.WebhookEventRepo
	userRepo   ports.UserRepo
	notifier   ports.TicketNotifier
	logger     logger.Logger
}

func NewReconcileService(
	verifier ports.WebhookVerifier,
	ticketRepo ports.TicketRepo,
	eventRepo ports.WebhookEventRepo,
	userRepo ports.UserRepo,
	notifier ports.TicketNotifier,
	logger logger.Logger,
) *ReconcileService {
	return &ReconcileService{
		verifier:   verifier,
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// HandleEvent applies the webhook reconciliation policy: fail open on the
// transport, fail closed on the state. Only a bad signature or a storage
// failure returns an error; every domain-level problem is acknowledged with
// a recorded warning so the provider stops redelivering.
func (s *ReconcileService) HandleEvent(ctx context.Context, payload []byte, signature string) (*domain.ReconcileResult, error) {
	event, err := s.verifier.VerifyEvent(payload, signature)
	if err != nil {
		return nil, fmt.Errorf("verify webhook event: %w", err)
	}

	if event.Type != domain.PaymentEventCheckoutCompleted {
		return &domain.ReconcileResult{Ok: true, Ignored: event.Type}, nil
	}

	created, err := s.eventRepo.Record(ctx, &domain.WebhookEvent{
		Provider:        providerStripe,
		ProviderEventID: event.ID,
		EventType:       event.Type,
		TicketID:        event.TicketID,
	})
	if err != nil {
		return nil, fmt.Errorf("record webhook event: %w", err)
	}
	if !created {
		prior, err := s.eventRepo.GetByProviderEventID(ctx, providerStripe, event.ID)
		if err != nil {
			return nil, fmt.Errorf("get webhook event: %w", err)
		}
		if prior.ProcessedAt != nil && prior.Warning != "" {
			// Redelivery of an event already acknowledged with a warning.
			return &domain.ReconcileResult{Ok: true, TicketID: prior.TicketID, Already: "processed", Warning: prior.Warning}, nil
		}
		// The earlier delivery either paid the ticket or died before
		// finishing. Fall through and re-run the flow: it is idempotent, and
		// a ticket that is already paid answers with already "paid".
	}

	if event.TicketID == "" {
		s.logger.Error("webhook event has no ticket id",
			logger.String("event_id", event.ID),
			logger.String("session_id", event.SessionID),
		)
		return s.warn(ctx, event, domain.WarningMissingTicketID)
	}

	ticket, err := s.ticketRepo.GetByID(ctx, event.TicketID)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			s.logger.Error("webhook ticket not found",
				logger.String("ticket_id", event.TicketID),
				logger.String("event_id", event.ID),
			)
			return s.warn(ctx, event, domain.WarningTicketNotFound)
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	if err := domain.VerifyPaymentMatch(ticket, event.AmountCents, event.Currency); err != nil {
		s.logger.Error("webhook payment mismatch",
			logger.String("ticket_id", ticket.ID),
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
			logger.Int64("paid_amount_cents", event.AmountCents),
			logger.Any("expected_amount_cents", ticket.PriceCents),
			logger.String("paid_currency", event.Currency),
			logger.String("expected_currency", ticket.Currency),
		)
		go s.notifyMismatch(context.WithoutCancel(ctx), ticket, event.AmountCents, event.Currency)
		return s.warn(ctx, event, domain.WarningPaymentMismatch)
	}

	if ticket.Status == domain.TicketStatusPaid {
		if err := s.eventRepo.MarkProcessed(ctx, providerStripe, event.ID, ""); err != nil {
			s.logger.Error("failed to mark webhook event processed",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
		}
		return &domain.ReconcileResult{Ok: true, TicketID: ticket.ID, Already: "paid"}, nil
	}

	next, err := domain.MarkPaidIdempotent(ticket)
	if err != nil {
		// Ticket is not approved. Retries cannot fix this, so acknowledge.
		s.logger.Error("webhook cannot mark ticket paid",
			logger.String("ticket_id", ticket.ID),
			logger.String("status", string(ticket.Status)),
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return s.warn(ctx, event, domain.WarningTransitionRejected)
	}

	updated, err := s.ticketRepo.UpdateStatus(ctx, ticket.ID, next.Status)
	if err != nil {
		var terr *domain.TransitionError
		if errors.As(err, &terr) || errors.Is(err, domain.ErrTicketNotFound) {
			// Lost a race with a concurrent transition; the stored state won.
			s.logger.Error("webhook paid transition rejected at persistence",
				logger.String("ticket_id", ticket.ID),
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
			return s.warn(ctx, event, domain.WarningTransitionRejected)
		}
		return nil, fmt.Errorf("update ticket status: %w", err)
	}

	if err := s.eventRepo.MarkProcessed(ctx, providerStripe, event.ID, ""); err != nil {
		s.logger.Error("failed to mark webhook event processed",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("ticket paid",
		logger.String("ticket_id", updated.ID),
		logger.String("event_id", event.ID),
		logger.Int64("amount_cents", event.AmountCents),
		logger.String("currency", event.Currency),
	)

	go s.notifyPaid(context.WithoutCancel(ctx), updated)

	return &domain.ReconcileResult{Ok: true, TicketID: updated.ID, Status: updated.Status}, nil
}

// ReportUnreported surfaces webhook events that were acknowledged with a
// warning and have not been reported yet. The scheduler calls it
// periodically; operators follow up by hand.
func (s *ReconcileService) ReportUnreported(ctx context.Context) ([]*domain.WebhookEvent, error) {
	events, err := s.eventRepo.ListUnreported(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unreported events: %w", err)
	}
	if len(events) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.ID)
	}
	if err := s.eventRepo.MarkReported(ctx, ids); err != nil {
		return nil, fmt.Errorf("mark events reported: %w", err)
	}

	return events, nil
}

func (s *ReconcileService) warn(ctx context.Context, event *domain.PaymentEvent, warning string) (*domain.ReconcileResult, error) {
	if err := s.eventRepo.MarkProcessed(ctx, providerStripe, event.ID, warning); err != nil {
		s.logger.Error("failed to record webhook warning",
			logger.String("event_id", event.ID),
			logger.String("warning", warning),
			logger.String("error", err.Error()),
		)
	}
	return &domain.ReconcileResult{Ok: true, TicketID: event.TicketID, Warning: warning}, nil
}

func (s *ReconcileService) notifyPaid(ctx context.Context, ticket *domain.Ticket) {
	user, err := s.userRepo.GetByID(ctx, ticket.OwnerUserID)
	if err != nil {
		s.logger.Error("failed to get owner for paid notification",
			logger.String("ticket_id", ticket.ID),
			logger.String("owner_user_id", ticket.OwnerUserID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifier.NotifyTicketPaid(ctx, user, ticket)
}

func (s *ReconcileService) notifyMismatch(ctx context.Context, ticket *domain.Ticket, paidAmountCents int64, paidCurrency string) {
	user, err := s.userRepo.GetByID(ctx, ticket.OwnerUserID)
	if err != nil {
		s.logger.Error("failed to get owner for mismatch notification",
			logger.String("ticket_id", ticket.ID),
			logger.String("owner_user_id", ticket.OwnerUserID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifier.NotifyPaymentMismatch(ctx, user, ticket, paidAmountCents, paidCurrency)
}
