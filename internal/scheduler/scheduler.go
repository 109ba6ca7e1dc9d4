package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
)

type reconcileReporter interface {
	ReportUnreported(ctx context.Context) ([]*domain.WebhookEvent, error)
}

// Scheduler periodically surfaces webhook deliveries that were acknowledged
// with a reconciliation warning, so they do not sit unnoticed until someone
// reads the ticket.
type Scheduler struct {
	reconcileService reconcileReporter
	interval         time.Duration
	logger           logger.Logger
}

func New(
	reconcileService reconcileReporter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reconcileService: reconcileService,
		interval:         interval,
		logger:           logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	events, err := s.reconcileService.ReportUnreported(ctx)
	if err != nil {
		s.logger.Error("failed to report reconciliation warnings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, ev := range events {
		s.logger.Warn("webhook event needs manual reconciliation",
			logger.String("provider", ev.Provider),
			logger.String("event_id", ev.ProviderEventID),
			logger.String("ticket_id", ev.TicketID),
			logger.String("warning", ev.Warning),
		)
	}
}
