package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
)

type WebhookEventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWebhookEventRepo(db *dbpg.DB) *WebhookEventRepository {
	return &WebhookEventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Record inserts the delivery, deduplicating on (provider, provider_event_id).
// It reports false for a redelivered event.
func (r *WebhookEventRepository) Record(ctx context.Context, ev *domain.WebhookEvent) (bool, error) {
	query := `INSERT INTO webhook_events (provider, provider_event_id, event_type, ticket_id, created_at)
			  VALUES ($1, $2, $3, $4, now())
			  ON CONFLICT (provider, provider_event_id) DO NOTHING`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		ev.Provider, ev.ProviderEventID, ev.EventType, ev.TicketID,
	)
	if err != nil {
		return false, fmt.Errorf("insert webhook event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("webhook event rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *WebhookEventRepository) GetByProviderEventID(ctx context.Context, provider, providerEventID string) (*domain.WebhookEvent, error) {
	query := `SELECT id, provider, provider_event_id, event_type, ticket_id,
					 warning, processed_at, reported_at, created_at
			  FROM webhook_events
			  WHERE provider = $1 AND provider_event_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, provider, providerEventID)
	if err != nil {
		return nil, fmt.Errorf("get webhook event: %w", err)
	}

	var ev domain.WebhookEvent
	if err = row.Scan(
		&ev.ID, &ev.Provider, &ev.ProviderEventID, &ev.EventType, &ev.TicketID,
		&ev.Warning, &ev.ProcessedAt, &ev.ReportedAt, &ev.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWebhookEventNotFound
		}
		return nil, fmt.Errorf("scan webhook event: %w", err)
	}

	return &ev, nil
}

func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, provider, providerEventID, warning string) error {
	query := `UPDATE webhook_events
			  SET processed_at = now(), warning = $3
			  WHERE provider = $1 AND provider_event_id = $2`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, provider, providerEventID, warning)
	if err != nil {
		return fmt.Errorf("mark webhook event processed: %w", err)
	}

	return nil
}

// ListUnreported returns events acknowledged with a warning that nobody has
// been told about yet.
func (r *WebhookEventRepository) ListUnreported(ctx context.Context) ([]*domain.WebhookEvent, error) {
	query := `SELECT id, provider, provider_event_id, event_type, ticket_id,
					 warning, processed_at, reported_at, created_at
			  FROM webhook_events
			  WHERE warning <> '' AND reported_at IS NULL
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list unreported webhook events: %w", err)
	}
	defer rows.Close()

	var res []*domain.WebhookEvent
	for rows.Next() {
		var ev domain.WebhookEvent
		if err = rows.Scan(
			&ev.ID, &ev.Provider, &ev.ProviderEventID, &ev.EventType, &ev.TicketID,
			&ev.Warning, &ev.ProcessedAt, &ev.ReportedAt, &ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan webhook event: %w", err)
		}
		res = append(res, &ev)
	}

	return res, rows.Err()
}

func (r *WebhookEventRepository) MarkReported(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE webhook_events SET reported_at = now() WHERE id = ANY($1)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("mark webhook events reported: %w", err)
	}

	return nil
}
