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

const ticketColumns = `id, status, owner_user_id, price_cents, currency,
		platform, evidence_text, evidence_at, evidence_url, asset_url,
		created_at, updated_at`

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	query := `INSERT INTO tickets (id, status, owner_user_id, price_cents, currency,
				platform, evidence_text, evidence_at, evidence_url, asset_url,
				created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.Status, t.OwnerUserID, nullInt64(t.PriceCents), t.Currency,
		t.Platform, t.EvidenceText, t.EvidenceAt, nullString(t.EvidenceURL), nullString(t.AssetURL),
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return t, nil
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerUserID string) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE owner_user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

// UpdateStatus commits a transition only when the stored status is a legal
// source for the target. The WHERE clause is derived from the domain
// transition table, so an approve raced by a webhook (or a redelivered paid
// event) resolves against the stored state, not a stale snapshot.
func (r *TicketRepository) UpdateStatus(ctx context.Context, id string, to domain.TicketStatus) (*domain.Ticket, error) {
	sources := domain.TransitionSources(to)
	if len(sources) == 0 {
		return nil, &domain.TransitionError{From: to, To: to}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE tickets
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)
			  RETURNING ` + ticketColumns

	t, err := scanTicket(tx.QueryRowContext(ctx, query, id, to, pq.Array(sources)))
	if err == nil {
		return t, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update ticket status: %w", err)
	}

	// Nothing updated: not found, already in the target state, or an
	// illegal edge. Read the row to report which.
	current, err := scanTicket(tx.QueryRowContext(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("check ticket status: %w", err)
	}
	if current.Status == to {
		return current, tx.Commit()
	}

	return nil, &domain.TransitionError{From: current.Status, To: to}
}

func (r *TicketRepository) UpdatePricing(ctx context.Context, id string, priceCents int64, currency string) (*domain.Ticket, error) {
	// Pricing stays mutable only while the ticket is open.
	openStatuses := []domain.TicketStatus{domain.TicketStatusPending, domain.TicketStatusApproved}

	query := `UPDATE tickets
			  SET price_cents = $2, currency = $3, updated_at = now()
			  WHERE id = $1 AND status = ANY($4)
			  RETURNING ` + ticketColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, priceCents, currency, pq.Array(openStatuses))
	if err != nil {
		return nil, fmt.Errorf("update ticket pricing: %w", err)
	}

	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("%w: cannot price a closed ticket", domain.ErrValidation)
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return t, nil
}

func (r *TicketRepository) Stats(ctx context.Context) (*domain.TicketStats, error) {
	stats := &domain.TicketStats{ByStatus: make(map[domain.TicketStatus]int64)}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT status, COUNT(*) FROM tickets GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count tickets by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.TicketStatus
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		stats.ByStatus[status] = count
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT COALESCE(SUM(price_cents), 0) FROM tickets WHERE status = $1`,
		domain.TicketStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("sum paid tickets: %w", err)
	}
	if err = row.Scan(&stats.RevenueCents); err != nil {
		return nil, fmt.Errorf("scan revenue: %w", err)
	}

	curRows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT DISTINCT currency FROM tickets WHERE status = $1`,
		domain.TicketStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("distinct paid currencies: %w", err)
	}
	defer curRows.Close()

	for curRows.Next() {
		var c string
		if err = curRows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		stats.Currencies = append(stats.Currencies, c)
	}

	return stats, curRows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var t domain.Ticket
	var priceCents sql.NullInt64
	var evidenceURL, assetURL sql.NullString

	err := row.Scan(
		&t.ID, &t.Status, &t.OwnerUserID, &priceCents, &t.Currency,
		&t.Platform, &t.EvidenceText, &t.EvidenceAt, &evidenceURL, &assetURL,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if priceCents.Valid {
		v := priceCents.Int64
		t.PriceCents = &v
	}
	if evidenceURL.Valid {
		t.EvidenceURL = &evidenceURL.String
	}
	if assetURL.Valid {
		t.AssetURL = &assetURL.String
	}

	return &t, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
