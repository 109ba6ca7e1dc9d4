package domain

import "time"

// Reconciliation warnings recorded when a verified event is acknowledged
// without mutating the ticket.
const (
	WarningMissingTicketID    = "missing_ticket_id"
	WarningTicketNotFound     = "ticket_not_found"
	WarningPaymentMismatch    = "payment_mismatch"
	WarningTransitionRejected = "transition_rejected"
)

// ReconcileResult is what the webhook endpoint answers with. Verified events
// are always acknowledged; Warning marks deliveries that need manual
// reconciliation.
type ReconcileResult struct {
	Ok       bool
	TicketID string
	Status   TicketStatus
	Already  string
	Warning  string
	Ignored  string
}

// WebhookEvent is the persisted record of a provider webhook delivery.
// The (provider, provider_event_id) pair is unique, which is what makes a
// redelivered event a recorded no-op instead of a second transition attempt.
type WebhookEvent struct {
	ID              int64
	Provider        string
	ProviderEventID string
	EventType       string
	TicketID        string
	Warning         string
	ProcessedAt     *time.Time
	ReportedAt      *time.Time
	CreatedAt       time.Time
}
