package domain

import (
	"strings"
	"time"
)

type TicketStatus string

const (
	TicketStatusPending  TicketStatus = "pending"
	TicketStatusApproved TicketStatus = "approved"
	TicketStatusPaid     TicketStatus = "paid"
	TicketStatusRejected TicketStatus = "rejected"
)

const DefaultCurrency = "USD"

// AllStatuses is the complete, closed vocabulary of ticket statuses.
var AllStatuses = []TicketStatus{
	TicketStatusPending,
	TicketStatusApproved,
	TicketStatusPaid,
	TicketStatusRejected,
}

type Ticket struct {
	ID          string       `json:"id"`
	Status      TicketStatus `json:"status"`
	OwnerUserID string       `json:"owner_user_id"`

	PriceCents *int64 `json:"price_cents"` // nil = not yet priced
	Currency   string `json:"currency"`

	Platform     string    `json:"platform"`
	EvidenceText string    `json:"evidence_text"`
	EvidenceAt   time.Time `json:"evidence_at"`
	EvidenceURL  *string   `json:"evidence_url"`
	AssetURL     *string   `json:"asset_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EvidenceInput struct {
	Platform    string // "whatsapp", "slack", ...
	Text        string
	EvidenceAt  time.Time
	EvidenceURL string
	AssetURL    string
}

type PricingInput struct {
	PriceCents *int64
	Currency   string
}

type CreateTicketInput struct {
	OwnerUserID string
	Evidence    EvidenceInput
	Pricing     *PricingInput
}

// NormalizeCurrency trims and uppercases a currency code, defaulting to USD
// when empty. Tickets always store the uppercase form; provider calls use
// the lowercase form.
func NormalizeCurrency(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return DefaultCurrency
	}
	return c
}

type TicketStats struct {
	ByStatus     map[TicketStatus]int64
	RevenueCents int64
	Currencies   []string
}

// DashboardStats is TicketStats with the revenue currency label resolved
// for display.
type DashboardStats struct {
	ByStatus        map[TicketStatus]int64 `json:"by_status"`
	RevenueCents    int64                  `json:"revenue_cents"`
	RevenueCurrency string                 `json:"revenue_currency"`
}
