package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Metadata keys attached to every checkout session. The webhook handler
// reads these back to link a provider event to its ticket, so the builder
// and the reconciler must agree on this schema exactly.
const (
	MetadataTicketID            = "ss_ticket_id"
	MetadataOwnerUserID         = "ss_owner_user_id"
	MetadataExpectedAmountCents = "ss_expected_amount_cents"
	MetadataCurrency            = "ss_currency"
	MetadataKind                = "ss_kind"

	KindTicketPayment = "ticket_payment"
)

// PaymentEventCheckoutCompleted is the only provider event type that moves
// a ticket to paid. Everything else is acknowledged and ignored.
const PaymentEventCheckoutCompleted = "checkout.session.completed"

// CheckoutSpec is the exact amount, currency and reconciliation metadata a
// checkout session must be created with.
type CheckoutSpec struct {
	TicketID          string
	AmountCents       int64
	Currency          string // lowercase, as the provider expects it
	ClientReferenceID string
	Metadata          map[string]string
}

// CheckoutSession is what the payment provider returns for a created
// checkout.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PaymentEvent is the narrow view of a verified provider webhook event the
// core consumes: event identity plus the four reconciliation facts.
type PaymentEvent struct {
	ID          string
	Type        string
	SessionID   string
	TicketID    string
	AmountCents int64
	Currency    string
}

// CreateCheckoutForTicket decides whether checkout may start for the ticket
// and, if so, emits the spec for the provider call. Each precondition fails
// with its own error so callers can show an accurate remediation message.
func CreateCheckoutForTicket(t *Ticket) (*CheckoutSpec, error) {
	if t.Status != TicketStatusApproved {
		return nil, ErrCheckoutWrongStatus
	}
	if t.PriceCents == nil {
		return nil, ErrCheckoutMissingPrice
	}
	if *t.PriceCents <= 0 {
		return nil, ErrCheckoutInvalidPrice
	}

	currency := NormalizeCurrency(t.Currency)

	return &CheckoutSpec{
		TicketID:          t.ID,
		AmountCents:       *t.PriceCents,
		Currency:          strings.ToLower(currency),
		ClientReferenceID: t.ID,
		Metadata: map[string]string{
			MetadataTicketID:            t.ID,
			MetadataOwnerUserID:         t.OwnerUserID,
			MetadataExpectedAmountCents: strconv.FormatInt(*t.PriceCents, 10),
			MetadataCurrency:            currency,
			MetadataKind:                KindTicketPayment,
		},
	}, nil
}

// VerifyPaymentMatch checks the provider's report of what was actually
// charged against the ticket's expectation. Mismatches are hard errors,
// never coerced.
func VerifyPaymentMatch(t *Ticket, paidAmountCents int64, paidCurrency string) error {
	if t.PriceCents == nil {
		return ErrMissingExpectedAmount
	}
	if paidAmountCents != *t.PriceCents {
		return fmt.Errorf("%w: expected %d, got %d", ErrAmountMismatch, *t.PriceCents, paidAmountCents)
	}
	if !strings.EqualFold(strings.TrimSpace(paidCurrency), NormalizeCurrency(t.Currency)) {
		return fmt.Errorf("%w: expected %s, got %s", ErrCurrencyMismatch, t.Currency, paidCurrency)
	}
	return nil
}

// ResolveRevenueCurrency picks the display currency for captured revenue.
func ResolveRevenueCurrency(distinct []string) string {
	switch len(distinct) {
	case 0:
		return DefaultCurrency
	case 1:
		return NormalizeCurrency(distinct[0])
	default:
		return "MIXED"
	}
}
