package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition_AllowedEdges(t *testing.T) {
	assert.True(t, CanTransition(TicketStatusPending, TicketStatusApproved))
	assert.True(t, CanTransition(TicketStatusPending, TicketStatusRejected))
	assert.True(t, CanTransition(TicketStatusApproved, TicketStatusPaid))
	assert.True(t, CanTransition(TicketStatusApproved, TicketStatusRejected))
}

func TestCanTransition_NoSelfLoops(t *testing.T) {
	for _, status := range AllStatuses {
		assert.False(t, CanTransition(status, status), "self loop allowed for %s", status)
	}
}

func TestCanTransition_TerminalStatuses(t *testing.T) {
	for _, from := range []TicketStatus{TicketStatusPaid, TicketStatusRejected} {
		for _, to := range AllStatuses {
			assert.False(t, CanTransition(from, to), "%s -> %s should be illegal", from, to)
		}
	}
}

func TestCanTransition_PendingCannotGoPaid(t *testing.T) {
	assert.False(t, CanTransition(TicketStatusPending, TicketStatusPaid))
}

func TestTransition_ReturnsCopy(t *testing.T) {
	ticket := &Ticket{ID: "t1", Status: TicketStatusPending}

	next, err := Transition(ticket, TicketStatusApproved)

	require.NoError(t, err)
	assert.Equal(t, TicketStatusApproved, next.Status)
	assert.Equal(t, TicketStatusPending, ticket.Status, "argument must not be mutated")
}

func TestTransition_IllegalEdgeCarriesEndpoints(t *testing.T) {
	ticket := &Ticket{ID: "t1", Status: TicketStatusRejected}

	_, err := Transition(ticket, TicketStatusPaid)

	require.Error(t, err)
	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, TicketStatusRejected, terr.From)
	assert.Equal(t, TicketStatusPaid, terr.To)
}

func TestTransitionSources(t *testing.T) {
	assert.ElementsMatch(t,
		[]TicketStatus{TicketStatusApproved},
		TransitionSources(TicketStatusPaid),
	)
	assert.ElementsMatch(t,
		[]TicketStatus{TicketStatusPending, TicketStatusApproved},
		TransitionSources(TicketStatusRejected),
	)
	assert.ElementsMatch(t,
		[]TicketStatus{TicketStatusPending},
		TransitionSources(TicketStatusApproved),
	)
	assert.Empty(t, TransitionSources(TicketStatusPending))
}

func TestMarkPaid(t *testing.T) {
	approved := &Ticket{ID: "t1", Status: TicketStatusApproved}

	paid, err := MarkPaid(approved)
	require.NoError(t, err)
	assert.Equal(t, TicketStatusPaid, paid.Status)

	_, err = MarkPaid(&Ticket{ID: "t2", Status: TicketStatusPending})
	require.Error(t, err)
}

func TestMarkPaidIdempotent_AlreadyPaid(t *testing.T) {
	paid := &Ticket{ID: "t1", Status: TicketStatusPaid}

	first, err := MarkPaidIdempotent(paid)
	require.NoError(t, err)

	second, err := MarkPaidIdempotent(first)
	require.NoError(t, err)

	assert.Equal(t, TicketStatusPaid, second.Status)
	assert.Same(t, first, second, "already-paid must be a no-op")
}

func TestMarkPaidIdempotent_RejectedStaysRejected(t *testing.T) {
	rejected := &Ticket{ID: "t1", Status: TicketStatusRejected}

	_, err := MarkPaidIdempotent(rejected)

	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, TicketStatusRejected, terr.From)
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "USD", NormalizeCurrency(""))
	assert.Equal(t, "USD", NormalizeCurrency("  "))
	assert.Equal(t, "USD", NormalizeCurrency("usd"))
	assert.Equal(t, "EUR", NormalizeCurrency(" eur "))
	assert.Equal(t, "GBP", NormalizeCurrency("GBP"))
}

func TestTicket_ZeroPriceIsNotUnpriced(t *testing.T) {
	zero := int64(0)
	ticket := &Ticket{
		ID:         "t1",
		Status:     TicketStatusApproved,
		PriceCents: &zero,
		CreatedAt:  time.Now(),
	}

	// A nil price means "not yet priced"; an explicit zero is priced but
	// fails the checkout positivity check.
	require.NotNil(t, ticket.PriceCents)
	_, err := CreateCheckoutForTicket(ticket)
	assert.ErrorIs(t, err, ErrCheckoutInvalidPrice)
}
