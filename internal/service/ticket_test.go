package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTicketService(t *testing.T) (*TicketService, *mocks.MockTicketRepo, *mocks.MockUserRepo, *mocks.MockTicketNotifier) {
	t.Helper()
	ticketRepo := mocks.NewMockTicketRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockTicketNotifier(t)
	svc := NewTicketService(ticketRepo, userRepo, notifier, newTestLogger(t))
	return svc, ticketRepo, userRepo, notifier
}

func TestTicketService_CreateFromEvidence_Success(t *testing.T) {
	svc, ticketRepo, _, _ := newTicketService(t)

	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	ticket, err := svc.CreateFromEvidence(context.Background(), domain.CreateTicketInput{
		OwnerUserID: "b6f8a6b0-0000-4000-8000-000000000001",
		Evidence: domain.EvidenceInput{
			Platform:   "slack",
			Text:       "Can you also fix the header while you're in there?",
			EvidenceAt: time.Now().Add(-time.Hour),
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, domain.TicketStatusPending, ticket.Status)
	assert.Nil(t, ticket.PriceCents)
	assert.Equal(t, "USD", ticket.Currency)
	assert.Equal(t, "slack", ticket.Platform)
	assert.Nil(t, ticket.EvidenceURL)
	assert.Nil(t, ticket.AssetURL)
}

func TestTicketService_CreateFromEvidence_WithPricing(t *testing.T) {
	svc, ticketRepo, _, _ := newTicketService(t)

	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	price := int64(5000)
	ticket, err := svc.CreateFromEvidence(context.Background(), domain.CreateTicketInput{
		OwnerUserID: "b6f8a6b0-0000-4000-8000-000000000001",
		Evidence: domain.EvidenceInput{
			Platform:    "whatsapp",
			Text:        "one more small change",
			EvidenceAt:  time.Now(),
			EvidenceURL: "  https://example.com/msg/42  ",
		},
		Pricing: &domain.PricingInput{PriceCents: &price, Currency: "eur"},
	})

	require.NoError(t, err)
	require.NotNil(t, ticket.PriceCents)
	assert.Equal(t, int64(5000), *ticket.PriceCents)
	assert.Equal(t, "EUR", ticket.Currency)
	require.NotNil(t, ticket.EvidenceURL)
	assert.Equal(t, "https://example.com/msg/42", *ticket.EvidenceURL)
}

func TestTicketService_CreateFromEvidence_Validation(t *testing.T) {
	svc, _, _, _ := newTicketService(t)

	negative := int64(-100)
	cases := []struct {
		name  string
		input domain.CreateTicketInput
	}{
		{
			name: "missing owner",
			input: domain.CreateTicketInput{
				Evidence: domain.EvidenceInput{Platform: "slack", Text: "x", EvidenceAt: time.Now()},
			},
		},
		{
			name: "missing platform",
			input: domain.CreateTicketInput{
				OwnerUserID: "u1",
				Evidence:    domain.EvidenceInput{Text: "x", EvidenceAt: time.Now()},
			},
		},
		{
			name: "blank text",
			input: domain.CreateTicketInput{
				OwnerUserID: "u1",
				Evidence:    domain.EvidenceInput{Platform: "slack", Text: "   ", EvidenceAt: time.Now()},
			},
		},
		{
			name: "zero evidence timestamp",
			input: domain.CreateTicketInput{
				OwnerUserID: "u1",
				Evidence:    domain.EvidenceInput{Platform: "slack", Text: "x"},
			},
		},
		{
			name: "negative price",
			input: domain.CreateTicketInput{
				OwnerUserID: "u1",
				Evidence:    domain.EvidenceInput{Platform: "slack", Text: "x", EvidenceAt: time.Now()},
				Pricing:     &domain.PricingInput{PriceCents: &negative},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateFromEvidence(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTicketService_Approve_Success(t *testing.T) {
	svc, ticketRepo, userRepo, notifier := newTicketService(t)

	pending := &domain.Ticket{ID: "t1", Status: domain.TicketStatusPending, OwnerUserID: "u1"}
	approved := &domain.Ticket{ID: "t1", Status: domain.TicketStatusApproved, OwnerUserID: "u1"}
	user := &domain.User{ID: "u1", Username: "alice"}

	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(pending, nil)
	ticketRepo.EXPECT().UpdateStatus(mock.Anything, "t1", domain.TicketStatusApproved).Return(approved, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyTicketApproved(mock.Anything, user, approved).Return()

	result, err := svc.Approve(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusApproved, result.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestTicketService_Reject_Success(t *testing.T) {
	svc, ticketRepo, userRepo, notifier := newTicketService(t)

	approved := &domain.Ticket{ID: "t1", Status: domain.TicketStatusApproved, OwnerUserID: "u1"}
	rejected := &domain.Ticket{ID: "t1", Status: domain.TicketStatusRejected, OwnerUserID: "u1"}
	user := &domain.User{ID: "u1", Username: "alice"}

	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(approved, nil)
	ticketRepo.EXPECT().UpdateStatus(mock.Anything, "t1", domain.TicketStatusRejected).Return(rejected, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyTicketRejected(mock.Anything, user, rejected).Return()

	result, err := svc.Reject(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusRejected, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestTicketService_Approve_NotFound(t *testing.T) {
	svc, ticketRepo, _, _ := newTicketService(t)

	ticketRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTicketNotFound)

	_, err := svc.Approve(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestTicketService_Approve_IllegalFromPaid(t *testing.T) {
	svc, ticketRepo, _, _ := newTicketService(t)

	paid := &domain.Ticket{ID: "t1", Status: domain.TicketStatusPaid, OwnerUserID: "u1"}
	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(paid, nil)

	_, err := svc.Approve(context.Background(), "t1")

	var terr *domain.TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, domain.TicketStatusPaid, terr.From)
	assert.Equal(t, domain.TicketStatusApproved, terr.To)
}

func TestTicketService_SetPrice_Success(t *testing.T) {
	svc, ticketRepo, _, _ := newTicketService(t)

	price := int64(7500)
	approved := &domain.Ticket{ID: "t1", Status: domain.TicketStatusApproved, OwnerUserID: "u1"}
	priced := &domain.Ticket{ID: "t1", Status: domain.TicketStatusApproved, OwnerUserID: "u1", PriceCents: &price, Currency: "USD"}

	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(approved, nil)
	ticketRepo.EXPECT().UpdatePricing(mock.Anything, "t1", int64(7500), "USD").Return(priced, nil)

	result, err := svc.SetPrice(context.Background(), "t1", 7500, "usd")

	require.NoError(t, err)
	require.NotNil(t, result.PriceCents)
	assert.Equal(t, int64(7500), *result.PriceCents)
}

func TestTicketService_SetPrice_NegativeRefused(t *testing.T) {
	svc, _, _, _ := newTicketService(t)

	_, err := svc.SetPrice(context.Background(), "t1", -1, "USD")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketService_SetPrice_ClosedTicketRefused(t *testing.T) {
	svc, ticketRepo, _, _ := newTicketService(t)

	for _, status := range []domain.TicketStatus{domain.TicketStatusPaid, domain.TicketStatusRejected} {
		ticket := &domain.Ticket{ID: "t1", Status: status, OwnerUserID: "u1"}
		ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil).Once()

		_, err := svc.SetPrice(context.Background(), "t1", 5000, "USD")

		assert.ErrorIs(t, err, domain.ErrValidation, "status %s", status)
	}
}

func TestTicketService_Stats(t *testing.T) {
	svc, ticketRepo, _, _ := newTicketService(t)

	ticketRepo.EXPECT().Stats(mock.Anything).Return(&domain.TicketStats{
		ByStatus: map[domain.TicketStatus]int64{
			domain.TicketStatusPending: 3,
			domain.TicketStatusPaid:    2,
		},
		RevenueCents: 12500,
		Currencies:   []string{"usd"},
	}, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12500), stats.RevenueCents)
	assert.Equal(t, "USD", stats.RevenueCurrency)
	assert.Equal(t, int64(3), stats.ByStatus[domain.TicketStatusPending])
}

func TestTicketService_Stats_MixedCurrencies(t *testing.T) {
	svc, ticketRepo, _, _ := newTicketService(t)

	ticketRepo.EXPECT().Stats(mock.Anything).Return(&domain.TicketStats{
		ByStatus:     map[domain.TicketStatus]int64{},
		RevenueCents: 9000,
		Currencies:   []string{"USD", "EUR"},
	}, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "MIXED", stats.RevenueCurrency)
}
