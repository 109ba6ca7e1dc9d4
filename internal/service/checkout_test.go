package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/service/ports/mocks"
)

func newCheckoutService(t *testing.T) (*CheckoutService, *mocks.MockTicketRepo, *mocks.MockCheckoutProvider) {
	t.Helper()
	ticketRepo := mocks.NewMockTicketRepo(t)
	provider := mocks.NewMockCheckoutProvider(t)
	svc := NewCheckoutService(ticketRepo, provider, newTestLogger(t))
	return svc, ticketRepo, provider
}

func TestCheckoutService_Start_Success(t *testing.T) {
	svc, ticketRepo, provider := newCheckoutService(t)

	price := int64(5000)
	ticket := &domain.Ticket{
		ID:          "t1",
		Status:      domain.TicketStatusApproved,
		OwnerUserID: "u1",
		PriceCents:  &price,
		Currency:    "USD",
	}

	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)
	provider.EXPECT().CreateSession(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec *domain.CheckoutSpec) (*domain.CheckoutSession, error) {
			assert.Equal(t, int64(5000), spec.AmountCents)
			assert.Equal(t, "usd", spec.Currency)
			assert.Equal(t, "t1", spec.ClientReferenceID)
			assert.Equal(t, "t1", spec.Metadata[domain.MetadataTicketID])
			return &domain.CheckoutSession{ID: "cs_123", URL: "https://checkout.example/cs_123"}, nil
		})

	session, err := svc.Start(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "cs_123", session.ID)
	assert.Equal(t, "https://checkout.example/cs_123", session.URL)
}

func TestCheckoutService_Start_TicketNotFound(t *testing.T) {
	svc, ticketRepo, _ := newCheckoutService(t)

	ticketRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTicketNotFound)

	_, err := svc.Start(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestCheckoutService_Start_NotApproved(t *testing.T) {
	svc, ticketRepo, _ := newCheckoutService(t)

	price := int64(5000)
	ticket := &domain.Ticket{ID: "t1", Status: domain.TicketStatusPending, PriceCents: &price, Currency: "USD"}
	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	_, err := svc.Start(context.Background(), "t1")

	assert.ErrorIs(t, err, domain.ErrCheckoutWrongStatus)
}

func TestCheckoutService_Start_MissingPrice(t *testing.T) {
	svc, ticketRepo, _ := newCheckoutService(t)

	ticket := &domain.Ticket{ID: "t1", Status: domain.TicketStatusApproved, Currency: "USD"}
	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	_, err := svc.Start(context.Background(), "t1")

	assert.ErrorIs(t, err, domain.ErrCheckoutMissingPrice)
}

func TestCheckoutService_Start_ProviderError(t *testing.T) {
	svc, ticketRepo, provider := newCheckoutService(t)

	price := int64(5000)
	ticket := &domain.Ticket{ID: "t1", Status: domain.TicketStatusApproved, PriceCents: &price, Currency: "USD"}

	ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)
	provider.EXPECT().CreateSession(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := svc.Start(context.Background(), "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
