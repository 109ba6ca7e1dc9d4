package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/service/ports/mocks"
)

type reconcileMocks struct {
	verifier   *mocks.MockWebhookVerifier
	ticketRepo *mocks.MockTicketRepo
	eventRepo  *mocks.MockWebhookEventRepo
	userRepo   *mocks.MockUserRepo
	notifier   *mocks.MockTicketNotifier
}

func newReconcileService(t *testing.T) (*ReconcileService, reconcileMocks) {
	t.Helper()
	m := reconcileMocks{
		verifier:   mocks.NewMockWebhookVerifier(t),
		ticketRepo: mocks.NewMockTicketRepo(t),
		eventRepo:  mocks.NewMockWebhookEventRepo(t),
		userRepo:   mocks.NewMockUserRepo(t),
		notifier:   mocks.NewMockTicketNotifier(t),
	}
	svc := NewReconcileService(m.verifier, m.ticketRepo, m.eventRepo, m.userRepo, m.notifier, newTestLogger(t))
	return svc, m
}

func completedEvent(ticketID string, amountCents int64, currency string) *domain.PaymentEvent {
	return &domain.PaymentEvent{
		ID:          "evt_1",
		Type:        domain.PaymentEventCheckoutCompleted,
		SessionID:   "cs_1",
		TicketID:    ticketID,
		AmountCents: amountCents,
		Currency:    currency,
	}
}

func TestReconcileService_HandleEvent_MarksPaid(t *testing.T) {
	svc, m := newReconcileService(t)

	price := int64(5000)
	approved := &domain.Ticket{ID: "t1", Status: domain.TicketStatusApproved, OwnerUserID: "u1", PriceCents: &price, Currency: "USD"}
	paid := &domain.Ticket{ID: "t1", Status: domain.TicketStatusPaid, OwnerUserID: "u1", PriceCents: &price, Currency: "USD"}
	user := &domain.User{ID: "u1", Username: "alice"}

	m.verifier.EXPECT().VerifyEvent([]byte("payload"), "sig").Return(completedEvent("t1", 5000, "usd"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(true, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(approved, nil)
	m.ticketRepo.EXPECT().UpdateStatus(mock.Anything, "t1", domain.TicketStatusPaid).Return(paid, nil)
	m.eventRepo.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", "").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyTicketPaid(mock.Anything, user, paid).Return()

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, "t1", result.TicketID)
	assert.Equal(t, domain.TicketStatusPaid, result.Status)
	assert.Empty(t, result.Warning)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReconcileService_HandleEvent_InvalidSignature(t *testing.T) {
	svc, m := newReconcileService(t)

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: bad digest", domain.ErrInvalidSignature))

	_, err := svc.HandleEvent(context.Background(), []byte("payload"), "bad-sig")

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestReconcileService_HandleEvent_IgnoresOtherEventTypes(t *testing.T) {
	svc, m := newReconcileService(t)

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(&domain.PaymentEvent{
		ID:   "evt_2",
		Type: "invoice.paid",
	}, nil)

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, "invoice.paid", result.Ignored)
}

func TestReconcileService_HandleEvent_RedeliveryOfWarnedEventIsNoOp(t *testing.T) {
	svc, m := newReconcileService(t)

	processedAt := time.Now().UTC()
	prior := &domain.WebhookEvent{
		ID:              1,
		Provider:        "stripe",
		ProviderEventID: "evt_1",
		TicketID:        "t1",
		Warning:         domain.WarningPaymentMismatch,
		ProcessedAt:     &processedAt,
	}

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(completedEvent("t1", 5000, "usd"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(false, nil)
	m.eventRepo.EXPECT().GetByProviderEventID(mock.Anything, "stripe", "evt_1").Return(prior, nil)

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, "processed", result.Already)
	m.ticketRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestReconcileService_HandleEvent_RedeliveryAfterInterruptedDeliveryStillPays(t *testing.T) {
	svc, m := newReconcileService(t)

	price := int64(5000)
	approved := &domain.Ticket{ID: "t1", Status: domain.TicketStatusApproved, OwnerUserID: "u1", PriceCents: &price, Currency: "USD"}
	paid := &domain.Ticket{ID: "t1", Status: domain.TicketStatusPaid, OwnerUserID: "u1", PriceCents: &price, Currency: "USD"}
	user := &domain.User{ID: "u1", Username: "alice"}

	// The first delivery recorded the event and then died, so the stored row
	// has no processed_at. The redelivery must finish the job.
	prior := &domain.WebhookEvent{ID: 1, Provider: "stripe", ProviderEventID: "evt_1", TicketID: "t1"}

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(completedEvent("t1", 5000, "usd"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(false, nil)
	m.eventRepo.EXPECT().GetByProviderEventID(mock.Anything, "stripe", "evt_1").Return(prior, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(approved, nil)
	m.ticketRepo.EXPECT().UpdateStatus(mock.Anything, "t1", domain.TicketStatusPaid).Return(paid, nil)
	m.eventRepo.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", "").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyTicketPaid(mock.Anything, user, paid).Return()

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, domain.TicketStatusPaid, result.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReconcileService_HandleEvent_RedeliveryOfPaidEventAnswersAlreadyPaid(t *testing.T) {
	svc, m := newReconcileService(t)

	price := int64(5000)
	paid := &domain.Ticket{ID: "t1", Status: domain.TicketStatusPaid, OwnerUserID: "u1", PriceCents: &price, Currency: "USD"}

	processedAt := time.Now().UTC()
	prior := &domain.WebhookEvent{ID: 1, Provider: "stripe", ProviderEventID: "evt_1", TicketID: "t1", ProcessedAt: &processedAt}

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(completedEvent("t1", 5000, "usd"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(false, nil)
	m.eventRepo.EXPECT().GetByProviderEventID(mock.Anything, "stripe", "evt_1").Return(prior, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(paid, nil)
	m.eventRepo.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", "").Return(nil)

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, "paid", result.Already)
	m.ticketRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileService_HandleEvent_AlreadyPaidTicket(t *testing.T) {
	svc, m := newReconcileService(t)

	price := int64(5000)
	paid := &domain.Ticket{ID: "t1", Status: domain.TicketStatusPaid, OwnerUserID: "u1", PriceCents: &price, Currency: "USD"}

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(completedEvent("t1", 5000, "usd"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(true, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(paid, nil)
	m.eventRepo.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", "").Return(nil)

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, "paid", result.Already)
}

func TestReconcileService_HandleEvent_MissingTicketID(t *testing.T) {
	svc, m := newReconcileService(t)

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(completedEvent("", 5000, "usd"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(true, nil)
	m.eventRepo.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", domain.WarningMissingTicketID).Return(nil)

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, domain.WarningMissingTicketID, result.Warning)
}

func TestReconcileService_HandleEvent_TicketNotFound(t *testing.T) {
	svc, m := newReconcileService(t)

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(completedEvent("ghost", 5000, "usd"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(true, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrTicketNotFound)
	m.eventRepo.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", domain.WarningTicketNotFound).Return(nil)

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, domain.WarningTicketNotFound, result.Warning)
}

func TestReconcileService_HandleEvent_AmountMismatchLeavesTicketUntouched(t *testing.T) {
	svc, m := newReconcileService(t)

	price := int64(5000)
	approved := &domain.Ticket{ID: "t1", Status: domain.TicketStatusApproved, OwnerUserID: "u1", PriceCents: &price, Currency: "USD"}
	user := &domain.User{ID: "u1", Username: "alice"}

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(completedEvent("t1", 4000, "usd"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(true, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(approved, nil)
	m.eventRepo.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", domain.WarningPaymentMismatch).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyPaymentMismatch(mock.Anything, user, approved, int64(4000), "usd").Return()

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, domain.WarningPaymentMismatch, result.Warning)
	m.ticketRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReconcileService_HandleEvent_CurrencyMismatch(t *testing.T) {
	svc, m := newReconcileService(t)

	price := int64(5000)
	approved := &domain.Ticket{ID: "t1", Status: domain.TicketStatusApproved, OwnerUserID: "u1", PriceCents: &price, Currency: "USD"}
	user := &domain.User{ID: "u1", Username: "alice"}

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(completedEvent("t1", 5000, "eur"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(true, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(approved, nil)
	m.eventRepo.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", domain.WarningPaymentMismatch).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyPaymentMismatch(mock.Anything, user, approved, int64(5000), "eur").Return()

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.Equal(t, domain.WarningPaymentMismatch, result.Warning)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReconcileService_HandleEvent_PendingTicketCannotGoPaid(t *testing.T) {
	svc, m := newReconcileService(t)

	price := int64(5000)
	pending := &domain.Ticket{ID: "t1", Status: domain.TicketStatusPending, OwnerUserID: "u1", PriceCents: &price, Currency: "USD"}

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(completedEvent("t1", 5000, "usd"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(true, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(pending, nil)
	m.eventRepo.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", domain.WarningTransitionRejected).Return(nil)

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, domain.WarningTransitionRejected, result.Warning)
}

func TestReconcileService_HandleEvent_LostRaceAtPersistence(t *testing.T) {
	svc, m := newReconcileService(t)

	price := int64(5000)
	approved := &domain.Ticket{ID: "t1", Status: domain.TicketStatusApproved, OwnerUserID: "u1", PriceCents: &price, Currency: "USD"}

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(completedEvent("t1", 5000, "usd"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(true, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(approved, nil)
	m.ticketRepo.EXPECT().UpdateStatus(mock.Anything, "t1", domain.TicketStatusPaid).
		Return(nil, &domain.TransitionError{From: domain.TicketStatusRejected, To: domain.TicketStatusPaid})
	m.eventRepo.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", domain.WarningTransitionRejected).Return(nil)

	result, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.NoError(t, err)
	assert.Equal(t, domain.WarningTransitionRejected, result.Warning)
}

func TestReconcileService_HandleEvent_StorageErrorSurfaces(t *testing.T) {
	svc, m := newReconcileService(t)

	m.verifier.EXPECT().VerifyEvent(mock.Anything, mock.Anything).Return(completedEvent("t1", 5000, "usd"), nil)
	m.eventRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(false, assert.AnError)

	_, err := svc.HandleEvent(context.Background(), []byte("payload"), "sig")

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestReconcileService_ReportUnreported(t *testing.T) {
	svc, m := newReconcileService(t)

	events := []*domain.WebhookEvent{
		{ID: 1, Provider: "stripe", ProviderEventID: "evt_1", Warning: domain.WarningPaymentMismatch},
		{ID: 2, Provider: "stripe", ProviderEventID: "evt_2", Warning: domain.WarningTicketNotFound},
	}

	m.eventRepo.EXPECT().ListUnreported(mock.Anything).Return(events, nil)
	m.eventRepo.EXPECT().MarkReported(mock.Anything, []int64{1, 2}).Return(nil)

	result, err := svc.ReportUnreported(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestReconcileService_ReportUnreported_Empty(t *testing.T) {
	svc, m := newReconcileService(t)

	m.eventRepo.EXPECT().ListUnreported(mock.Anything).Return(nil, nil)

	result, err := svc.ReportUnreported(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}
