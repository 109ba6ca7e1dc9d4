package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/FeymanMCSQ/scopeshield-v3/internal/domain"
	"github.com/FeymanMCSQ/scopeshield-v3/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ReportsWarnings(t *testing.T) {
	reporter := mocks.NewMockReconcileReporter(t)
	log := newTestLogger(t)

	s := New(reporter, 50*time.Millisecond, log)

	events := []*domain.WebhookEvent{
		{ID: 1, Provider: "stripe", ProviderEventID: "evt_1", TicketID: "t1", Warning: domain.WarningPaymentMismatch},
	}
	reporter.EXPECT().ReportUnreported(mock.Anything).Return(events, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reporter.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	reporter := mocks.NewMockReconcileReporter(t)
	log := newTestLogger(t)

	s := New(reporter, 50*time.Millisecond, log)

	reporter.EXPECT().ReportUnreported(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reporter.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reporter := mocks.NewMockReconcileReporter(t)
	log := newTestLogger(t)

	s := New(reporter, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	reporter := mocks.NewMockReconcileReporter(t)
	log := newTestLogger(t)

	s := New(reporter, 30*time.Millisecond, log)

	reporter.EXPECT().ReportUnreported(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(reporter.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
