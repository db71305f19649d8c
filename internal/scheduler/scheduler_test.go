package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SessionBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_MarksPast(t *testing.T) {
	lifecycle := mocks.NewMockSessionLifecycle(t)
	log := newTestLogger(t)

	s := New(lifecycle, 50*time.Millisecond, false, log)

	lifecycle.EXPECT().MarkPast(mock.Anything).Return(int64(2), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(lifecycle.Calls), 1)
}

func TestScheduler_CatchUp_RunsImmediately(t *testing.T) {
	lifecycle := mocks.NewMockSessionLifecycle(t)
	log := newTestLogger(t)

	// Interval far beyond the test window; only the catch-up tick can fire.
	s := New(lifecycle, time.Minute, true, log)

	lifecycle.EXPECT().MarkPast(mock.Anything).Return(int64(0), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.Equal(t, 1, len(lifecycle.Calls))
}

func TestScheduler_NoCatchUp_WaitsForInterval(t *testing.T) {
	lifecycle := mocks.NewMockSessionLifecycle(t)
	log := newTestLogger(t)

	s := New(lifecycle, time.Minute, false, log)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.Empty(t, lifecycle.Calls)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	lifecycle := mocks.NewMockSessionLifecycle(t)
	log := newTestLogger(t)

	s := New(lifecycle, 30*time.Millisecond, false, log)

	lifecycle.EXPECT().MarkPast(mock.Anything).Return(int64(0), errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(lifecycle.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	lifecycle := mocks.NewMockSessionLifecycle(t)
	log := newTestLogger(t)

	s := New(lifecycle, time.Second, false, log)

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
