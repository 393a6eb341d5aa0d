package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPendingDigestJob(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := timeprovider.NewFixedTimeProvider(now)

	t.Run("Publishes when requests wait", func(t *testing.T) {
		requests := usecasemocks.NewMockRequestUseCase(t)
		notifier := coremocks.NewMockNotifier(t)
		requests.EXPECT().PendingCount(mock.Anything).Return(int64(3), nil).Once()
		notifier.EXPECT().Publish(mock.Anything, coreport.Event{
			Type:       coreport.EventPendingDigest,
			Payload:    map[string]any{"count": int64(3)},
			OccurredAt: now,
		}).Return(nil).Once()

		err := NewPendingDigestJob(requests, notifier, clock)(ctx)

		assert.NoError(t, err)
	})

	t.Run("Silent when nothing waits", func(t *testing.T) {
		requests := usecasemocks.NewMockRequestUseCase(t)
		requests.EXPECT().PendingCount(mock.Anything).Return(int64(0), nil).Once()

		err := NewPendingDigestJob(requests, coremocks.NewMockNotifier(t), clock)(ctx)

		assert.NoError(t, err)
	})

	t.Run("Count failure is returned", func(t *testing.T) {
		requests := usecasemocks.NewMockRequestUseCase(t)
		requests.EXPECT().PendingCount(mock.Anything).Return(int64(0), errors.New("db down")).Once()

		err := NewPendingDigestJob(requests, coremocks.NewMockNotifier(t), clock)(ctx)

		assert.ErrorContains(t, err, "db down")
	})
}

func TestScheduler(t *testing.T) {
	t.Run("Rejects a malformed spec", func(t *testing.T) {
		s := NewScheduler(logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

		err := s.AddJob("broken", "every now and then", func(context.Context) error { return nil })

		assert.ErrorContains(t, err, "broken")
	})

	t.Run("Empty spec disables the job", func(t *testing.T) {
		s := NewScheduler(logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

		require.NoError(t, s.AddJob("off", "", func(context.Context) error { return nil }))
		assert.Empty(t, s.cron.Entries())
	})

	t.Run("Runs jobs until the context ends", func(t *testing.T) {
		s := NewScheduler(logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
		ran := make(chan struct{}, 10)
		require.NoError(t, s.AddJob(PoolReportJob, "@every 1s", NewPoolReportJob(func() error {
			ran <- struct{}{}
			return nil
		})))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- s.Run(ctx) }()

		select {
		case <-ran:
		case <-time.After(3 * time.Second):
			t.Fatal("job did not run")
		}

		cancel()
		assert.NoError(t, <-done)
	})
}
