package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
)

func TestRetryOnTransientError(t *testing.T) {
	ctx := context.Background()
	config := RetryConfig{MaxRetries: 3, RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	t.Run("Transient failures are retried until success", func(t *testing.T) {
		clock := timeProvider.NewFixedTimeProvider(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		calls := 0

		err := RetryOnTransientError(ctx, config, func() error {
			calls++
			if calls < 3 {
				return errors.New("dial tcp: connection refused")
			}
			return nil
		}, clock, logger.NewNoopLogger())

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Permanent failures are returned at once", func(t *testing.T) {
		clock := timeProvider.NewFixedTimeProvider(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		calls := 0
		authErr := errors.New("password authentication failed")

		err := RetryOnTransientError(ctx, config, func() error {
			calls++
			return authErr
		}, clock, logger.NewNoopLogger())

		assert.Equal(t, authErr, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("Gives up after the last attempt", func(t *testing.T) {
		clock := timeProvider.NewFixedTimeProvider(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		calls := 0

		err := RetryOnTransientError(ctx, config, func() error {
			calls++
			return errors.New("i/o timeout")
		}, clock, logger.NewNoopLogger())

		assert.Error(t, err)
		assert.Equal(t, config.MaxRetries, calls)
	})
}

func TestCalculateBackoffIsCapped(t *testing.T) {
	config := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, config, now))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, config, now))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(10, config, now))
}
