package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/repository"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Share of the backoff added as jitter (0.0-1.0)
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnTransientError runs operation up to config.MaxRetries times while it
// fails with a transient error. It guards connection establishment only; units
// of work are never replayed.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) error {
	classifier := repository.NewErrorClassifier()

	var err error
	for attempt := 1; ; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		if !classifier.IsTransientError(err) {
			return err
		}
		if attempt >= config.MaxRetries {
			logger.Error("All retry attempts failed", map[string]any{
				"attempts": attempt,
				"error":    err.Error(),
			})
			return err
		}

		backoff := calculateBackoffWithJitter(attempt-1, config, timeProvider.Now())
		logger.Warn("Transient database error, retrying", map[string]any{
			"attempt":     attempt,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-timeProvider.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// calculateBackoffWithJitter doubles the interval per attempt up to MaxInterval
// and adds jitter derived from now
func calculateBackoffWithJitter(attempt int, config RetryConfig, now time.Time) time.Duration {
	backoff := config.RetryInterval << uint(attempt)
	if backoff <= 0 || backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		spread := float64(now.UnixNano()%100) / 100.0
		backoff += time.Duration(float64(backoff) * config.JitterFactor * spread)
	}
	return backoff
}
