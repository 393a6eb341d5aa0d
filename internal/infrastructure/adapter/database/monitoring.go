package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/requestid"
)

// UnitOfWorkMetrics holds metrics about one unit of work
type UnitOfWorkMetrics struct {
	Duration     time.Duration
	Failed       bool
	ErrorMessage string
}

// MetricsCollector measures units of work and reports the slow ones
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
	}
}

// Measure runs fn and logs a warning when it took longer than the slow threshold
func (c *MetricsCollector) Measure(ctx context.Context, fn func() error) (*UnitOfWorkMetrics, error) {
	start := c.timeProvider.Now()

	err := fn()

	metrics := &UnitOfWorkMetrics{
		Duration: c.timeProvider.Since(start),
		Failed:   err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if c.slowThreshold > 0 && metrics.Duration > c.slowThreshold {
		c.logger.Warn("Slow unit of work detected", map[string]any{
			"duration_ms":   metrics.Duration.Milliseconds(),
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
			"request_id":    requestid.FromContext(ctx),
		})
	}

	return metrics, err
}
