package scheduler

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
)

// Job names
const (
	PendingDigestJob = "pending-digest"
	PoolReportJob    = "db-pool-report"
)

// PendingCounter reports how many requests await a decision
type PendingCounter interface {
	PendingCount(ctx context.Context) (int64, error)
}

// NewPendingDigestJob publishes a reminder for administrators while requests are waiting
func NewPendingDigestJob(requests PendingCounter, notifier coreport.Notifier, timeProvider coreport.TimeProvider) Job {
	return func(ctx context.Context) error {
		count, err := requests.PendingCount(ctx)
		if err != nil {
			return fmt.Errorf("failed to count pending requests: %w", err)
		}
		if count == 0 {
			return nil
		}

		return notifier.Publish(ctx, coreport.Event{
			Type:       coreport.EventPendingDigest,
			Payload:    map[string]any{"count": count},
			OccurredAt: timeProvider.Now(),
		})
	}
}

// NewPoolReportJob logs connection pool statistics
func NewPoolReportJob(report func() error) Job {
	return func(context.Context) error {
		return report()
	}
}
