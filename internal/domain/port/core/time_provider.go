package core

import (
	"time"
)

// TimeProvider abstracts the clock so that timestamps written to the ledger
// (created_at, processed_at, price history points) are controllable in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	// After waits for the duration to elapse and then sends the current time on the returned channel
	After(d time.Duration) <-chan time.Time
}
