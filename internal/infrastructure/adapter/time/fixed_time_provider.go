package time

import (
	"sync"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
)

// FixedTimeProvider is a manually advanced clock for integration tests
type FixedTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedTimeProvider creates a clock frozen at now
func NewFixedTimeProvider(now time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{now: now}
}

var _ core.TimeProvider = (*FixedTimeProvider)(nil)

// Now returns the frozen time
func (p *FixedTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Since returns the frozen time minus t
func (p *FixedTimeProvider) Since(t time.Time) time.Duration {
	return p.Now().Sub(t)
}

// After advances the clock by d and fires immediately
func (p *FixedTimeProvider) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- p.Advance(d)
	return ch
}

// Advance moves the clock forward and returns the new time
func (p *FixedTimeProvider) Advance(d time.Duration) time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(d)
	return p.now
}
