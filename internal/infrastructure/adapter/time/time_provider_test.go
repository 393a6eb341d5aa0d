package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedTimeProvider(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := NewFixedTimeProvider(start)

	assert.Equal(t, start, clock.Now())

	fired := <-clock.After(2 * time.Second)

	assert.Equal(t, start.Add(2*time.Second), fired)
	assert.Equal(t, 2*time.Second, clock.Since(start))
}

func TestRealTimeProviderIsUTC(t *testing.T) {
	clock := NewRealTimeProvider()

	assert.Equal(t, time.UTC, clock.Now().Location())
}
