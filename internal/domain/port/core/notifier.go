package core

import (
	"context"
	"time"
)

// EventType names a ledger event published after its unit of work commits
type EventType string

// Event types
const (
	EventTradeBuy         EventType = "trade.buy"
	EventTradeSell        EventType = "trade.sell"
	EventRequestCreated   EventType = "request.created"
	EventRequestResolved  EventType = "request.resolved"
	EventRequestCancelled EventType = "request.cancelled"
	EventPendingDigest    EventType = "requests.pending_digest"
)

// Event is a committed state change the presentation layer may render
type Event struct {
	Type       EventType      `json:"type"`
	UserID     uint64         `json:"userId,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// Notifier delivers events to the presentation layer. It is only called once
// the unit of work that produced the event has committed.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}
