package notifier

import (
	"context"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
)

// LogNotifier writes events to the log. It is used when Redis is disabled.
type LogNotifier struct {
	logger coreport.Logger
}

// NewLogNotifier creates a notifier backed by logger
func NewLogNotifier(logger coreport.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With(map[string]any{"component": "notifier"})}
}

var _ coreport.Notifier = (*LogNotifier)(nil)

// Publish logs the event
func (n *LogNotifier) Publish(_ context.Context, event coreport.Event) error {
	fields := map[string]any{
		"type":        string(event.Type),
		"occurred_at": event.OccurredAt,
	}
	if event.UserID != 0 {
		fields["user_id"] = event.UserID
	}
	for k, v := range event.Payload {
		fields["payload."+k] = v
	}

	n.logger.Info("Ledger event", fields)
	return nil
}
