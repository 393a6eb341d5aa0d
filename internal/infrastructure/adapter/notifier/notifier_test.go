package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/core"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier(t *testing.T) {
	child := coremocks.NewMockLogger(t)
	parent := coremocks.NewMockLogger(t)
	parent.EXPECT().With(map[string]any{"component": "notifier"}).Return(child).Once()
	child.EXPECT().Info("Ledger event", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["type"] == "request.created" &&
			fields["user_id"] == uint64(5) &&
			fields["payload.unique_id"] == "1717171717171ABCDEF"
	})).Once()

	n := NewLogNotifier(parent)
	err := n.Publish(context.Background(), coreport.Event{
		Type:       coreport.EventRequestCreated,
		UserID:     5,
		Payload:    map[string]any{"unique_id": "1717171717171ABCDEF"},
		OccurredAt: time.Now(),
	})

	assert.NoError(t, err)
}

func TestRedisNotifierReportsPublishFailure(t *testing.T) {
	// Nothing listens on this port, so publishing fails fast
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	n := NewRedisNotifierWithClient(client, "ledger", logger.NewNoopLogger())
	err := n.Publish(context.Background(), coreport.Event{Type: coreport.EventTradeBuy, UserID: 1})

	assert.ErrorContains(t, err, "trade.buy")
}

func TestEventEncoding(t *testing.T) {
	occurred := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	body, err := json.Marshal(coreport.Event{
		Type:       coreport.EventPendingDigest,
		Payload:    map[string]any{"count": 3},
		OccurredAt: occurred,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"requests.pending_digest","payload":{"count":3},"occurredAt":"2024-05-01T09:00:00Z"}`, string(body))
}
