package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

// RedisNotifier publishes events as JSON on a Redis pub/sub channel
// consumed by the chat front-end
type RedisNotifier struct {
	client  *redis.Client
	channel string
	logger  coreport.Logger
}

// RedisConfig holds the connection settings for the notifier
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// NewRedisNotifier connects to Redis and verifies the connection
func NewRedisNotifier(ctx context.Context, config RedisConfig, logger coreport.Logger) (*RedisNotifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", config.Addr, err)
	}

	logger.Info("Connected to Redis notifier", map[string]any{
		"addr":    config.Addr,
		"channel": config.Channel,
	})

	return NewRedisNotifierWithClient(client, config.Channel, logger), nil
}

// NewRedisNotifierWithClient wraps an existing client
func NewRedisNotifierWithClient(client *redis.Client, channel string, logger coreport.Logger) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
		logger:  logger.With(map[string]any{"component": "notifier"}),
	}
}

var _ coreport.Notifier = (*RedisNotifier)(nil)

// Publish sends the event to the channel
func (n *RedisNotifier) Publish(ctx context.Context, event coreport.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.Type, err)
	}

	receivers, err := n.client.Publish(ctx, n.channel, body).Result()
	if err != nil {
		n.logger.Error("Failed to publish event", map[string]any{
			"type":    string(event.Type),
			"user_id": event.UserID,
			"error":   err.Error(),
		})
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}

	n.logger.Debug("Event published", map[string]any{
		"type":      string(event.Type),
		"user_id":   event.UserID,
		"receivers": receivers,
	})
	return nil
}

// Close releases the Redis connection
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
