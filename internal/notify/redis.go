// ABOUTME: Redis pub/sub Notifier for change triggers.
// ABOUTME: One pattern subscription per user covering all entity tables.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// channelPrefix namespaces fitness change channels in Redis.
// Full channel names look like "fitness:{userID}:{table}".
const channelPrefix = "fitness"

// Redis implements Notifier over Redis pub/sub. Delivery is
// fire-and-forget: a missed trigger is corrected by the next one, and
// subscribers always refetch the full snapshot anyway.
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis connects to Redis at the given URL and verifies the
// connection with a ping.
func NewRedis(ctx context.Context, redisURL string, logger *zap.Logger) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{client: client, logger: logger}, nil
}

// Publish announces a change on the user's channel for one table.
func (r *Redis) Publish(ctx context.Context, userID, table string) error {
	channel := fmt.Sprintf("%s:%s:%s", channelPrefix, userID, table)
	if err := r.client.Publish(ctx, channel, "changed").Err(); err != nil {
		return fmt.Errorf("publish %s: %w", channel, err)
	}
	return nil
}

// Subscribe listens on all of the user's table channels via a pattern
// subscription. The returned cancel function closes the underlying
// pubsub so no channel outlives a user change.
func (r *Redis) Subscribe(ctx context.Context, userID string) (<-chan Event, func(), error) {
	pattern := fmt.Sprintf("%s:%s:*", channelPrefix, userID)
	pubsub := r.client.PSubscribe(ctx, pattern)

	// Confirm the subscription is established before handing it out.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("subscribe %s: %w", pattern, err)
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		for msg := range pubsub.Channel() {
			table := msg.Channel
			if i := strings.LastIndex(table, ":"); i >= 0 {
				table = table[i+1:]
			}
			select {
			case events <- Event{Table: table}:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() {
		if err := pubsub.Close(); err != nil {
			r.logger.Warn("pubsub close failed", zap.Error(err))
		}
	}

	r.logger.Debug("subscribed", zap.String("pattern", pattern))
	return events, cancel, nil
}

// Close releases the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
