package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"matchdb-jobs-service/internal/domain"
)

// Counter keys expire two periods after their month so abandoned counters do
// not accumulate forever.
const counterTTL = 62 * 24 * time.Hour

type pokeLimiter struct {
	client *goredis.Client
}

// NewPokeLimiter wraps a Redis client as the monthly poke counter. Returns
// nil when the client is nil so callers can treat the limiter as optional.
func NewPokeLimiter(client *goredis.Client) domain.PokeLimiter {
	if client == nil {
		return nil
	}
	return &pokeLimiter{client: client}
}

func counterKey(senderID, period string) string {
	return fmt.Sprintf("poke:%s:%s", senderID, period)
}

// Incr bumps the (sender, period) counter atomically and returns the
// post-increment value. The TTL is set on first increment.
func (l *pokeLimiter) Incr(ctx context.Context, senderID, period string) (int64, error) {
	key := counterKey(senderID, period)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("poke limiter incr %s: %w", key, err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, counterTTL).Err(); err != nil {
			return n, fmt.Errorf("poke limiter expire %s: %w", key, err)
		}
	}
	return n, nil
}

// Decr rolls back a rejected increment.
func (l *pokeLimiter) Decr(ctx context.Context, senderID, period string) error {
	key := counterKey(senderID, period)
	if err := l.client.Decr(ctx, key).Err(); err != nil {
		return fmt.Errorf("poke limiter decr %s: %w", key, err)
	}
	return nil
}
