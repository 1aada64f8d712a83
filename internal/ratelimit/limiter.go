// Package ratelimit provides a Redis backed fixed window rate limiter.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/citypulse/waterlog-api/internal/apperror"
)

const keyPrefix = "ratelimit:"

// Limiter counts actions per key in fixed windows. The first increment
// of a window sets the expiry, so a window ends at most `window` after
// the first action in it.
type Limiter struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewLimiter(client *redis.Client, logger *logrus.Logger) *Limiter {
	return &Limiter{
		client: client,
		logger: logger,
	}
}

// Allow consumes one unit for key. It returns a wrapped
// apperror.ErrRateLimited once limit is exceeded within the window.
// Redis outages fail open: a report that slips through is cheaper than
// a reporting outage.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) error {
	redisKey := keyPrefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.WithError(err).WithField("key", key).Warn("Rate limiter unavailable, allowing request")
		return nil
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			l.logger.WithError(err).WithField("key", key).Warn("Failed to set rate limit window expiry")
		}
	}

	if count > int64(limit) {
		return fmt.Errorf("limit of %d per %s exceeded for %s: %w", limit, window, key, apperror.ErrRateLimited)
	}
	return nil
}
