package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginLimiter throttles repeated login attempts per identifier.
type LoginLimiter interface {
	Allow(ctx context.Context, identifier string) (bool, error)
	Reset(ctx context.Context, identifier string) error
}

// NoopLimiter never throttles.
type NoopLimiter struct{}

func (NoopLimiter) Allow(context.Context, string) (bool, error) { return true, nil }
func (NoopLimiter) Reset(context.Context, string) error         { return nil }

const loginAttemptsPrefix = "login_attempts:"

// RedisLimiter counts attempts in Redis with a fixed window per identifier.
type RedisLimiter struct {
	client      redis.Cmdable
	maxAttempts int64
	window      time.Duration
	logger      *zap.Logger
}

// NewRedisLimiter returns a limiter, or NoopLimiter when throttling is disabled
// or no client is available.
func NewRedisLimiter(client redis.Cmdable, maxAttempts int, window time.Duration, logger *zap.Logger) LoginLimiter {
	if client == nil || maxAttempts <= 0 || window <= 0 {
		return NoopLimiter{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisLimiter{client: client, maxAttempts: int64(maxAttempts), window: window, logger: logger}
}

// Allow records an attempt and reports whether it is within the limit. Redis
// failures let the attempt through. A counter found without an expiry gets the
// window applied again, so a lost EXPIRE cannot lock an identifier out for good.
func (l *RedisLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	key := loginAttemptsPrefix + identifier

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		l.logger.Warn("login limiter unavailable", zap.Error(err))
		return true, nil
	}

	// TTL reports -1 for a key without expiry.
	if ttl.Val() < 0 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			l.logger.Warn("login limiter expire failed", zap.Error(err))
		}
	}
	return incr.Val() <= l.maxAttempts, nil
}

// Reset clears the attempt counter after a successful login.
func (l *RedisLimiter) Reset(ctx context.Context, identifier string) error {
	if err := l.client.Del(ctx, loginAttemptsPrefix+identifier).Err(); err != nil {
		l.logger.Warn("login limiter reset failed", zap.Error(err))
	}
	return nil
}
