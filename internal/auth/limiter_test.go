package auth

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisLimiter_DisabledFallsBackToNoop(t *testing.T) {
	assert.IsType(t, NoopLimiter{}, NewRedisLimiter(nil, 10, time.Minute, nil))

	l := NoopLimiter{}
	ok, err := l.Allow(context.Background(), "202501")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, l.Reset(context.Background(), "202501"))
}

func TestRedisLimiter_FailsOpenWhenUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	ok, err := NewRedisLimiter(client, 1, time.Minute, nil).Allow(context.Background(), "202501")
	require.NoError(t, err)
	assert.True(t, ok)
}
