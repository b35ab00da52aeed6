package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Intelligence/internal/config"
	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
)

func TestNewClientConnects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(&config.RedisConfig{Addr: mr.Addr()}, logging.NewNopLogger())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))
}

func TestNewClientConnectionRefused(t *testing.T) {
	_, err := NewClient(&config.RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis connection failed")
}

func TestClientClosedOperations(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	client := NewClientFromRedis(rdb, nil)

	require.NoError(t, client.Close())
	// Idempotent.
	require.NoError(t, client.Close())

	ctx := context.Background()
	assert.ErrorIs(t, client.Ping(ctx), ErrClientClosed)
	assert.ErrorIs(t, client.Get(ctx, "k").Err(), ErrClientClosed)
	assert.ErrorIs(t, client.Set(ctx, "k", "v", 0).Err(), ErrClientClosed)
	assert.ErrorIs(t, client.Del(ctx, "k").Err(), ErrClientClosed)
}
