package store

import (
	"context"
	"crypto_bot/internal/domain"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRedisStoreLoadMissingKey(t *testing.T) {
	s := newTestRedisStore(t)

	users, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users, "a missing snapshot is an empty store")
}

func TestRedisStoreRoundTrip(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	users := map[string]*domain.UserRecord{
		"U1": {Goal: 500, Assets: map[string]float64{"usdt": 100}},
	}
	require.NoError(t, s.Save(ctx, users))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(500), loaded["U1"].Goal)
	assert.Equal(t, 100.0, loaded["U1"].Assets["usdt"])
}
