package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareTokensExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewShareTokens()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "tok", "trip-1", time.Hour))

	tripID, ok, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "trip-1", tripID)

	now = now.Add(2 * time.Hour)
	_, ok, err = store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, store.data)
}

func TestShareTokensUnknown(t *testing.T) {
	_, ok, err := NewShareTokens().Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestShareTokensSweepOnSet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewShareTokens()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "old", "trip-1", time.Minute))
	now = now.Add(time.Hour)
	require.NoError(t, store.Set(ctx, "new", "trip-2", time.Minute))

	assert.Len(t, store.data, 1)
	assert.Contains(t, store.data, "new")
}

func TestRedisShareTokens(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	var store ShareTokenStore = NewRedisShareTokens(client)
	require.NoError(t, store.Set(ctx, "tok", "trip-9", 30*time.Minute))

	assert.Equal(t, "trip-9", mustGet(t, srv, shareKeyPrefix+"tok"))
	assert.Equal(t, 30*time.Minute, srv.TTL(shareKeyPrefix+"tok"))

	tripID, ok, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "trip-9", tripID)

	srv.FastForward(31 * time.Minute)
	_, ok, err = store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisShareTokensUnavailable(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	srv.Close()

	_, ok, err := NewRedisShareTokens(client).Get(context.Background(), "tok")
	assert.Error(t, err)
	assert.False(t, ok)
}

func mustGet(t *testing.T, srv *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := srv.Get(key)
	require.NoError(t, err)
	return v
}
