package restaurant

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*miniredis.Miniredis, *RedisOpenCache) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return s, NewRedisOpenCache(client, time.Minute, "abc")
}

func TestRedisOpenCacheRoundTrip(t *testing.T) {
	s, cache := newTestRedisCache(t)
	ctx := context.Background()

	names, ok, err := cache.Get(ctx, 5, 1300, true)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, names)

	require.NoError(t, cache.Set(ctx, 5, 1300, true, []string{"Char Grill", "Seoul 116"}))
	names, ok, err = cache.Get(ctx, 5, 1300, true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Char Grill", "Seoul 116"}, names)
	assert.Equal(t, time.Minute, s.TTL(cache.key(5, 1300, true)))

	// the exclusive answer for the same minute is a separate entry
	_, ok, err = cache.Get(ctx, 5, 1300, false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisOpenCacheEmptyAnswer(t *testing.T) {
	_, cache := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 0, 400, true, []string{}))
	names, ok, err := cache.Get(ctx, 0, 400, true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{}, names)
}

func TestRedisOpenCacheCorruptEntry(t *testing.T) {
	s, cache := newTestRedisCache(t)
	require.NoError(t, s.Set(cache.key(1, 930, true), "not json"))

	_, ok, err := cache.Get(context.Background(), 1, 930, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt cache entry")
	assert.False(t, ok)
}

func TestRedisOpenCacheUnavailable(t *testing.T) {
	s, cache := newTestRedisCache(t)
	s.Close()

	_, ok, err := cache.Get(context.Background(), 1, 930, true)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, cache.Set(context.Background(), 1, 930, true, []string{"x"}))

	// the service degrades to computing the answer
	svc := NewRestaurantService(testDataset(), NewMatcher(), cache, nil)
	names, err := svc.FindOpen(context.Background(), at(6, 13, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"Weekdays only"}, names)
}
