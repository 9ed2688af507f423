package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sushi-pos/events"
	"sushi-pos/pos-svc/internal/domain"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return NewRedisCache(rdb, 5*time.Minute), mr
}

func TestRedisCache_SettingsRoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	miss, err := cache.GetSettings(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)

	s := domain.DefaultSettings()
	require.NoError(t, cache.SetSettings(ctx, &s))
	assert.Equal(t, 5*time.Minute, mr.TTL(settingsCacheKey))

	got, err := cache.GetSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.RestaurantName, got.RestaurantName)
	assert.True(t, s.AYCEDinnerPrice.Equal(got.AYCEDinnerPrice))

	require.NoError(t, cache.InvalidateSettings(ctx))
	assert.False(t, mr.Exists(settingsCacheKey))
}

func TestRedisCache_DailyRevenue(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	_, _, ok, err := cache.DailyRevenue(ctx, day)
	require.NoError(t, err)
	assert.False(t, ok)

	key := events.DailyRevenueKey(day)
	mr.HSet(key, "1", "2070")
	mr.HSet(key, "2", "2500")
	mr.HSet(key, "3", "10")
	mr.HSet(key, "4", "20")

	revenue, orders, ok, err := cache.DailyRevenue(ctx, day)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, orders)
	assert.Equal(t, "46.00", revenue.StringFixed(2))
	assert.True(t, revenue.Equal(decimal.RequireFromString("46")))
}

func TestRedisCache_DailyRevenueRejectsCorruptField(t *testing.T) {
	cache, mr := newTestCache(t)
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	mr.HSet(events.DailyRevenueKey(day), "1", "12.5")

	_, _, _, err := cache.DailyRevenue(context.Background(), day)

	assert.Error(t, err)
}

func TestRedisCache_Unavailable(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	_, err := cache.GetSettings(context.Background())
	assert.Error(t, err)
}
