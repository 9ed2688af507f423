package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"sushi-pos/events"
	"sushi-pos/pos-svc/internal/domain"
)

const settingsCacheKey = "settings:1"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// GetSettings returns the cached settings row, or nil on a miss.
func (c *RedisCache) GetSettings(ctx context.Context) (*domain.Settings, error) {
	raw, err := c.Client.Get(ctx, settingsCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s domain.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *RedisCache) SetSettings(ctx context.Context, s *domain.Settings) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, settingsCacheKey, payload, c.TTL).Err()
}

func (c *RedisCache) InvalidateSettings(ctx context.Context) error {
	return c.Client.Del(ctx, settingsCacheKey).Err()
}

// DailyRevenue sums the per-order cents agg-svc keeps for day. ok is false
// when nothing has been recorded for that day.
func (c *RedisCache) DailyRevenue(ctx context.Context, day time.Time) (revenue decimal.Decimal, orders int, ok bool, err error) {
	totals, err := c.Client.HGetAll(ctx, events.DailyRevenueKey(day)).Result()
	if err != nil {
		return decimal.Zero, 0, false, err
	}
	if len(totals) == 0 {
		return decimal.Zero, 0, false, nil
	}
	var cents int64
	for field, v := range totals {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return decimal.Zero, 0, false, fmt.Errorf("revenue of order %s: %w", field, err)
		}
		cents += n
	}
	return events.FromCents(cents), len(totals), true, nil
}
