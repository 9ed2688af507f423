package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"sushi-pos/events"
)

// Store keeps the per-day revenue hashes that pos-svc's dashboard reads.
// Each completed order is one field holding its total in cents, so a
// redelivered event overwrites instead of adding twice.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) RecordCompletedOrder(ctx context.Context, day time.Time, orderID int, total decimal.Decimal) error {
	key := events.DailyRevenueKey(day)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, events.OrderField(orderID), events.Cents(total))
		pipe.Expire(ctx, key, events.CounterTTL)
		return nil
	})
	return err
}

// RemoveOrder takes a deleted order back out of the day it was counted on.
func (s *Store) RemoveOrder(ctx context.Context, day time.Time, orderID int) error {
	return s.rdb.HDel(ctx, events.DailyRevenueKey(day), events.OrderField(orderID)).Err()
}
