package service

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"sushi-pos/agg-svc/internal/storage"
)

type StoreInterface interface {
	RecordCompletedOrder(ctx context.Context, day time.Time, orderID int, total decimal.Decimal) error
	RemoveOrder(ctx context.Context, day time.Time, orderID int) error
}

// MessageReader is the part of *kafka.Reader the consumer drives.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, msg kafka.Message) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
