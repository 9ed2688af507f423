package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"

	"sushi-pos/events"
)

// ErrSkipped marks a message that was read but intentionally not applied.
var ErrSkipped = errors.New("message skipped")

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    *log.Entry
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *log.Entry) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Log:    logger,
	}
}

// Start reads until ctx is cancelled. Failures on a single message are
// logged and never stop the loop.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info("Starting revenue aggregation consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Log.Info("Consumer stopped")
				return
			}
			c.Log.WithError(err).Error("Error reading message")
			continue
		}

		if err := c.Process(ctx, message); err != nil && !errors.Is(err, ErrSkipped) {
			c.Log.WithError(err).WithField("offset", message.Offset).Error("Error processing message")
		}
	}
}

func (c *Consumer) Process(ctx context.Context, message kafka.Message) error {
	var ev events.OrderEvent
	if err := json.Unmarshal(message.Value, &ev); err != nil {
		c.Log.WithError(err).WithField("offset", message.Offset).Warn("Skipping malformed message")
		return fmt.Errorf("%w: %v", ErrSkipped, err)
	}

	fields := log.Fields{"type": ev.Type, "order_id": ev.OrderID}
	day := ev.RevenueDay()
	switch ev.Type {
	case events.TypeOrderCompleted:
		if err := c.Store.RecordCompletedOrder(ctx, day, ev.OrderID, ev.Total); err != nil {
			return fmt.Errorf("record order %d: %w", ev.OrderID, err)
		}
		fields["total"] = ev.Total.StringFixed(2)
	case events.TypeOrderDeleted:
		// Only completed orders were ever counted.
		if ev.CompletedAt == nil {
			c.Log.WithFields(fields).Debug("Skipping deletion of uncounted order")
			return ErrSkipped
		}
		if err := c.Store.RemoveOrder(ctx, day, ev.OrderID); err != nil {
			return fmt.Errorf("remove order %d: %w", ev.OrderID, err)
		}
	default:
		c.Log.WithFields(fields).Debug("Skipping event")
		return ErrSkipped
	}

	fields["date"] = day.Format(events.DateLayout)
	c.Log.WithFields(fields).Info("Applied order event")
	return nil
}
