package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sushi-pos/events"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	w := &recordingWriter{}
	pub := NewKafkaPublisher(w)
	ev := events.OrderEvent{
		Type:       events.TypeOrderCompleted,
		OrderID:    42,
		TableID:    3,
		Status:     "completed",
		Total:      decimal.RequireFromString("20.70"),
		OccurredAt: time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC),
	}

	require.NoError(t, pub.PublishOrderEvent(context.Background(), ev))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "42", string(w.msgs[0].Key))
	var got events.OrderEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, ev.Type, got.Type)
	assert.True(t, ev.Total.Equal(got.Total))
	assert.True(t, ev.OccurredAt.Equal(got.OccurredAt))
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	pub := NewKafkaPublisher(&recordingWriter{err: errors.New("broker down")})

	err := pub.PublishOrderEvent(context.Background(), events.OrderEvent{Type: events.TypeOrderCreated})

	assert.EqualError(t, err, "broker down")
}
