package tests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sushi-pos/agg-svc/internal/mocks"
	"sushi-pos/agg-svc/internal/service"
	"sushi-pos/events"
)

func quietLogger() *log.Entry {
	l := log.New()
	l.SetOutput(io.Discard)
	return log.NewEntry(l)
}

func message(t *testing.T, ev events.OrderEvent) kafka.Message {
	t.Helper()
	payload, err := json.Marshal(ev)
	require.NoError(t, err)
	return kafka.Message{Value: payload}
}

func TestConsumer_Process(t *testing.T) {
	// 23:30 in New York is already the next day in UTC.
	ny := time.FixedZone("EST", -5*3600)
	completedAt := time.Date(2024, 3, 9, 23, 30, 0, 0, ny)
	// Published a little later, after UTC midnight of the following day.
	publishedAt := time.Date(2024, 3, 11, 0, 5, 0, 0, time.UTC)
	total := decimal.RequireFromString("42.75")
	onCompletionDay := mock.MatchedBy(func(day time.Time) bool {
		return day.Location() == time.UTC && day.Format(events.DateLayout) == "2024-03-10"
	})

	tests := []struct {
		name           string
		event          events.OrderEvent
		setupMockStore func(*mocks.StoreInterface)
		wantErr        error
		wantAnyErr     bool
	}{
		{
			name: "completed order",
			event: events.OrderEvent{Type: events.TypeOrderCompleted, OrderID: 7, Total: total,
				OccurredAt: publishedAt, CompletedAt: &completedAt},
			setupMockStore: func(m *mocks.StoreInterface) {
				m.On("RecordCompletedOrder", mock.Anything, onCompletionDay, 7,
					mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(total) })).Return(nil).Once()
			},
		},
		{
			name:  "completed order without completion time uses event time",
			event: events.OrderEvent{Type: events.TypeOrderCompleted, OrderID: 7, Total: total, OccurredAt: completedAt},
			setupMockStore: func(m *mocks.StoreInterface) {
				m.On("RecordCompletedOrder", mock.Anything, onCompletionDay, 7, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "store error",
			event: events.OrderEvent{Type: events.TypeOrderCompleted, OrderID: 7, Total: total,
				OccurredAt: publishedAt, CompletedAt: &completedAt},
			setupMockStore: func(m *mocks.StoreInterface) {
				m.On("RecordCompletedOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("redis error")).Once()
			},
			wantAnyErr: true,
		},
		{
			name: "deleted completed order",
			event: events.OrderEvent{Type: events.TypeOrderDeleted, OrderID: 7, Total: total,
				OccurredAt: publishedAt, CompletedAt: &completedAt},
			setupMockStore: func(m *mocks.StoreInterface) {
				m.On("RemoveOrder", mock.Anything, onCompletionDay, 7).Return(nil).Once()
			},
		},
		{
			name:           "deleted order that never completed is skipped",
			event:          events.OrderEvent{Type: events.TypeOrderDeleted, OrderID: 7, OccurredAt: publishedAt},
			setupMockStore: func(m *mocks.StoreInterface) {},
			wantErr:        service.ErrSkipped,
		},
		{
			name:           "created event is skipped",
			event:          events.OrderEvent{Type: events.TypeOrderCreated, OrderID: 7},
			setupMockStore: func(m *mocks.StoreInterface) {},
			wantErr:        service.ErrSkipped,
		},
		{
			name:           "status change is skipped",
			event:          events.OrderEvent{Type: events.TypeOrderStatusChanged, OrderID: 7, Status: "ready"},
			setupMockStore: func(m *mocks.StoreInterface) {},
			wantErr:        service.ErrSkipped,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{Store: mockStore, Log: quietLogger()}

			err := consumer.Process(context.Background(), message(t, testCase.event))

			switch {
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			case testCase.wantAnyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, service.ErrSkipped)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsumer_MalformedMessage(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{Store: mockStore, Log: quietLogger()}

	err := consumer.Process(context.Background(), kafka.Message{Value: []byte("{not json")})

	assert.ErrorIs(t, err, service.ErrSkipped)
	mockStore.AssertNotCalled(t, "RecordCompletedOrder")
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	reader := mocks.NewMessageReader(t)
	mockStore := mocks.NewStoreInterface(t)
	consumer := service.NewConsumer(reader, mockStore, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())

	completed := events.OrderEvent{
		Type:       events.TypeOrderCompleted,
		OrderID:    1,
		Total:      decimal.RequireFromString("10.00"),
		OccurredAt: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC),
	}
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("broker hiccup")).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("garbage")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(message(t, completed), nil).Once()
	reader.On("ReadMessage", mock.Anything).Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()
	mockStore.On("RecordCompletedOrder", mock.Anything, mock.MatchedBy(completed.OccurredAt.Equal), 1, mock.Anything).Return(nil).Once()

	done := make(chan struct{})
	go func() {
		consumer.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}
