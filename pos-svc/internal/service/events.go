package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"sushi-pos/events"
	"sushi-pos/pos-svc/internal/domain"
	"sushi-pos/pos-svc/internal/pricing"
)

// orderEvents publishes order lifecycle events after the change is
// committed. Failures are logged and never reach the caller.
type orderEvents struct {
	publisher EventPublisher
	log       *log.Entry
}

func (e orderEvents) enabled() bool {
	return e.publisher != nil
}

func (e orderEvents) publish(ctx context.Context, typ string, o *domain.Order, now time.Time) {
	if e.publisher == nil {
		return
	}
	ev := events.OrderEvent{
		Type:       typ,
		OrderID:    o.ID,
		TableID:    o.TableID,
		Status:     string(o.Status),
		Total:      pricing.Calculate(o).Total,
		OccurredAt: now.UTC(),
	}
	if o.CompletionTime != nil {
		completed := o.CompletionTime.UTC()
		ev.CompletedAt = &completed
	}
	if err := e.publisher.PublishOrderEvent(ctx, ev); err != nil {
		e.log.WithError(err).WithFields(log.Fields{"order_id": o.ID, "type": typ}).Warn("order event not published")
	}
}

// publishDeleted announces removed orders whose revenue was already counted.
func (e orderEvents) publishDeleted(ctx context.Context, orders []domain.Order, now time.Time) {
	for i := range orders {
		if orders[i].Status == domain.OrderStatusCompleted {
			e.publish(ctx, events.TypeOrderDeleted, &orders[i], now)
		}
	}
}
