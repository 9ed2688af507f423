// Package events is the contract between pos-svc, which publishes order
// lifecycle events, and agg-svc, which folds them into revenue counters.
package events

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeOrderCreated       = "order_created"
	TypeOrderStatusChanged = "order_status_changed"
	TypeOrderCompleted     = "order_completed"
	// TypeOrderDeleted is published when a completed order is removed, so
	// its revenue can be taken back out of the day it was counted on.
	TypeOrderDeleted = "order_deleted"
)

const DateLayout = "2006-01-02"

// CounterTTL bounds how long daily counters are kept in Redis.
const CounterTTL = 30 * 24 * time.Hour

type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     int             `json:"order_id"`
	TableID     int             `json:"table_id"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	OccurredAt  time.Time       `json:"occurred_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// RevenueDay is the UTC day the order's revenue belongs to: its completion
// time when known, otherwise the time of the event.
func (e OrderEvent) RevenueDay() time.Time {
	if e.CompletedAt != nil {
		return e.CompletedAt.UTC()
	}
	return e.OccurredAt.UTC()
}

// DailyRevenueKey names the hash of order id to total in cents for day.
// The number of fields is the day's completed order count.
func DailyRevenueKey(day time.Time) string {
	return "revenue:daily:" + day.Format(DateLayout)
}

// OrderField is the hash field of one order.
func OrderField(orderID int) string {
	return strconv.Itoa(orderID)
}

// Cents converts an amount to whole cents, rounding half to even.
func Cents(d decimal.Decimal) int64 {
	return d.RoundBank(2).Shift(2).IntPart()
}

// FromCents is the inverse of Cents.
func FromCents(c int64) decimal.Decimal {
	return decimal.NewFromInt(c).Shift(-2)
}
