package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItemFilter struct {
	Skip       int
	Limit      int
	CategoryID *int
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

type ModifierFilter struct {
	CategoryID    *int
	AvailableOnly bool
}

// OrderFilter selects orders. A zero Limit means no limit.
type OrderFilter struct {
	Skip            int
	Limit           int
	Status          *OrderStatus
	TableID         *int
	CompletedSince  *time.Time
	CompletedBefore *time.Time
}
