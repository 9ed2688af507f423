package domain

import (
	"strings"

	"sushi-pos/pos-svc/internal/apperr"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusCompleted,
}

// ActiveOrderStatuses keep a table from being deleted.
var ActiveOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
}

// KitchenOrderStatuses are counted as active on the dashboard.
var KitchenOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	v := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range OrderStatuses {
		if st == v {
			return v, nil
		}
	}
	return "", apperr.Validation("Invalid status. Must be one of: %s", joinStatuses(OrderStatuses))
}

func (s OrderStatus) IsActive() bool {
	for _, st := range ActiveOrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// ValidateOrderTransition allows any move between non-terminal states.
// Completed and cancelled orders only accept their own status again.
func ValidateOrderTransition(from, to OrderStatus) error {
	if from.IsTerminal() && from != to {
		return apperr.InvalidOperation("Cannot change status of a %s order to %s", from, to)
	}
	return nil
}

type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
	TableStatusCleaning  TableStatus = "cleaning"
)

var TableStatuses = []TableStatus{
	TableStatusAvailable,
	TableStatusOccupied,
	TableStatusReserved,
	TableStatusCleaning,
}

func ParseTableStatus(s string) (TableStatus, error) {
	v := TableStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range TableStatuses {
		if st == v {
			return v, nil
		}
	}
	names := make([]string, len(TableStatuses))
	for i, st := range TableStatuses {
		names[i] = string(st)
	}
	return "", apperr.Validation("Invalid status. Must be one of: %s", strings.Join(names, ", "))
}

// MealPeriod is the current service period of the restaurant.
type MealPeriod string

const (
	MealPeriodLunch  MealPeriod = "LUNCH"
	MealPeriodDinner MealPeriod = "DINNER"
)

func ParseMealPeriod(s string) (MealPeriod, error) {
	switch MealPeriod(strings.ToUpper(strings.TrimSpace(s))) {
	case MealPeriodLunch:
		return MealPeriodLunch, nil
	case MealPeriodDinner:
		return MealPeriodDinner, nil
	}
	return "", apperr.Validation("Invalid meal period. Must be one of: LUNCH, DINNER")
}

// MenuMealPeriod tags when a menu item is served.
type MenuMealPeriod string

const (
	MenuMealPeriodLunch  MenuMealPeriod = "LUNCH"
	MenuMealPeriodDinner MenuMealPeriod = "DINNER"
	MenuMealPeriodBoth   MenuMealPeriod = "BOTH"
)

func ParseMenuMealPeriod(s string) (MenuMealPeriod, error) {
	switch MenuMealPeriod(strings.ToUpper(strings.TrimSpace(s))) {
	case MenuMealPeriodLunch:
		return MenuMealPeriodLunch, nil
	case MenuMealPeriodDinner:
		return MenuMealPeriodDinner, nil
	case MenuMealPeriodBoth:
		return MenuMealPeriodBoth, nil
	}
	return "", apperr.Validation("Invalid meal period. Must be one of: LUNCH, DINNER, BOTH")
}

type DiscountType string

const (
	DiscountFixed   DiscountType = "fixed"
	DiscountPercent DiscountType = "percent"
)

func ParseDiscountType(s string) (DiscountType, error) {
	switch DiscountType(strings.ToLower(strings.TrimSpace(s))) {
	case DiscountFixed:
		return DiscountFixed, nil
	case DiscountPercent:
		return DiscountPercent, nil
	}
	return "", apperr.Validation("Invalid discount type. Must be one of: fixed, percent")
}

func joinStatuses(statuses []OrderStatus) string {
	names := make([]string, len(statuses))
	for i, st := range statuses {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}
