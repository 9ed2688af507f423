package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sushi-pos/pos-svc/internal/apperr"
)

func TestParseOrderStatus(t *testing.T) {
	got, err := ParseOrderStatus("PREPARING")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusPreparing, got)

	_, err = ParseOrderStatus("served")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestParseTableStatus(t *testing.T) {
	got, err := ParseTableStatus(" Cleaning ")
	assert.NoError(t, err)
	assert.Equal(t, TableStatusCleaning, got)

	_, err = ParseTableStatus("broken")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestParseMealPeriods(t *testing.T) {
	p, err := ParseMealPeriod("lunch")
	assert.NoError(t, err)
	assert.Equal(t, MealPeriodLunch, p)
	_, err = ParseMealPeriod("BOTH")
	assert.Error(t, err)

	mp, err := ParseMenuMealPeriod("both")
	assert.NoError(t, err)
	assert.Equal(t, MenuMealPeriodBoth, mp)
}

func TestParseDiscountType(t *testing.T) {
	d, err := ParseDiscountType("Percent")
	assert.NoError(t, err)
	assert.Equal(t, DiscountPercent, d)
	_, err = ParseDiscountType("coupon")
	assert.Error(t, err)
}

func TestValidateOrderTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusPending, OrderStatusPreparing, true},
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusReady, OrderStatusPending, true},
		{OrderStatusDelivered, OrderStatusCancelled, true},
		{OrderStatusCompleted, OrderStatusCompleted, true},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPreparing, false},
	}
	for _, tt := range tests {
		err := ValidateOrderTransition(tt.from, tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.Equal(t, apperr.KindInvalidOperation, apperr.KindOf(err), "%s -> %s", tt.from, tt.to)
		}
	}
}

func TestOrderStatusIsActive(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsActive())
	assert.True(t, OrderStatusPreparing.IsActive())
	assert.False(t, OrderStatusCancelled.IsActive())
	assert.False(t, OrderStatusCompleted.IsActive())
}

func TestSettingsAYCEPriceFor(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "20.00", s.AYCEPriceFor(MealPeriodLunch).StringFixed(2))
	assert.Equal(t, "25.00", s.AYCEPriceFor(MealPeriodDinner).StringFixed(2))
	assert.Equal(t, MealPeriodDinner, s.CurrentMealPeriod)
}
