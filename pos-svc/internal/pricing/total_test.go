package pricing

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sushi-pos/pos-svc/internal/domain"
	"sushi-pos/pos-svc/internal/money"
)

func dec(s string) decimal.Decimal { return money.MustParse(s) }

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestCalculate_PercentDiscountScenario(t *testing.T) {
	order := &domain.Order{
		Items: []domain.OrderItem{{
			Quantity:  2,
			UnitPrice: dec("10.00"),
			Modifiers: []domain.Modifier{{Price: dec("1.50")}},
		}},
		Discount: &domain.Discount{Type: domain.DiscountPercent, Value: dec("10")},
	}

	b := Calculate(order)

	assertAmount(t, "23.00", b.Subtotal)
	require.NotNil(t, b.DiscountAmount)
	assertAmount(t, "2.30", *b.DiscountAmount)
	assertAmount(t, "20.70", b.Total)
	assert.False(t, b.IsAYCE)
	assert.Nil(t, b.AYCEPrice)
}

func TestCalculate_AYCEWithFixedDiscount(t *testing.T) {
	order := &domain.Order{
		AYCEOrder: true,
		AYCEPrice: dec("20.00"),
		Items: []domain.OrderItem{
			{Quantity: 5, UnitPrice: dec("12.00")},
			{Quantity: 1, UnitPrice: dec("3.00"), Modifiers: []domain.Modifier{{Price: dec("9.99")}}},
		},
		Discount: &domain.Discount{Type: domain.DiscountFixed, Value: dec("5.00")},
	}

	b := Calculate(order)

	assertAmount(t, "25.00", b.Subtotal)
	require.NotNil(t, b.DiscountAmount)
	assertAmount(t, "5.00", *b.DiscountAmount)
	assertAmount(t, "20.00", b.Total)
	assert.True(t, b.IsAYCE)
	require.NotNil(t, b.AYCEPrice)
	assertAmount(t, "25.00", *b.AYCEPrice)
}

func TestCalculate_NoDiscount(t *testing.T) {
	order := &domain.Order{
		Items: []domain.OrderItem{
			{Quantity: 3, UnitPrice: dec("4.25")},
			{Quantity: 1, UnitPrice: dec("8.00"), Modifiers: []domain.Modifier{{Price: dec("0.50")}, {Price: dec("0")}}},
		},
	}

	b := Calculate(order)

	assertAmount(t, "21.25", b.Subtotal)
	assert.Nil(t, b.DiscountAmount)
	assert.True(t, b.Subtotal.Equal(b.Total))
}

func TestCalculate_EmptyOrder(t *testing.T) {
	b := Calculate(&domain.Order{})
	assert.True(t, b.Subtotal.IsZero())
	assert.True(t, b.Total.IsZero())
}

func TestCalculate_DiscountLargerThanSubtotalGoesNegative(t *testing.T) {
	order := &domain.Order{
		Items:    []domain.OrderItem{{Quantity: 1, UnitPrice: dec("3.00")}},
		Discount: &domain.Discount{Type: domain.DiscountFixed, Value: dec("5.00")},
	}

	b := Calculate(order)

	assertAmount(t, "-2.00", b.Total)
}

func TestCalculate_PercentRoundsHalfEven(t *testing.T) {
	order := &domain.Order{
		Items:    []domain.OrderItem{{Quantity: 1, UnitPrice: dec("0.25")}},
		Discount: &domain.Discount{Type: domain.DiscountPercent, Value: dec("10")},
	}

	b := Calculate(order)

	// 0.025 rounds to even
	require.NotNil(t, b.DiscountAmount)
	assertAmount(t, "0.02", *b.DiscountAmount)
	// 0.225 rounds to even
	assertAmount(t, "0.22", b.Total)
}

func TestCalculate_SubtotalMatchesItemFormula(t *testing.T) {
	items := []domain.OrderItem{
		{Quantity: 2, UnitPrice: dec("7.10"), Modifiers: []domain.Modifier{{Price: dec("0.45")}}},
		{Quantity: 4, UnitPrice: dec("1.99")},
		{Quantity: 1, UnitPrice: dec("15.00"), Modifiers: []domain.Modifier{{Price: dec("2.00")}, {Price: dec("-1.00")}}},
	}
	want := decimal.Zero
	for _, it := range items {
		each := it.UnitPrice
		for _, m := range it.Modifiers {
			each = each.Add(m.Price)
		}
		want = want.Add(each.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	b := Calculate(&domain.Order{Items: items})

	assert.True(t, money.Round(want).Equal(b.Subtotal))
	assertAmount(t, "39.06", b.Subtotal)
}

func TestBreakdown_JSONHasTwoDecimals(t *testing.T) {
	order := &domain.Order{
		Items: []domain.OrderItem{{
			Quantity:  2,
			UnitPrice: dec("10"),
			Modifiers: []domain.Modifier{{Price: dec("1.5")}},
		}},
		Discount: &domain.Discount{Type: domain.DiscountPercent, Value: dec("10")},
	}

	payload, err := json.Marshal(Calculate(order))
	require.NoError(t, err)
	assert.JSONEq(t, `{"subtotal":"23.00","discount_amount":"2.30","total":"20.70","ayce_price":null,"is_ayce":false}`,
		string(payload))

	payload, err = json.Marshal(Calculate(&domain.Order{AYCEOrder: true}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"subtotal":"25.00","discount_amount":null,"total":"25.00","ayce_price":"25.00","is_ayce":true}`,
		string(payload))
}
