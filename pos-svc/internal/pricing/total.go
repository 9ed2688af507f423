// Package pricing computes order totals. It never touches storage; callers
// load the order aggregate (items with their modifiers and the discount)
// and pass it in.
package pricing

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"sushi-pos/pos-svc/internal/domain"
	"sushi-pos/pos-svc/internal/money"
)

// AYCESubtotal is charged for every all-you-can-eat order regardless of the
// order's own ayce_price or the configured meal-period prices.
var AYCESubtotal = money.MustParse("25.00")

// MaxPercent caps percentage discounts.
var MaxPercent = decimal.NewFromInt(100)

type Breakdown struct {
	Subtotal       decimal.Decimal  `json:"subtotal"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal  `json:"total"`
	AYCEPrice      *decimal.Decimal `json:"ayce_price"`
	IsAYCE         bool             `json:"is_ayce"`
}

// MarshalJSON renders every amount with two fractional digits.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Subtotal       money.Fixed  `json:"subtotal"`
		DiscountAmount *money.Fixed `json:"discount_amount"`
		Total          money.Fixed  `json:"total"`
		AYCEPrice      *money.Fixed `json:"ayce_price"`
		IsAYCE         bool         `json:"is_ayce"`
	}{
		Subtotal:       money.Fixed(b.Subtotal),
		DiscountAmount: money.FixedPtr(b.DiscountAmount),
		Total:          money.Fixed(b.Total),
		AYCEPrice:      money.FixedPtr(b.AYCEPrice),
		IsAYCE:         b.IsAYCE,
	})
}

// Calculate returns the price breakdown of order. A discount larger than
// the subtotal yields a negative total.
func Calculate(order *domain.Order) Breakdown {
	var b Breakdown

	subtotal := Subtotal(order)

	var discount *decimal.Decimal
	if order.Discount != nil {
		d := DiscountAmount(order.Discount, subtotal)
		discount = &d
	}

	total := subtotal
	if discount != nil {
		total = total.Sub(*discount)
	}

	b.Subtotal = money.Round(subtotal)
	if discount != nil {
		rounded := money.Round(*discount)
		b.DiscountAmount = &rounded
	}
	b.Total = money.Round(total)

	if order.AYCEOrder {
		price := AYCESubtotal
		b.AYCEPrice = &price
		b.IsAYCE = true
	}
	return b
}

// Subtotal is the pre-discount amount: the AYCE constant, or the sum of
// (unit price + modifier prices) * quantity over all items.
func Subtotal(order *domain.Order) decimal.Decimal {
	if order.AYCEOrder {
		return AYCESubtotal
	}
	subtotal := decimal.Zero
	for _, item := range order.Items {
		subtotal = subtotal.Add(ItemTotal(item))
	}
	return subtotal
}

func ItemTotal(item domain.OrderItem) decimal.Decimal {
	each := item.UnitPrice
	for _, m := range item.Modifiers {
		each = each.Add(m.Price)
	}
	return each.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

func DiscountAmount(d *domain.Discount, subtotal decimal.Decimal) decimal.Decimal {
	if d.Type == domain.DiscountPercent {
		return money.Percent(subtotal, d.Value)
	}
	return d.Value
}
