package domain

import (
	"encoding/json"

	"sushi-pos/pos-svc/internal/money"
)

// The MarshalJSON methods below render every amount with two fractional
// digits. Each shadows the money fields of an alias type, which has no
// methods and so does not recurse.

func (m MenuItem) MarshalJSON() ([]byte, error) {
	type alias MenuItem
	return json.Marshal(struct {
		alias
		Price money.Fixed `json:"price"`
	}{alias(m), money.Fixed(m.Price)})
}

func (m Modifier) MarshalJSON() ([]byte, error) {
	type alias Modifier
	return json.Marshal(struct {
		alias
		Price money.Fixed `json:"price"`
	}{alias(m), money.Fixed(m.Price)})
}

func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	return json.Marshal(struct {
		alias
		AYCEPrice   money.Fixed `json:"ayce_price"`
		TotalAmount money.Fixed `json:"total_amount"`
	}{alias(o), money.Fixed(o.AYCEPrice), money.Fixed(o.TotalAmount)})
}

func (i OrderItem) MarshalJSON() ([]byte, error) {
	type alias OrderItem
	return json.Marshal(struct {
		alias
		UnitPrice money.Fixed `json:"unit_price"`
	}{alias(i), money.Fixed(i.UnitPrice)})
}

func (d Discount) MarshalJSON() ([]byte, error) {
	type alias Discount
	return json.Marshal(struct {
		alias
		Value money.Fixed `json:"value"`
	}{alias(d), money.Fixed(d.Value)})
}

func (s Settings) MarshalJSON() ([]byte, error) {
	type alias Settings
	return json.Marshal(struct {
		alias
		AYCELunchPrice  money.Fixed `json:"ayce_lunch_price"`
		AYCEDinnerPrice money.Fixed `json:"ayce_dinner_price"`
	}{alias(s), money.Fixed(s.AYCELunchPrice), money.Fixed(s.AYCEDinnerPrice)})
}

func (s DashboardStats) MarshalJSON() ([]byte, error) {
	type alias DashboardStats
	return json.Marshal(struct {
		alias
		TotalRevenue money.Fixed `json:"total_revenue"`
	}{alias(s), money.Fixed(s.TotalRevenue)})
}

func (r RecentOrder) MarshalJSON() ([]byte, error) {
	type alias RecentOrder
	return json.Marshal(struct {
		alias
		Total money.Fixed `json:"total"`
	}{alias(r), money.Fixed(r.Total)})
}

func (r DailyRevenue) MarshalJSON() ([]byte, error) {
	type alias DailyRevenue
	return json.Marshal(struct {
		alias
		Revenue money.Fixed `json:"revenue"`
	}{alias(r), money.Fixed(r.Revenue)})
}
