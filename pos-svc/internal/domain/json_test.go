package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_MarshalJSONFixesAmounts(t *testing.T) {
	order := Order{
		ID:          1,
		TableID:     3,
		Status:      OrderStatusReady,
		AYCEPrice:   decimal.NewFromInt(25),
		TotalAmount: decimal.RequireFromString("20.7"),
		Items: []OrderItem{{
			ID:        11,
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(10),
			Modifiers: []Modifier{{ID: 5, Price: decimal.RequireFromString("1.5")}},
		}},
		Discount: &Discount{Type: DiscountPercent, Value: decimal.NewFromInt(10)},
	}

	payload, err := json.Marshal(order)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, "25.00", got["ayce_price"])
	assert.Equal(t, "20.70", got["total_amount"])
	assert.Equal(t, float64(3), got["table_id"])
	assert.Equal(t, "ready", got["status"])

	item := got["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "10.00", item["unit_price"])
	assert.Equal(t, "1.50", item["modifiers"].([]interface{})[0].(map[string]interface{})["price"])
	assert.Equal(t, "10.00", got["discount"].(map[string]interface{})["value"])
}

func TestSettings_JSONRoundTrip(t *testing.T) {
	s := DefaultSettings()

	payload, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"ayce_lunch_price":"20.00"`)
	assert.Contains(t, string(payload), `"ayce_dinner_price":"25.00"`)

	var back Settings
	require.NoError(t, json.Unmarshal(payload, &back))
	assert.True(t, back.AYCEDinnerPrice.Equal(s.AYCEDinnerPrice))
	assert.Equal(t, s.RestaurantName, back.RestaurantName)
}

func TestDailyRevenue_MarshalJSON(t *testing.T) {
	payload, err := json.Marshal(&DailyRevenue{Date: "2024-03-09", Revenue: decimal.RequireFromString("120.5"), Source: "redis"})

	require.NoError(t, err)
	assert.Contains(t, string(payload), `"revenue":"120.50"`)
	assert.Contains(t, string(payload), `"date":"2024-03-09"`)
}
