package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2.345", "2.34"},
		{"2.355", "2.36"},
		{"2.3451", "2.35"},
		{"-2.345", "-2.34"},
		{"10", "10"},
	}
	for _, tt := range tests {
		got := Round(MustParse(tt.in))
		assert.True(t, got.Equal(MustParse(tt.want)), "Round(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestPercent(t *testing.T) {
	got := Percent(MustParse("23.00"), decimal.NewFromInt(10))
	assert.True(t, got.Equal(MustParse("2.30")))

	got = Percent(MustParse("33.33"), MustParse("12.5"))
	assert.Equal(t, "4.17", Format(got))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("twelve")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "25.00", Format(decimal.NewFromInt(25)))
	assert.Equal(t, "20.70", Format(MustParse("20.7")))
}

func TestFixed_MarshalJSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Total    Fixed  `json:"total"`
		Discount *Fixed `json:"discount"`
		Missing  *Fixed `json:"missing"`
	}{
		Total:    Fixed(MustParse("23")),
		Discount: FixedPtr(&[]decimal.Decimal{MustParse("2.3")}[0]),
		Missing:  FixedPtr(nil),
	})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"total":"23.00","discount":"2.30","missing":null}`, string(payload))
}
