// Package money holds the decimal helpers used wherever prices are combined.
// Every computed amount is rounded half-to-even to two places.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const Places = 2

var hundred = decimal.NewFromInt(100)

// Round applies the single rounding policy of the system.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(Places)
}

// Parse reads a decimal string such as "12.50".
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// MustParse is Parse for constants.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Percent returns base * pct / 100 without rounding.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

func IsNegative(d decimal.Decimal) bool {
	return d.Sign() < 0
}

// Format renders an amount with exactly two fractional digits.
func Format(d decimal.Decimal) string {
	return Round(d).StringFixedBank(Places)
}

// Fixed is an amount that marshals as a JSON string with exactly two
// fractional digits, e.g. "20.70" where decimal.Decimal would give "20.7".
type Fixed decimal.Decimal

func (f Fixed) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Format(decimal.Decimal(f)) + `"`), nil
}

// FixedPtr keeps a nil amount nil so it still renders as null.
func FixedPtr(d *decimal.Decimal) *Fixed {
	if d == nil {
		return nil
	}
	f := Fixed(*d)
	return &f
}
