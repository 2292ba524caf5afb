// Package amount converts between the API's decimal strings and the
// minor-unit integers used everywhere else.
package amount

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Parse converts a decimal string like "12.50" to minor units (1250).
// More than two decimal places is an error; callers surface it as a 400.
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	minor := d.Shift(2)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	return minor.IntPart(), nil
}

// Format renders minor units as a two-decimal string: 1250 -> "12.50".
func Format(minor int64) string {
	return decimal.NewFromInt(minor).Shift(-2).StringFixed(2)
}
