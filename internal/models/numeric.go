package models

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value that tolerates the loose typing of the upstream
// API: numbers, numeric strings, null and plain garbage all unmarshal without
// error, with anything unparseable coerced to zero.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal value.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// AmountFromInt builds an Amount from whole rupees.
func AmountFromInt(n int64) Amount {
	return Amount{Decimal: decimal.NewFromInt(n)}
}

// UnmarshalJSON accepts numbers, quoted numbers, null and malformed text.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	s = strings.Trim(s, `"`)
	a.Decimal = ParseAmount(s)
	return nil
}

// ParseAmount converts a string amount to a decimal, stripping currency
// decoration and thousand separators. Unparseable input yields zero, never an
// error.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Count is a non-negative integer field that arrives as either a JSON number
// or a numeric string, sometimes with trailing junk.
type Count int

// UnmarshalJSON accepts numbers, quoted numbers, null and malformed text.
func (c *Count) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	*c = Count(ParseCount(s))
	return nil
}

// ParseCount reads the leading digits of s, mirroring how the upstream forms
// parse lenient integer fields. Anything without a leading digit counts as
// zero.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}
