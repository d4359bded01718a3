package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when form input cannot be parsed into a
// positive monetary amount.
var ErrInvalidAmount = errors.New("invalid amount")

func init() {
	// The budget service takes and returns amounts as JSON numbers, not
	// quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ParseAmount converts user-entered amount text into a decimal value,
// rounded to cents. It accepts both dot (12.34) and comma (12,34) decimal
// separators. Empty, negative, zero and non-numeric input is rejected, so
// nothing unparseable ever reaches the service.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return decimal.Zero, ErrInvalidAmount
	}
	// Normalize a decimal comma to a dot. Input with both separators
	// ("1,234.56") fails the parse below, which is intended.
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	d = d.Round(2)
	if d.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
