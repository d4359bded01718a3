package cli

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/budgielabs/budgie/internal/common"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{
			name:     "whole amount",
			amount:   decimal.NewFromInt(150),
			currency: "USD",
			want:     "150.00 USD",
		},
		{
			name:     "cents preserved",
			amount:   decimal.NewFromFloat(25.5),
			currency: "EUR",
			want:     "25.50 EUR",
		},
		{
			name:     "zero",
			amount:   decimal.Zero,
			currency: "USD",
			want:     "0.00 USD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.amount, tt.currency))
		})
	}
}

func TestSignedMoney(t *testing.T) {
	amount := decimal.NewFromFloat(42.5)
	assert.Equal(t, "+42.50 USD", SignedMoney(amount, "USD", true))
	assert.Equal(t, "-42.50 USD", SignedMoney(amount, "USD", false))
}

func TestFormatErrorMarksRetriable(t *testing.T) {
	retriable := common.Retriable(errors.New("connection reset"))
	assert.Contains(t, FormatError(retriable), "retry may succeed")

	fatal := errors.New("category is required")
	assert.NotContains(t, FormatError(fatal), "retry may succeed")
	assert.Contains(t, FormatError(fatal), "category is required")
}
