package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain amount",
			input: "25.50",
			want:  "25.5",
		},
		{
			name:  "integer amount",
			input: "3000",
			want:  "3000",
		},
		{
			name:  "comma decimal separator",
			input: "12,34",
			want:  "12.34",
		},
		{
			name:  "surrounding whitespace",
			input: "  9.99 ",
			want:  "9.99",
		},
		{
			name:  "rounds to cents",
			input: "12.346",
			want:  "12.35",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			input:   "12.34x",
			wantErr: true,
		},
		{
			name:    "negative",
			input:   "-5",
			wantErr: true,
		},
		{
			name:    "explicit positive sign",
			input:   "+5",
			wantErr: true,
		},
		{
			name:    "zero",
			input:   "0",
			wantErr: true,
		},
		{
			name:    "rounds down to zero",
			input:   "0.001",
			wantErr: true,
		},
		{
			name:    "both separators",
			input:   "1,234.56",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAmountMarshalsAsNumber(t *testing.T) {
	// The service expects "amount": 25.5, not "amount": "25.5".
	req := TransactionRequest{
		Type:       TypeExpense,
		CategoryID: "cat-1",
		Currency:   "USD",
		Date:       NewDate(2024, 3, 15),
		Amount:     decimal.RequireFromString("25.5"),
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"amount":25.5`)
	assert.Contains(t, string(data), `"date":"2024-03-15"`)
}
