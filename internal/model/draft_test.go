package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionDraftValidate(t *testing.T) {
	valid := TransactionDraft{
		Type:        TypeExpense,
		Amount:      "25.50",
		CategoryID:  "cat-food",
		Description: "Lunch at restaurant",
		Currency:    "USD",
		Date:        NewDate(2024, 3, 15),
	}

	t.Run("valid draft", func(t *testing.T) {
		req, err := valid.Validate()
		require.NoError(t, err)
		assert.Equal(t, TypeExpense, req.Type)
		assert.Equal(t, "25.5", req.Amount.String())
		assert.Equal(t, "cat-food", req.CategoryID)
		assert.Equal(t, "2024-03-15", req.Date.String())
	})

	tests := []struct {
		mutate func(*TransactionDraft)
		name   string
		errMsg string
	}{
		{
			name:   "non-numeric amount",
			mutate: func(d *TransactionDraft) { d.Amount = "abc" },
			errMsg: "invalid amount",
		},
		{
			name:   "empty amount",
			mutate: func(d *TransactionDraft) { d.Amount = "" },
			errMsg: "invalid amount",
		},
		{
			name:   "negative amount",
			mutate: func(d *TransactionDraft) { d.Amount = "-3" },
			errMsg: "invalid amount",
		},
		{
			name:   "unknown type",
			mutate: func(d *TransactionDraft) { d.Type = "transfer" },
			errMsg: "invalid transaction type",
		},
		{
			name:   "missing category",
			mutate: func(d *TransactionDraft) { d.CategoryID = "" },
			errMsg: "category is required",
		},
		{
			name:   "missing date",
			mutate: func(d *TransactionDraft) { d.Date = Date{} },
			errMsg: "date is required",
		},
		{
			name:   "missing currency",
			mutate: func(d *TransactionDraft) { d.Currency = "" },
			errMsg: "currency is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)
			_, err := draft.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCategoryDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   CategoryDraft
		wantErr bool
	}{
		{
			name:  "valid with color",
			draft: CategoryDraft{Name: "Food", Color: "#FF6B6B", Type: TypeExpense},
		},
		{
			name:  "valid without color",
			draft: CategoryDraft{Name: "Salary", Type: TypeIncome},
		},
		{
			name:    "missing name",
			draft:   CategoryDraft{Type: TypeExpense},
			wantErr: true,
		},
		{
			name:    "bad color",
			draft:   CategoryDraft{Name: "Food", Color: "red", Type: TypeExpense},
			wantErr: true,
		},
		{
			name:    "short hex color",
			draft:   CategoryDraft{Name: "Food", Color: "#FFF", Type: TypeExpense},
			wantErr: true,
		},
		{
			name:    "bad type",
			draft:   CategoryDraft{Name: "Food", Type: "both"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.draft.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.draft.Name, req.Name)
			assert.Equal(t, tt.draft.Color, req.Color)
		})
	}
}

func TestBudgetDraftValidate(t *testing.T) {
	valid := BudgetDraft{
		CategoryID: "cat-food",
		Amount:     "200",
		Currency:   "USD",
		Period:     PeriodMonthly,
	}

	t.Run("valid draft", func(t *testing.T) {
		req, err := valid.Validate()
		require.NoError(t, err)
		assert.Equal(t, PeriodMonthly, req.Period)
		assert.Equal(t, "200", req.Amount.String())
	})

	t.Run("bad period", func(t *testing.T) {
		draft := valid
		draft.Period = "quarterly"
		_, err := draft.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid period")
	})

	t.Run("bad amount", func(t *testing.T) {
		draft := valid
		draft.Amount = "lots"
		_, err := draft.Validate()
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("missing category", func(t *testing.T) {
		draft := valid
		draft.CategoryID = ""
		_, err := draft.Validate()
		require.Error(t, err)
	})
}
