package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgielabs/budgie/internal/api"
	"github.com/budgielabs/budgie/internal/model"
)

func TestPeriodFromFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    model.Period
		wantErr bool
	}{
		{
			name:  "empty defaults to monthly",
			value: "",
			want:  model.PeriodMonthly,
		},
		{
			name:  "weekly",
			value: "weekly",
			want:  model.PeriodWeekly,
		},
		{
			name:  "yearly",
			value: "yearly",
			want:  model.PeriodYearly,
		},
		{
			name:    "unknown period",
			value:   "fortnightly",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := periodFromFlag(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveCategory(t *testing.T) {
	mock := api.NewMock()
	mock.CategoriesByTypeFn = func(_ context.Context, ct model.TransactionType) ([]model.Category, error) {
		if ct != model.TypeExpense {
			return []model.Category{}, nil
		}
		return []model.Category{
			{ID: "c-groc", Name: "Groceries", Type: model.TypeExpense},
			{ID: "c-rent", Name: "Rent", Type: model.TypeExpense},
		}, nil
	}
	ctx := context.Background()

	t.Run("matches by ID", func(t *testing.T) {
		cat, err := resolveCategory(ctx, mock, model.TypeExpense, "c-rent")
		require.NoError(t, err)
		assert.Equal(t, "Rent", cat.Name)
	})

	t.Run("matches by name case-insensitively", func(t *testing.T) {
		cat, err := resolveCategory(ctx, mock, model.TypeExpense, "groceries")
		require.NoError(t, err)
		assert.Equal(t, "c-groc", cat.ID)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := resolveCategory(ctx, mock, model.TypeExpense, "Travel")
		assert.ErrorContains(t, err, "no expense category matching")
	})

	t.Run("empty value", func(t *testing.T) {
		_, err := resolveCategory(ctx, mock, model.TypeExpense, "")
		assert.ErrorContains(t, err, "category is required")
	})

	t.Run("wrong type finds nothing", func(t *testing.T) {
		_, err := resolveCategory(ctx, mock, model.TypeIncome, "Groceries")
		assert.Error(t, err)
	})
}

func TestDefaultCurrencyFallsBack(t *testing.T) {
	mock := api.NewMock()
	ctx := context.Background()

	t.Run("uses service default", func(t *testing.T) {
		mock.SettingsFn = func(_ context.Context) (model.Settings, error) {
			return model.Settings{DefaultCurrency: "EUR"}, nil
		}
		assert.Equal(t, "EUR", defaultCurrency(ctx, mock))
	})

	t.Run("falls back when settings are empty", func(t *testing.T) {
		mock.SettingsFn = func(_ context.Context) (model.Settings, error) {
			return model.Settings{}, nil
		}
		assert.Equal(t, model.DefaultCurrency, defaultCurrency(ctx, mock))
	})
}
