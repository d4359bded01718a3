package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgielabs/budgie/internal/api"
	"github.com/budgielabs/budgie/internal/common"
	"github.com/budgielabs/budgie/internal/model"
)

func tx(id string, txType model.TransactionType, amount int64) model.Transaction {
	return model.Transaction{
		ID:       id,
		Type:     txType,
		Amount:   decimal.NewFromInt(amount),
		Currency: "USD",
		Date:     model.NewDate(2024, 3, 15),
	}
}

func TestSummaryTotals(t *testing.T) {
	mock := api.NewMock()
	mock.TransactionsFn = func(_ context.Context) ([]model.Transaction, error) {
		return []model.Transaction{
			tx("t1", model.TypeIncome, 100),
			tx("t2", model.TypeIncome, 50),
			tx("t3", model.TypeExpense, 30),
		}, nil
	}

	store := New(mock)
	require.NoError(t, store.Load(context.Background(), ReadTransactions))

	summary := store.Summary()
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(150)), "income was %s", summary.TotalIncome)
	assert.True(t, summary.TotalExpenses.Equal(decimal.NewFromInt(30)), "expenses were %s", summary.TotalExpenses)
	assert.True(t, summary.Net.Equal(decimal.NewFromInt(120)), "net was %s", summary.Net)
	assert.Equal(t, 3, summary.Count)
}

func TestSetPeriodInvalidatesOnlyAggregates(t *testing.T) {
	mock := api.NewMock()
	store := New(mock)

	assert.Equal(t, model.PeriodMonthly, store.Period())

	invalidated := store.SetPeriod(model.PeriodWeekly)
	assert.Equal(t, []ReadModel{ReadOverview, ReadSpending}, invalidated)
	assert.Equal(t, model.PeriodWeekly, store.Period())

	require.NoError(t, store.Refresh(context.Background(), invalidated...))

	assert.Equal(t, []model.Period{model.PeriodWeekly}, mock.BudgetOverviewCalls)
	assert.Equal(t, []model.Period{model.PeriodWeekly}, mock.SpendingByCategoryCalls)
	assert.Equal(t, 0, mock.TransactionsCalls)
	assert.Equal(t, 0, mock.CategoriesCalls)
	assert.Equal(t, 0, mock.SettingsCalls)

	// Re-selecting the current period refreshes nothing.
	assert.Nil(t, store.SetPeriod(model.PeriodWeekly))
}

func TestCommandInvalidationTable(t *testing.T) {
	tests := []struct {
		cmd  Command
		want []ReadModel
	}{
		{
			cmd:  CreateTransaction{},
			want: []ReadModel{ReadTransactions, ReadOverview, ReadSpending},
		},
		{
			cmd:  CreateCategory{},
			want: []ReadModel{ReadCategories},
		},
		{
			cmd:  CreateBudget{},
			want: []ReadModel{ReadOverview},
		},
		{
			cmd:  DeleteTransaction{},
			want: []ReadModel{ReadTransactions, ReadOverview, ReadSpending},
		},
		{
			cmd:  DeleteCategory{},
			want: []ReadModel{ReadCategories},
		},
		{
			cmd:  DeleteBudget{},
			want: []ReadModel{ReadOverview},
		},
		{
			cmd:  UpdateDefaultCurrency{},
			want: []ReadModel{ReadSettings},
		},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.Invalidates())
		})
	}
}

func TestDeleteTransactionThenRefresh(t *testing.T) {
	var mu sync.Mutex
	held := []model.Transaction{
		tx("t1", model.TypeExpense, 30),
		tx("t2", model.TypeIncome, 100),
	}

	mock := api.NewMock()
	mock.TransactionsFn = func(_ context.Context) ([]model.Transaction, error) {
		mu.Lock()
		defer mu.Unlock()
		out := make([]model.Transaction, len(held))
		copy(out, held)
		return out, nil
	}
	mock.DeleteTransactionFn = func(_ context.Context, id string) error {
		mu.Lock()
		defer mu.Unlock()
		for i, item := range held {
			if item.ID == id {
				held = append(held[:i], held[i+1:]...)
				return nil
			}
		}
		return common.ErrNotFound
	}

	store := New(mock)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx, ReadTransactions))
	require.Len(t, store.Transactions(), 2)

	invalidated, err := store.Dispatch(ctx, DeleteTransaction{ID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, []ReadModel{ReadTransactions, ReadOverview, ReadSpending}, invalidated)

	// Nothing changed yet: no optimistic update.
	assert.Len(t, store.Transactions(), 2)

	require.NoError(t, store.Refresh(ctx, invalidated...))
	require.Len(t, store.Transactions(), 1)
	assert.Equal(t, "t2", store.Transactions()[0].ID)
	assert.Len(t, mock.BudgetOverviewCalls, 1)
	assert.Len(t, mock.SpendingByCategoryCalls, 1)
}

func TestDispatchFailureInvalidatesNothing(t *testing.T) {
	mock := api.NewMock()
	mock.DeleteTransactionFn = func(_ context.Context, _ string) error {
		return common.ErrNotFound
	}

	store := New(mock)
	invalidated, err := store.Dispatch(context.Background(), DeleteTransaction{ID: "missing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, common.SeverityFatal, common.Classify(err))
	assert.Nil(t, invalidated)
}

func TestCategoriesByType(t *testing.T) {
	mock := api.NewMock()
	mock.CategoriesFn = func(_ context.Context) ([]model.Category, error) {
		return []model.Category{
			{ID: "c1", Name: "Salary", Type: model.TypeIncome},
			{ID: "c2", Name: "Groceries", Type: model.TypeExpense},
			{ID: "c3", Name: "Rent", Type: model.TypeExpense},
		}, nil
	}

	store := New(mock)
	require.NoError(t, store.Load(context.Background(), ReadCategories))

	expense := store.CategoriesByType(model.TypeExpense)
	require.Len(t, expense, 2)
	assert.Equal(t, "Groceries", expense[0].Name)
	assert.Equal(t, "Rent", expense[1].Name)

	income := store.CategoriesByType(model.TypeIncome)
	require.Len(t, income, 1)
	assert.Equal(t, "Salary", income[0].Name)
}

func TestInvalidDraftNeverReachesService(t *testing.T) {
	mock := api.NewMock()
	store := New(mock)

	draft := store.NewTransactionDraft()
	draft.CategoryID = "c1"
	draft.Amount = "abc"

	invalidated, err := store.Dispatch(context.Background(), CreateTransaction{Draft: draft})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	assert.Nil(t, invalidated)
	assert.Empty(t, mock.CreateTransactionCalls)
}

func TestCurrencyChangePropagatesToDrafts(t *testing.T) {
	var mu sync.Mutex
	currency := "USD"

	mock := api.NewMock()
	mock.SettingsFn = func(_ context.Context) (model.Settings, error) {
		mu.Lock()
		defer mu.Unlock()
		return model.Settings{DefaultCurrency: currency}, nil
	}
	mock.UpdateSettingsFn = func(_ context.Context, update model.SettingsUpdate) (model.Settings, error) {
		mu.Lock()
		defer mu.Unlock()
		currency = update.DefaultCurrency
		return model.Settings{DefaultCurrency: currency}, nil
	}

	store := New(mock)
	ctx := context.Background()

	assert.Equal(t, "USD", store.NewTransactionDraft().Currency)

	invalidated, err := store.Dispatch(ctx, UpdateDefaultCurrency{Code: "eur"})
	require.NoError(t, err)
	assert.Equal(t, []ReadModel{ReadSettings}, invalidated)
	require.Len(t, mock.UpdateSettingsCalls, 1)
	assert.Equal(t, "EUR", mock.UpdateSettingsCalls[0].DefaultCurrency)

	require.NoError(t, store.Refresh(ctx, invalidated...))
	assert.Equal(t, "EUR", store.Settings().DefaultCurrency)
	assert.Equal(t, "EUR", store.NewTransactionDraft().Currency)
	assert.Equal(t, "EUR", store.NewBudgetDraft().Currency)
}

func TestStaleFetchDiscarded(t *testing.T) {
	firstEntered := make(chan struct{})
	release := make(chan struct{})

	var mu sync.Mutex
	calls := 0

	mock := api.NewMock()
	mock.TransactionsFn = func(_ context.Context) ([]model.Transaction, error) {
		mu.Lock()
		calls++
		call := calls
		mu.Unlock()

		if call == 1 {
			close(firstEntered)
			<-release
			return []model.Transaction{tx("old", model.TypeExpense, 10)}, nil
		}
		return []model.Transaction{tx("new", model.TypeExpense, 20)}, nil
	}

	store := New(mock)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = store.Load(ctx, ReadTransactions)
	}()

	<-firstEntered
	require.NoError(t, store.Load(ctx, ReadTransactions))

	close(release)
	wg.Wait()

	// The older fetch finished last but must not overwrite the newer one.
	require.Len(t, store.Transactions(), 1)
	assert.Equal(t, "new", store.Transactions()[0].ID)
}

func TestFetchFailureKeepsPreviousData(t *testing.T) {
	var mu sync.Mutex
	fail := false

	mock := api.NewMock()
	mock.TransactionsFn = func(_ context.Context) ([]model.Transaction, error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return nil, common.Retriable(errors.New("connection reset"))
		}
		return []model.Transaction{tx("t1", model.TypeIncome, 100)}, nil
	}

	store := New(mock)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx, ReadTransactions))
	require.Len(t, store.Transactions(), 1)

	mu.Lock()
	fail = true
	mu.Unlock()

	err := store.Load(ctx, ReadTransactions)
	require.Error(t, err)
	assert.Equal(t, common.SeverityRetriable, common.Classify(err))

	// Stale data beats no data.
	require.Len(t, store.Transactions(), 1)
	assert.Equal(t, "t1", store.Transactions()[0].ID)
}

func TestLoadScopesAggregatesToPeriod(t *testing.T) {
	mock := api.NewMock()
	store := New(mock)
	ctx := context.Background()

	require.NoError(t, store.Load(ctx, ReadOverview))
	store.SetPeriod(model.PeriodYearly)
	require.NoError(t, store.Load(ctx, ReadOverview))

	assert.Equal(t, []model.Period{model.PeriodMonthly, model.PeriodYearly}, mock.BudgetOverviewCalls)
}

func TestLoadUnknownReadModel(t *testing.T) {
	store := New(api.NewMock())
	err := store.Load(context.Background(), ReadModel("bogus"))
	require.Error(t, err)
}
