package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/tui/themes"
)

func formCategories() []model.Category {
	return []model.Category{
		{ID: "c-groc", Name: "Groceries", Type: model.TypeExpense},
		{ID: "c-rent", Name: "Rent", Type: model.TypeExpense},
		{ID: "c-sal", Name: "Salary", Type: model.TypeIncome},
	}
}

func pressEnter(f FormModel, times int) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	for i := 0; i < times; i++ {
		f, cmd = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	return f, cmd
}

func TestTransactionFormSubmit(t *testing.T) {
	draft := model.TransactionDraft{
		Type:       model.TypeExpense,
		Amount:     "25.50",
		CategoryID: "c-rent",
		Currency:   "usd",
		Date:       model.NewDate(2026, time.August, 20),
	}
	f := NewTransactionForm(draft, formCategories(), themes.Default)

	// Six fields: enter advances through five and submits on the last.
	_, cmd := pressEnter(f, 6)
	require.NotNil(t, cmd)

	msg, ok := cmd().(TransactionFormSubmitMsg)
	require.True(t, ok)
	assert.Equal(t, model.TypeExpense, msg.Draft.Type)
	assert.Equal(t, "25.50", msg.Draft.Amount)
	assert.Equal(t, "c-rent", msg.Draft.CategoryID)
	assert.Equal(t, "USD", msg.Draft.Currency)
	assert.Equal(t, "2026-08-20", msg.Draft.Date.String())
}

func TestTransactionFormTypeCyclingFiltersCategories(t *testing.T) {
	draft := model.TransactionDraft{Type: model.TypeExpense, Currency: "USD", Date: model.Today()}
	f := NewTransactionForm(draft, formCategories(), themes.Default)

	// Focus starts on the type field; cycling to income must re-filter
	// the category choices.
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, string(model.TypeIncome), f.value("Type"))
	assert.Equal(t, "c-sal", f.value("Category"))
}

func TestTransactionFormRejectsBadDate(t *testing.T) {
	draft := model.TransactionDraft{Type: model.TypeExpense, Amount: "10", Currency: "USD"}
	f := NewTransactionForm(draft, formCategories(), themes.Default)

	f, cmd := pressEnter(f, 6)

	assert.Nil(t, cmd)
	assert.Contains(t, f.View(), "invalid date")
}

func TestBudgetFormSubmit(t *testing.T) {
	draft := model.BudgetDraft{Amount: "300", Currency: "USD", Period: model.PeriodMonthly}
	expense := model.FilterCategories(formCategories(), model.TypeExpense)
	f := NewBudgetForm(draft, expense, themes.Default)

	_, cmd := pressEnter(f, 4)
	require.NotNil(t, cmd)

	msg, ok := cmd().(BudgetFormSubmitMsg)
	require.True(t, ok)
	assert.Equal(t, "c-groc", msg.Draft.CategoryID)
	assert.Equal(t, "300", msg.Draft.Amount)
	assert.Equal(t, model.PeriodMonthly, msg.Draft.Period)
}

func TestCurrencyFormSubmitUppercases(t *testing.T) {
	f := NewCurrencyForm("usd", themes.Default)

	_, cmd := pressEnter(f, 1)
	require.NotNil(t, cmd)

	msg, ok := cmd().(CurrencyFormSubmitMsg)
	require.True(t, ok)
	assert.Equal(t, "USD", msg.Code)
}

func TestFormEscCancels(t *testing.T) {
	f := NewCategoryForm(model.CategoryDraft{Type: model.TypeExpense}, themes.Default)

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, ok := cmd().(FormCancelMsg)
	assert.True(t, ok)
}

func TestFormSetErrorKeepsValues(t *testing.T) {
	draft := model.CategoryDraft{Name: "Utilities", Type: model.TypeExpense}
	f := NewCategoryForm(draft, themes.Default)

	f.SetError("name already exists")

	view := f.View()
	assert.Contains(t, view, "name already exists")
	assert.Equal(t, "Utilities", f.value("Name"))
}
