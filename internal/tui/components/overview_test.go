package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/tui/themes"
)

func overviewEntries() []model.BudgetOverviewEntry {
	return []model.BudgetOverviewEntry{
		{
			CategoryID:      "c-groc",
			CategoryName:    "Groceries",
			CategoryColor:   "#10B981",
			Currency:        "USD",
			Period:          model.PeriodMonthly,
			BudgetAmount:    decimal.NewFromInt(500),
			SpentAmount:     decimal.NewFromInt(310),
			RemainingAmount: decimal.NewFromInt(190),
			PercentageUsed:  62,
		},
		{
			CategoryID:      "c-dine",
			CategoryName:    "Dining Out",
			CategoryColor:   "#EF4444",
			Currency:        "USD",
			Period:          model.PeriodMonthly,
			BudgetAmount:    decimal.NewFromInt(200),
			SpentAmount:     decimal.NewFromInt(320),
			RemainingAmount: decimal.NewFromInt(-120),
			PercentageUsed:  160,
			IsOverBudget:    true,
		},
	}
}

func TestOverviewSelection(t *testing.T) {
	m := NewOverview(themes.Default)
	m.Focus()
	m.SetEntries(overviewEntries())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "c-dine", selected.CategoryID)
}

func TestOverviewIgnoresKeysWhenBlurred(t *testing.T) {
	m := NewOverview(themes.Default)
	m.SetEntries(overviewEntries())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "c-groc", selected.CategoryID)
}

func TestOverviewMarksOverBudget(t *testing.T) {
	m := NewOverview(themes.Default)
	m.SetEntries(overviewEntries())

	view := m.View()
	assert.Contains(t, view, "OVER")
	assert.Contains(t, view, "120.00 USD over")
	assert.Contains(t, view, "190.00 USD left")
}

func TestOverviewEmptyState(t *testing.T) {
	m := NewOverview(themes.Default)

	assert.Contains(t, m.View(), "No budgets for this period")
}

func TestOverviewCursorClampsOnShrink(t *testing.T) {
	m := NewOverview(themes.Default)
	m.Focus()
	m.SetEntries(overviewEntries())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	m.SetEntries(overviewEntries()[:1])

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "c-groc", selected.CategoryID)
}
