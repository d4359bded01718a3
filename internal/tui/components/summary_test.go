package components

import (
	"testing"

	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/tui/themes"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewSummaryDefaults(t *testing.T) {
	m := NewSummary(themes.Default)

	assert.Equal(t, model.DefaultCurrency, m.currency)
	assert.Equal(t, model.DefaultPeriod, m.period)
	assert.False(t, m.compact)
}

func TestSummaryViewShowsTotals(t *testing.T) {
	m := NewSummary(themes.Default)
	m.SetCurrency("EUR")
	m.SetSummary(model.Summary{
		TotalIncome:   decimal.NewFromInt(1500),
		TotalExpenses: decimal.NewFromFloat(820.50),
		Net:           decimal.NewFromFloat(679.50),
		Count:         12,
	})

	view := m.View()
	assert.Contains(t, view, "1500.00 EUR")
	assert.Contains(t, view, "820.50 EUR")
	assert.Contains(t, view, "679.50 EUR")
	assert.Contains(t, view, "12")
}

func TestSummaryCompactIsOneLine(t *testing.T) {
	m := NewSummary(themes.Default)
	m.SetCompact(true)
	m.SetPeriod(model.PeriodYearly)
	m.SetSummary(model.Summary{
		TotalIncome:   decimal.NewFromInt(100),
		TotalExpenses: decimal.NewFromInt(40),
		Net:           decimal.NewFromInt(60),
		Count:         2,
	})

	view := m.View()
	assert.NotContains(t, view, "\n")
	assert.Contains(t, view, "yearly")
}
