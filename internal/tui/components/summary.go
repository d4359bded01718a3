package components

import (
	"fmt"

	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// SummaryModel displays the income, expense and net totals derived from
// the loaded transactions, plus the selected reporting period.
type SummaryModel struct {
	theme    themes.Theme
	currency string
	period   model.Period
	summary  model.Summary
	width    int
	compact  bool
}

// NewSummary creates an empty summary panel.
func NewSummary(theme themes.Theme) SummaryModel {
	return SummaryModel{
		theme:    theme,
		currency: model.DefaultCurrency,
		period:   model.DefaultPeriod,
	}
}

// SetSummary replaces the displayed totals.
func (m *SummaryModel) SetSummary(s model.Summary) {
	m.summary = s
}

// SetCurrency sets the currency code shown next to amounts.
func (m *SummaryModel) SetCurrency(code string) {
	m.currency = code
}

// SetPeriod sets the reporting period badge.
func (m *SummaryModel) SetPeriod(p model.Period) {
	m.period = p
}

// SetCompact switches between the one-line and the full layout.
func (m *SummaryModel) SetCompact(compact bool) {
	m.compact = compact
}

// Resize sets the available width.
func (m *SummaryModel) Resize(width int) {
	m.width = width
}

// View renders the panel.
func (m SummaryModel) View() string {
	if m.compact {
		return m.renderCompact()
	}
	return m.renderFull()
}

func (m SummaryModel) renderCompact() string {
	line := fmt.Sprintf("%s  %s  net %s  [%s]",
		m.theme.Income.Render("▲ "+money(m.summary.TotalIncome, m.currency)),
		m.theme.Expense.Render("▼ "+money(m.summary.TotalExpenses, m.currency)),
		m.netStyle().Render(money(m.summary.Net, m.currency)),
		m.period,
	)
	return m.theme.Normal.Render(line)
}

func (m SummaryModel) renderFull() string {
	cell := func(label, value string, style lipgloss.Style) string {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Subtitle.Render(label),
			style.Render(value),
		)
	}

	income := cell("Income", "▲ "+money(m.summary.TotalIncome, m.currency), m.theme.Income)
	expenses := cell("Expenses", "▼ "+money(m.summary.TotalExpenses, m.currency), m.theme.Expense)
	net := cell("Net", money(m.summary.Net, m.currency), m.netStyle())
	count := cell("Transactions", fmt.Sprintf("%d", m.summary.Count), m.theme.Normal)
	period := cell("Period", string(m.period), m.theme.Bold)

	gap := m.theme.Normal.Render("    ")
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		income, gap,
		expenses, gap,
		net, gap,
		count, gap,
		period,
	)
}

func (m SummaryModel) netStyle() lipgloss.Style {
	if m.summary.Net.IsNegative() {
		return m.theme.Expense
	}
	return m.theme.Income
}

// money formats a decimal amount with its currency code.
func money(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + currency
}
