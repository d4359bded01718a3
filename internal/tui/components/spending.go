package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// SpendingModel shows the expense breakdown by category for the selected
// period. It is display-only; the rows are derived server-side from the
// underlying transactions.
type SpendingModel struct {
	theme   themes.Theme
	entries []model.SpendingEntry
	total   decimal.Decimal
	width   int
	height  int
}

// NewSpending creates an empty spending panel.
func NewSpending(theme themes.Theme) SpendingModel {
	return SpendingModel{theme: theme, total: decimal.Zero}
}

// SetEntries replaces the spending rows, sorted by amount descending.
func (m *SpendingModel) SetEntries(entries []model.SpendingEntry) {
	sorted := make([]model.SpendingEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalSpent.GreaterThan(sorted[j].TotalSpent)
	})
	m.entries = sorted

	total := decimal.Zero
	for _, e := range sorted {
		total = total.Add(e.TotalSpent)
	}
	m.total = total
}

// Resize adjusts the panel to the available space.
func (m *SpendingModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the panel.
func (m SpendingModel) View() string {
	title := m.theme.Subtitle.Render("Spending")

	if len(m.entries) == 0 {
		empty := m.theme.Faint.Render("No spending recorded for this period.")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", empty)
	}

	visible := len(m.entries)
	if m.height > 0 {
		// Title, total line and a spacer take three lines.
		if fit := m.height - 3; fit > 0 && fit < visible {
			visible = fit
		}
	}

	rows := []string{title}
	for _, e := range m.entries[:visible] {
		rows = append(rows, m.renderEntry(e))
	}
	if visible < len(m.entries) {
		rows = append(rows, m.theme.Faint.Render(fmt.Sprintf("… and %d more", len(m.entries)-visible)))
	}

	rows = append(rows, "", m.theme.Bold.Render("Total  ")+m.theme.Expense.Render(m.total.StringFixed(2)))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m SpendingModel) renderEntry(e model.SpendingEntry) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("●")

	share := 0.0
	if m.total.IsPositive() {
		ratio, _ := e.TotalSpent.Div(m.total).Float64()
		share = ratio * 100
	}

	name := e.CategoryName
	maxName := m.width - 26
	if maxName < 8 {
		maxName = 8
	}
	if len(name) > maxName {
		name = name[:maxName-1] + "…"
	}

	bar := m.shareBar(share)
	return fmt.Sprintf("%s %s %s %s %s",
		dot,
		m.theme.Normal.Render(padRight(name, maxName)),
		m.theme.Faint.Render(fmt.Sprintf("%3.0f%%", share)),
		bar,
		m.theme.Normal.Render(e.TotalSpent.StringFixed(2)),
	)
}

// shareBar renders a fixed-width bar proportional to the share of total
// spending.
func (m SpendingModel) shareBar(share float64) string {
	const width = 8
	filled := int(share / 100 * width)
	if filled > width {
		filled = width
	}
	return lipgloss.NewStyle().Foreground(m.theme.Primary).Render(strings.Repeat("█", filled)) +
		m.theme.Faint.Render(strings.Repeat("░", width-filled))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
