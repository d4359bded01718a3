package components

import (
	"fmt"

	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OverviewModel shows spent-versus-budget rows for the selected period.
// Rows are selectable so the dashboard can delete the backing budget.
type OverviewModel struct {
	theme    themes.Theme
	entries  []model.BudgetOverviewEntry
	progress progress.Model
	cursor   int
	width    int
	height   int
	focused  bool
}

// NewOverview creates an empty overview panel.
func NewOverview(theme themes.Theme) OverviewModel {
	prog := progress.New(
		progress.WithGradient(string(theme.Secondary), string(theme.Primary)),
	)
	prog.ShowPercentage = false
	prog.Width = 24

	return OverviewModel{theme: theme, progress: prog}
}

// SetEntries replaces the overview rows.
func (m *OverviewModel) SetEntries(entries []model.BudgetOverviewEntry) {
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = len(entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the overview entry under the cursor.
func (m OverviewModel) Selected() (model.BudgetOverviewEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return model.BudgetOverviewEntry{}, false
	}
	return m.entries[m.cursor], true
}

// Focus enables cursor movement.
func (m *OverviewModel) Focus() {
	m.focused = true
}

// Blur disables cursor movement.
func (m *OverviewModel) Blur() {
	m.focused = false
}

// Resize adjusts the panel to the available space.
func (m *OverviewModel) Resize(width, height int) {
	m.width = width
	m.height = height

	barWidth := width - 4
	if barWidth > 36 {
		barWidth = 36
	}
	if barWidth < 10 {
		barWidth = 10
	}
	m.progress.Width = barWidth
}

// Update handles messages.
func (m OverviewModel) Update(msg tea.Msg) (OverviewModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

// View renders the panel.
func (m OverviewModel) View() string {
	title := m.theme.Subtitle.Render("Budget Overview")

	if len(m.entries) == 0 {
		empty := m.theme.Faint.Render("No budgets for this period. Press b to set one.")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", empty)
	}

	const linesPerEntry = 3
	visible := len(m.entries)
	if m.height > 0 {
		if fit := (m.height - 1) / linesPerEntry; fit > 0 && fit < visible {
			visible = fit
		}
	}

	offset := 0
	if m.cursor >= visible {
		offset = m.cursor - visible + 1
	}

	rows := []string{title}
	for i := offset; i < offset+visible && i < len(m.entries); i++ {
		rows = append(rows, m.renderEntry(m.entries[i], m.focused && i == m.cursor))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m OverviewModel) renderEntry(e model.BudgetOverviewEntry, selected bool) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(e.CategoryColor)).Render("●")

	name := e.CategoryName
	nameStyle := m.theme.Normal
	if selected {
		nameStyle = m.theme.Selected
		name = " " + name + " "
	}

	badge := m.theme.Faint.Render(fmt.Sprintf("%.0f%%", e.PercentageUsed))
	if e.IsOverBudget {
		badge = m.theme.StatusError.Render("OVER")
	} else if e.PercentageUsed >= 80 {
		badge = m.theme.StatusWarning.Render(fmt.Sprintf("%.0f%%", e.PercentageUsed))
	}

	header := fmt.Sprintf("%s %s %s", dot, nameStyle.Render(name), badge)

	pct := e.PercentageUsed / 100
	if pct > 1 {
		pct = 1
	}
	bar := m.progress.ViewAs(pct)

	detail := fmt.Sprintf("%s of %s", money(e.SpentAmount, e.Currency), money(e.BudgetAmount, e.Currency))
	if e.IsOverBudget {
		over := e.RemainingAmount.Abs()
		detail += " " + m.theme.StatusError.Render(fmt.Sprintf("(%s over)", money(over, e.Currency)))
	} else {
		detail += " " + m.theme.Faint.Render(fmt.Sprintf("(%s left)", money(e.RemainingAmount, e.Currency)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"  "+bar,
		"  "+m.theme.Normal.Render(detail),
	)
}
