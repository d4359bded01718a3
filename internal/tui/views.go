package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLoading renders the loading screen shown before the first fetch
// lands.
func (m Model) renderLoading() string {
	loadingText := m.theme.Title.Render("Loading budgie...")

	spinner := "⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏"
	frame := m.loading % len([]rune(spinner))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		loadingText,
		"",
		lipgloss.NewStyle().Foreground(m.theme.Primary).Render(string([]rune(spinner)[frame])),
		"",
		m.theme.Faint.Render("Fetching your budget..."),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// renderCompactView stacks the summary above the focused pane for narrow
// terminals. Tab still cycles which pane is shown.
func (m Model) renderCompactView() string {
	var pane string
	switch m.pane {
	case PaneOverview:
		pane = m.overview.View()
	case PaneSpending:
		pane = m.spending.View()
	default:
		pane = m.transactions.View()
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.summary.View(),
		"",
		pane,
	)

	return m.wrapWithBorder(content)
}

// renderMediumView puts transactions on the left and the period panes
// stacked on the right.
func (m Model) renderMediumView() string {
	total := m.width - 7
	left := int(float64(total) * 0.55)
	right := total - left

	rightColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		m.overview.View(),
		m.theme.Faint.Render(strings.Repeat("─", right)),
		m.spending.View(),
	)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(left).MaxWidth(left).Render(m.transactions.View()),
		m.theme.Normal.Render(" │ "),
		lipgloss.NewStyle().Width(right).MaxWidth(right).Render(rightColumn),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.summary.View(),
		"",
		body,
	)

	return m.wrapWithBorder(content)
}

// renderFullView lays out all three panes side by side.
func (m Model) renderFullView() string {
	total := m.width - 10
	left := int(float64(total) * 0.45)
	mid := int(float64(total) * 0.30)
	right := total - left - mid

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(left).MaxWidth(left).Render(m.transactions.View()),
		m.theme.Normal.Render(" │ "),
		lipgloss.NewStyle().Width(mid).MaxWidth(mid).Render(m.overview.View()),
		m.theme.Normal.Render(" │ "),
		lipgloss.NewStyle().Width(right).MaxWidth(right).Render(m.spending.View()),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.summary.View(),
		"",
		body,
	)

	return m.wrapWithBorder(content)
}

// renderForm centers the active form over an otherwise empty screen.
func (m Model) renderForm() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.form.View(),
	)
}

// renderConfirm renders the delete confirmation dialog.
func (m Model) renderConfirm() string {
	label := ""
	if m.confirm != nil {
		label = m.confirm.label
	}

	box := m.theme.RoundedBox.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.StatusWarning.Render("Delete "+label+"?"),
			"",
			m.theme.Faint.Render("y confirm · n cancel"),
		),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("budgie - Help")

	sections := []struct {
		title string
		items []string
	}{
		{
			"Navigation",
			[]string{
				"↑/k, ↓/j    Move up/down",
				"PgUp/PgDn   Page up/down",
				"Tab         Next pane",
				"Shift+Tab   Previous pane",
			},
		},
		{
			"Budget",
			[]string{
				"n           New transaction",
				"c           New category",
				"b           Set budget",
				"d/x         Delete selected",
			},
		},
		{
			"View",
			[]string{
				"p           Cycle period (weekly/monthly/yearly)",
				"$           Change default currency",
				"r           Refresh everything",
			},
		},
		{
			"Application",
			[]string{
				"?           Toggle help",
				"q           Quit",
				"Ctrl+C      Force quit",
				"Ctrl+L      Clear screen",
			},
		},
	}

	var content []string
	for _, section := range sections {
		content = append(content, m.theme.Subtitle.Render(section.title))

		for _, item := range section.items {
			parts := strings.SplitN(item, "  ", 2)
			if len(parts) == 2 {
				line := fmt.Sprintf("  %-12s %s",
					lipgloss.NewStyle().Foreground(m.theme.Primary).Render(parts[0]),
					m.theme.Normal.Render(strings.TrimSpace(parts[1])),
				)
				content = append(content, line)
			}
		}
		content = append(content, "")
	}

	helpText := lipgloss.JoinVertical(lipgloss.Left, content...)
	footer := m.theme.Faint.Render("Press ? or Esc to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			Width(60).
			MaxHeight(m.height-2).
			Render(
				lipgloss.JoinVertical(
					lipgloss.Left,
					title,
					"",
					helpText,
					footer,
				),
			),
	)
}

// wrapWithBorder adds the outer border and the bottom status bar.
func (m Model) wrapWithBorder(content string) string {
	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderStatusBar(),
	)

	return m.theme.BorderedBox.
		Width(m.width).
		Height(m.height).
		Render(fullContent)
}

// renderStatusBar renders the bottom status bar: focused pane and period
// on the left, the latest status message in the middle, key hints on the
// right.
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf("%s [%s]", m.pane, m.store.Period())
	if m.loading > 0 {
		left += " ⟳"
	}

	center := ""
	if m.statusMsg != "" {
		center = m.statusStyle().Render(m.statusMsg)
	}

	right := "? help · q quit"

	totalWidth := m.width - 4
	spacing := totalWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 2 {
		spacing = 2
	}
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	status := fmt.Sprintf("%s%s%s%s%s",
		m.theme.StatusInfo.Render(left),
		strings.Repeat(" ", leftPad),
		center,
		strings.Repeat(" ", rightPad),
		m.theme.Faint.Render(right),
	)

	return m.theme.Normal.
		Width(m.width - 2).
		MaxWidth(m.width - 2).
		Render(status)
}

func (m Model) statusStyle() lipgloss.Style {
	switch m.statusLvl {
	case statusSuccess:
		return m.theme.StatusSuccess
	case statusWarn:
		return m.theme.StatusWarning
	case statusError:
		return m.theme.StatusError
	default:
		return m.theme.StatusInfo
	}
}
