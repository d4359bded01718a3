package components

import (
	"fmt"
	"sort"

	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TransactionTableModel lists the loaded transactions, newest first.
type TransactionTableModel struct {
	theme        themes.Theme
	transactions []model.Transaction
	table        table.Model
	width        int
	height       int
}

// NewTransactionTable creates an empty transaction table.
func NewTransactionTable(theme themes.Theme) TransactionTableModel {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Description", Width: 24},
		{Title: "Category", Width: 14},
		{Title: "Amount", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		Bold(true).
		Foreground(theme.Secondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return TransactionTableModel{theme: theme, table: t}
}

// SetTransactions replaces the rows. Input order does not matter; rows are
// sorted newest first, ties broken by creation time.
func (m *TransactionTableModel) SetTransactions(transactions []model.Transaction) {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].Date.Time(), sorted[j].Date.Time()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	m.transactions = sorted

	rows := make([]table.Row, len(sorted))
	for i, t := range sorted {
		sign := "-"
		if t.Type == model.TypeIncome {
			sign = "+"
		}
		rows[i] = table.Row{
			t.Date.String(),
			t.Description,
			t.CategoryName,
			sign + money(t.Amount, t.Currency),
		}
	}
	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the transaction under the cursor.
func (m TransactionTableModel) Selected() (model.Transaction, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.transactions) {
		return model.Transaction{}, false
	}
	return m.transactions[cursor], true
}

// Count returns the number of listed transactions.
func (m TransactionTableModel) Count() int {
	return len(m.transactions)
}

// Focus enables cursor movement.
func (m *TransactionTableModel) Focus() {
	m.table.Focus()
}

// Blur disables cursor movement.
func (m *TransactionTableModel) Blur() {
	m.table.Blur()
}

// Resize adjusts the table to the available space. The description column
// absorbs whatever width the fixed columns leave over.
func (m *TransactionTableModel) Resize(width, height int) {
	m.width = width
	m.height = height

	descWidth := width - (10 + 14 + 14) - 8
	if descWidth < 12 {
		descWidth = 12
	}
	m.table.SetColumns([]table.Column{
		{Title: "Date", Width: 10},
		{Title: "Description", Width: descWidth},
		{Title: "Category", Width: 14},
		{Title: "Amount", Width: 14},
	})
	m.table.SetWidth(width)

	tableHeight := height - 2
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)
}

// Update handles messages.
func (m TransactionTableModel) Update(msg tea.Msg) (TransactionTableModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with its pane title.
func (m TransactionTableModel) View() string {
	title := m.theme.Subtitle.Render(fmt.Sprintf("Transactions (%d)", len(m.transactions)))

	if len(m.transactions) == 0 {
		empty := m.theme.Faint.Render("No transactions yet. Press n to record one.")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", empty)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, m.table.View())
}
