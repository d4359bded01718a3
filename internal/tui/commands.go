package tui

import (
	"context"
	"time"

	"github.com/budgielabs/budgie/internal/dashboard"
	tea "github.com/charmbracelet/bubbletea"
)

// loadTransactions fetches the transaction list into the store.
func (m Model) loadTransactions() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := m.store.Load(ctx, dashboard.ReadTransactions)
		return transactionsLoadedMsg{
			transactions: m.store.Transactions(),
			err:          err,
		}
	}
}

// loadCategories fetches the category list into the store.
func (m Model) loadCategories() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := m.store.Load(ctx, dashboard.ReadCategories)
		return categoriesLoadedMsg{
			categories: m.store.Categories(),
			err:        err,
		}
	}
}

// loadBudgets fetches the raw budget list into the store. The dashboard
// needs it to resolve budget IDs when deleting from the overview pane.
func (m Model) loadBudgets() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := m.store.Load(ctx, dashboard.ReadBudgets)
		return budgetsLoadedMsg{
			budgets: m.store.Budgets(),
			err:     err,
		}
	}
}

// loadOverview fetches the budget overview for the selected period.
func (m Model) loadOverview() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := m.store.Load(ctx, dashboard.ReadOverview)
		return overviewLoadedMsg{
			entries: m.store.Overview(),
			err:     err,
		}
	}
}

// loadSpending fetches the per-category spending for the selected period.
func (m Model) loadSpending() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := m.store.Load(ctx, dashboard.ReadSpending)
		return spendingLoadedMsg{
			entries: m.store.Spending(),
			err:     err,
		}
	}
}

// loadSettings fetches the settings singleton into the store.
func (m Model) loadSettings() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := m.store.Load(ctx, dashboard.ReadSettings)
		return settingsLoadedMsg{
			settings: m.store.Settings(),
			err:      err,
		}
	}
}

// refreshCmds maps read models to their load commands.
func (m Model) refreshCmds(rms []dashboard.ReadModel) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(rms))
	for _, rm := range rms {
		switch rm {
		case dashboard.ReadTransactions:
			cmds = append(cmds, m.loadTransactions())
		case dashboard.ReadCategories:
			cmds = append(cmds, m.loadCategories())
		case dashboard.ReadBudgets:
			cmds = append(cmds, m.loadBudgets())
		case dashboard.ReadOverview:
			cmds = append(cmds, m.loadOverview())
		case dashboard.ReadSpending:
			cmds = append(cmds, m.loadSpending())
		case dashboard.ReadSettings:
			cmds = append(cmds, m.loadSettings())
		}
	}
	return cmds
}

// dispatch runs a store command and reports its invalidation set.
func (m Model) dispatch(cmd dashboard.Command) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		invalidated, err := m.store.Dispatch(ctx, cmd)
		return commandDoneMsg{
			name:        cmd.Name(),
			invalidated: invalidated,
			err:         err,
		}
	}
}

// expireStatus clears the status line after a delay unless a newer
// message replaced it in the meantime.
func expireStatus(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
