package tui

import (
	"github.com/budgielabs/budgie/internal/dashboard"
	"github.com/budgielabs/budgie/internal/model"
)

// Data loading messages. Each carries the snapshot read back from the
// store after the fetch finished, so a fetch discarded as stale still
// delivers the newest installed data.
type transactionsLoadedMsg struct {
	err          error
	transactions []model.Transaction
}

type categoriesLoadedMsg struct {
	err        error
	categories []model.Category
}

type budgetsLoadedMsg struct {
	err     error
	budgets []model.Budget
}

type overviewLoadedMsg struct {
	err     error
	entries []model.BudgetOverviewEntry
}

type spendingLoadedMsg struct {
	err     error
	entries []model.SpendingEntry
}

type settingsLoadedMsg struct {
	err      error
	settings model.Settings
}

// commandDoneMsg reports a dispatched mutation. On success invalidated
// lists the read models to refetch; on failure it is empty and nothing
// gets refreshed.
type commandDoneMsg struct {
	err         error
	name        string
	invalidated []dashboard.ReadModel
}

// statusExpiredMsg clears the status line once its display time is up. The
// sequence number keeps an old timer from wiping a newer message.
type statusExpiredMsg struct {
	seq int
}
