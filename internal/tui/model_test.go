package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgielabs/budgie/internal/api"
	"github.com/budgielabs/budgie/internal/dashboard"
	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/tui/components"
	"github.com/budgielabs/budgie/internal/tui/themes"
)

func testModel() Model {
	store := dashboard.New(api.NewMock())
	return newModel(Config{
		Store:  store,
		Theme:  themes.Default,
		Width:  100,
		Height: 30,
	})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestCyclePeriodAdvancesStore(t *testing.T) {
	m := testModel()

	updated, cmd := m.Update(keyRune('p'))

	assert.Equal(t, model.PeriodYearly, updated.(Model).store.Period())
	assert.NotNil(t, cmd)
}

func TestNewTransactionOpensForm(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(keyRune('n'))

	got := updated.(Model)
	assert.Equal(t, StateForm, got.state)
	assert.Equal(t, components.FormTransaction, got.form.Kind())
}

func TestTabCyclesPanes(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, PaneOverview, updated.(Model).pane)

	updated, _ = updated.(Model).Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, PaneSpending, updated.(Model).pane)

	updated, _ = updated.(Model).Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, PaneTransactions, updated.(Model).pane)
}

func TestDeleteOnTransactionsPaneAsksConfirmation(t *testing.T) {
	m := testModel()
	txn := model.Transaction{
		ID:           "t1",
		Type:         model.TypeExpense,
		CategoryName: "Groceries",
		Currency:     "USD",
		Date:         model.NewDate(2026, time.August, 1),
		Amount:       decimal.NewFromInt(10),
	}

	updated, _ := m.Update(transactionsLoadedMsg{transactions: []model.Transaction{txn}})
	updated, _ = updated.(Model).Update(keyRune('d'))

	got := updated.(Model)
	require.Equal(t, StateConfirm, got.state)
	require.NotNil(t, got.confirm)
	assert.Equal(t, "delete-transaction", got.confirm.cmd.Name())
	assert.Contains(t, got.confirm.label, "Groceries")
}

func TestDeleteWithNothingSelectedWarns(t *testing.T) {
	m := testModel()

	updated, cmd := m.Update(keyRune('d'))

	got := updated.(Model)
	assert.Equal(t, StateDashboard, got.state)
	assert.Equal(t, statusWarn, got.statusLvl)
	assert.NotNil(t, cmd)
}

func TestConfirmCancelKeepsEverything(t *testing.T) {
	m := testModel()
	txn := model.Transaction{ID: "t1", Type: model.TypeExpense, Currency: "USD", Amount: decimal.NewFromInt(5), Date: model.Today()}

	updated, _ := m.Update(transactionsLoadedMsg{transactions: []model.Transaction{txn}})
	updated, _ = updated.(Model).Update(keyRune('d'))
	updated, _ = updated.(Model).Update(keyRune('n'))

	got := updated.(Model)
	assert.Equal(t, StateDashboard, got.state)
	assert.Nil(t, got.confirm)
}

func TestCommandDoneShowsSuccessAndRefreshes(t *testing.T) {
	m := testModel()

	updated, cmd := m.Update(commandDoneMsg{
		name:        "create-transaction",
		invalidated: []dashboard.ReadModel{dashboard.ReadTransactions, dashboard.ReadOverview, dashboard.ReadSpending},
	})

	got := updated.(Model)
	assert.Equal(t, statusSuccess, got.statusLvl)
	assert.Equal(t, "transaction recorded", got.statusMsg)
	assert.NotNil(t, cmd)
}

func TestCommandErrorKeepsFormOpen(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(keyRune('n'))
	require.Equal(t, StateForm, updated.(Model).state)

	updated, _ = updated.(Model).Update(commandDoneMsg{
		name: "create-transaction",
		err:  fmt.Errorf("invalid transaction: amount must be positive"),
	})

	got := updated.(Model)
	assert.Equal(t, StateForm, got.state)
	assert.Contains(t, got.form.View(), "amount must be positive")
}

func TestStatusExpiryIgnoresStaleTimer(t *testing.T) {
	m := testModel()
	_ = m.setStatus(statusInfo, "first")
	_ = m.setStatus(statusSuccess, "second")

	updated, _ := m.Update(statusExpiredMsg{seq: 1})
	assert.Equal(t, "second", updated.(Model).statusMsg)

	updated, _ = m.Update(statusExpiredMsg{seq: 2})
	assert.Equal(t, "", updated.(Model).statusMsg)
}

func TestQuitKey(t *testing.T) {
	m := testModel()

	updated, cmd := m.Update(keyRune('q'))

	assert.True(t, updated.(Model).quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
