package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/budgielabs/budgie/internal/common"
	"github.com/budgielabs/budgie/internal/dashboard"
	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/tui/components"
	"github.com/budgielabs/budgie/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current state of the TUI.
type State int

const (
	StateDashboard State = iota
	StateForm
	StateConfirm
	StateHelp
)

// Pane identifies the focusable dashboard panes.
type Pane int

const (
	PaneTransactions Pane = iota
	PaneOverview
	PaneSpending
)

const paneCount = 3

func (p Pane) next() Pane { return (p + 1) % paneCount }
func (p Pane) prev() Pane { return (p + paneCount - 1) % paneCount }

// String names the pane for the status bar.
func (p Pane) String() string {
	switch p {
	case PaneOverview:
		return "Overview"
	case PaneSpending:
		return "Spending"
	default:
		return "Transactions"
	}
}

// statusLevel picks the style for the status line.
type statusLevel int

const (
	statusInfo statusLevel = iota
	statusSuccess
	statusWarn
	statusError
)

// confirmTarget is a pending destructive command awaiting confirmation.
type confirmTarget struct {
	cmd   dashboard.Command
	label string
}

// Model holds the main TUI state.
type Model struct {
	lastError error
	store     *dashboard.Store
	confirm   *confirmTarget

	theme  themes.Theme
	keymap KeyMap
	config Config

	summary      components.SummaryModel
	transactions components.TransactionTableModel
	overview     components.OverviewModel
	spending     components.SpendingModel
	form         components.FormModel

	statusMsg string
	statusLvl statusLevel
	statusSeq int
	loading   int
	width     int
	height    int
	state     State
	pane      Pane
	ready     bool
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	m := Model{
		state:        StateDashboard,
		pane:         PaneTransactions,
		config:       cfg,
		keymap:       DefaultKeyMap(),
		theme:        cfg.Theme,
		store:        cfg.Store,
		summary:      components.NewSummary(cfg.Theme),
		transactions: components.NewTransactionTable(cfg.Theme),
		overview:     components.NewOverview(cfg.Theme),
		spending:     components.NewSpending(cfg.Theme),
		loading:      len(dashboard.AllReadModels()),
		width:        cfg.Width,
		height:       cfg.Height,
	}
	m.transactions.Focus()
	return m
}

// Init initializes the model and kicks off the initial load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	cmds = append(cmds, m.refreshCmds(dashboard.AllReadModels())...)
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case transactionsLoadedMsg:
		m.loading--
		m.ready = true
		if msg.err != nil {
			cmds = append(cmds, m.noteLoadError("transactions", msg.err))
			break
		}
		m.transactions.SetTransactions(msg.transactions)
		m.summary.SetSummary(m.store.Summary())

	case categoriesLoadedMsg:
		m.loading--
		m.ready = true
		if msg.err != nil {
			cmds = append(cmds, m.noteLoadError("categories", msg.err))
		}

	case budgetsLoadedMsg:
		m.loading--
		m.ready = true
		if msg.err != nil {
			cmds = append(cmds, m.noteLoadError("budgets", msg.err))
		}

	case overviewLoadedMsg:
		m.loading--
		m.ready = true
		if msg.err != nil {
			cmds = append(cmds, m.noteLoadError("budget overview", msg.err))
			break
		}
		m.overview.SetEntries(msg.entries)

	case spendingLoadedMsg:
		m.loading--
		m.ready = true
		if msg.err != nil {
			cmds = append(cmds, m.noteLoadError("spending", msg.err))
			break
		}
		m.spending.SetEntries(msg.entries)

	case settingsLoadedMsg:
		m.loading--
		m.ready = true
		if msg.err != nil {
			cmds = append(cmds, m.noteLoadError("settings", msg.err))
			break
		}
		m.summary.SetCurrency(msg.settings.DefaultCurrency)

	case commandDoneMsg:
		if msg.err != nil {
			m.lastError = msg.err
			if m.state == StateForm {
				m.form.SetError(friendlyError(msg.err))
				return m, nil
			}
			cmds = append(cmds, m.noteCommandError(msg.err))
			break
		}
		if m.state == StateForm {
			m.state = StateDashboard
		}
		cmds = append(cmds, m.setStatus(statusSuccess, successText(msg.name)))
		m.loading += len(msg.invalidated)
		cmds = append(cmds, m.refreshCmds(msg.invalidated)...)

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
		}

	case components.TransactionFormSubmitMsg:
		return m, m.dispatch(dashboard.CreateTransaction{Draft: msg.Draft})

	case components.CategoryFormSubmitMsg:
		return m, m.dispatch(dashboard.CreateCategory{Draft: msg.Draft})

	case components.BudgetFormSubmitMsg:
		return m, m.dispatch(dashboard.CreateBudget{Draft: msg.Draft})

	case components.CurrencyFormSubmitMsg:
		return m, m.dispatch(dashboard.UpdateDefaultCurrency{Code: msg.Code})

	case components.FormCancelMsg:
		m.state = StateDashboard
		return m, nil
	}

	// Cursor blink and other component ticks reach the open form.
	if m.state == StateForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return m.renderLoading()
	}

	if m.quitting {
		return ""
	}

	switch m.state {
	case StateForm:
		return m.renderForm()
	case StateConfirm:
		return m.renderConfirm()
	case StateHelp:
		return m.renderHelp()
	}

	if m.width < 80 {
		return m.renderCompactView()
	}
	if m.width < 120 {
		return m.renderMediumView()
	}
	return m.renderFullView()
}

// handleKeys routes key presses by state.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case StateForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case StateConfirm:
		return m.handleConfirmKeys(msg)

	case StateHelp:
		switch msg.String() {
		case "?", "esc", "q":
			m.state = StateDashboard
		}
		return m, nil

	default:
		return m.handleDashboardKeys(msg)
	}
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.confirm == nil {
			m.state = StateDashboard
			return m, nil
		}
		cmd := m.confirm.cmd
		m.confirm = nil
		m.state = StateDashboard
		return m, m.dispatch(cmd)

	case "n", "esc":
		m.confirm = nil
		m.state = StateDashboard
	}
	return m, nil
}

func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen

	case key.Matches(msg, m.keymap.NextPane):
		m.focusPane(m.pane.next())
		return m, nil

	case key.Matches(msg, m.keymap.PrevPane):
		m.focusPane(m.pane.prev())
		return m, nil

	case key.Matches(msg, m.keymap.CyclePeriod):
		next := m.store.Period().Next()
		invalidated := m.store.SetPeriod(next)
		m.summary.SetPeriod(next)
		m.loading += len(invalidated)
		cmds := m.refreshCmds(invalidated)
		cmds = append(cmds, m.setStatus(statusInfo, fmt.Sprintf("period: %s", next)))
		return m, tea.Batch(cmds...)

	case key.Matches(msg, m.keymap.Refresh):
		rms := dashboard.AllReadModels()
		m.loading += len(rms)
		return m, tea.Batch(m.refreshCmds(rms)...)

	case key.Matches(msg, m.keymap.NewTransaction):
		m.form = components.NewTransactionForm(m.store.NewTransactionDraft(), m.store.Categories(), m.theme)
		m.state = StateForm
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.NewCategory):
		m.form = components.NewCategoryForm(m.store.NewCategoryDraft(), m.theme)
		m.state = StateForm
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.SetBudget):
		m.form = components.NewBudgetForm(m.store.NewBudgetDraft(), m.store.CategoriesByType(model.TypeExpense), m.theme)
		m.state = StateForm
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.Currency):
		m.form = components.NewCurrencyForm(m.store.Settings().DefaultCurrency, m.theme)
		m.state = StateForm
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.Delete):
		return m.requestDelete()
	}

	// Remaining keys drive the focused pane.
	var cmd tea.Cmd
	switch m.pane {
	case PaneTransactions:
		m.transactions, cmd = m.transactions.Update(msg)
	case PaneOverview:
		m.overview, cmd = m.overview.Update(msg)
	}
	return m, cmd
}

// requestDelete opens the confirmation dialog for whatever the focused
// pane has selected. Spending rows are derived and cannot be deleted.
func (m Model) requestDelete() (tea.Model, tea.Cmd) {
	switch m.pane {
	case PaneTransactions:
		t, ok := m.transactions.Selected()
		if !ok {
			return m, m.setStatus(statusWarn, "no transaction selected")
		}
		m.confirm = &confirmTarget{
			cmd:   dashboard.DeleteTransaction{ID: t.ID},
			label: fmt.Sprintf("%s %s transaction from %s", t.Amount.StringFixed(2)+" "+t.Currency, t.CategoryName, t.Date),
		}
		m.state = StateConfirm
		return m, nil

	case PaneOverview:
		entry, ok := m.overview.Selected()
		if !ok {
			return m, m.setStatus(statusWarn, "no budget selected")
		}
		budget, ok := m.findBudget(entry.CategoryID, entry.Period)
		if !ok {
			return m, m.setStatus(statusWarn, "no matching budget to delete")
		}
		m.confirm = &confirmTarget{
			cmd:   dashboard.DeleteBudget{ID: budget.ID},
			label: fmt.Sprintf("%s budget for %s", entry.Period, entry.CategoryName),
		}
		m.state = StateConfirm
		return m, nil

	default:
		return m, m.setStatus(statusInfo, "spending rows are derived; delete transactions instead")
	}
}

// findBudget resolves the budget backing an overview row.
func (m Model) findBudget(categoryID string, period model.Period) (model.Budget, bool) {
	for _, b := range m.store.Budgets() {
		if b.CategoryID == categoryID && b.Period == period {
			return b, true
		}
	}
	return model.Budget{}, false
}

// focusPane moves keyboard focus to the given pane.
func (m *Model) focusPane(p Pane) {
	m.pane = p
	if p == PaneTransactions {
		m.transactions.Focus()
	} else {
		m.transactions.Blur()
	}
	if p == PaneOverview {
		m.overview.Focus()
	} else {
		m.overview.Blur()
	}
}

// setStatus replaces the status line and schedules its expiry.
func (m *Model) setStatus(lvl statusLevel, text string) tea.Cmd {
	m.statusSeq++
	m.statusLvl = lvl
	m.statusMsg = text

	d := 4 * time.Second
	if lvl == statusWarn || lvl == statusError {
		d = 8 * time.Second
	}
	return expireStatus(m.statusSeq, d)
}

// noteLoadError surfaces a failed fetch with its severity. The previous
// data stays on screen; only the status line changes.
func (m *Model) noteLoadError(what string, err error) tea.Cmd {
	m.lastError = err
	if common.Classify(err) == common.SeverityRetriable {
		return m.setStatus(statusWarn, fmt.Sprintf("couldn't refresh %s: %v (press r to retry)", what, err))
	}
	return m.setStatus(statusError, fmt.Sprintf("couldn't refresh %s: %v", what, err))
}

func (m *Model) noteCommandError(err error) tea.Cmd {
	if common.Classify(err) == common.SeverityRetriable {
		return m.setStatus(statusWarn, fmt.Sprintf("%v (temporary, retry may succeed)", err))
	}
	return m.setStatus(statusError, err.Error())
}

// friendlyError renders an error for the form footer, marking the
// temporary ones so the user knows resubmitting may work.
func friendlyError(err error) string {
	if common.Classify(err) == common.SeverityRetriable {
		return fmt.Sprintf("%v (temporary, retry may succeed)", err)
	}
	return err.Error()
}

// successText maps a command name to its status line.
func successText(name string) string {
	switch name {
	case "create-transaction":
		return "transaction recorded"
	case "delete-transaction":
		return "transaction deleted"
	case "create-category":
		return "category added"
	case "delete-category":
		return "category deleted"
	case "create-budget":
		return "budget saved"
	case "delete-budget":
		return "budget removed"
	case "update-default-currency":
		return "default currency updated"
	default:
		return strings.ReplaceAll(name, "-", " ") + " applied"
	}
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.summary.Resize(m.width - 4)

	// Borders take two rows, the status bar one, the summary three.
	paneHeight := m.height - 6
	if paneHeight < 5 {
		paneHeight = 5
	}

	switch {
	case m.width < 80:
		m.summary.SetCompact(true)
		w := m.width - 4
		m.transactions.Resize(w, paneHeight)
		m.overview.Resize(w, paneHeight)
		m.spending.Resize(w, paneHeight)

	case m.width < 120:
		m.summary.SetCompact(false)
		total := m.width - 7
		left := int(float64(total) * 0.55)
		right := total - left
		m.transactions.Resize(left, paneHeight)
		half := (paneHeight - 1) / 2
		m.overview.Resize(right, half)
		m.spending.Resize(right, half)

	default:
		m.summary.SetCompact(false)
		total := m.width - 10
		left := int(float64(total) * 0.45)
		mid := int(float64(total) * 0.30)
		right := total - left - mid
		m.transactions.Resize(left, paneHeight)
		m.overview.Resize(mid, paneHeight)
		m.spending.Resize(right, paneHeight)
	}
}
