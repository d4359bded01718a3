package components

import (
	"fmt"
	"strings"

	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldKind separates typed inputs from cycled choices.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldChoice
)

type formField struct {
	input   textinput.Model
	label   string
	options []string
	values  []string
	kind    fieldKind
	choice  int
}

// FormKind selects which draft a form edits.
type FormKind int

// The available forms.
const (
	FormTransaction FormKind = iota
	FormCategory
	FormBudget
	FormCurrency
)

// FormModel is a modal input form for the create and update flows. Text
// fields are typed into; enumerated fields cycle with left/right. Enter
// advances through the fields and submits from the last one, esc cancels.
// Submission emits a draft message; validation failures come back through
// SetError and keep the form open with its values intact.
type FormModel struct {
	theme      themes.Theme
	title      string
	errText    string
	categories []model.Category
	fields     []formField
	kind       FormKind
	focus      int
	width      int
}

// NewTransactionForm creates a form seeded from a transaction draft. The
// category choices follow the selected type: cycling the type to income
// re-offers only income categories.
func NewTransactionForm(draft model.TransactionDraft, categories []model.Category, theme themes.Theme) FormModel {
	date := ""
	if !draft.Date.IsZero() {
		date = draft.Date.String()
	}

	options, values := categoryOptions(model.FilterCategories(categories, draft.Type))

	m := FormModel{
		theme:      theme,
		title:      "New Transaction",
		kind:       FormTransaction,
		categories: categories,
		fields: []formField{
			newChoiceField("Type", typeOptions(), typeOptions(), string(draft.Type)),
			newTextField("Amount", draft.Amount, "0.00"),
			newChoiceField("Category", options, values, draft.CategoryID),
			newTextField("Date", date, "YYYY-MM-DD"),
			newTextField("Description", draft.Description, "optional"),
			newTextField("Currency", draft.Currency, model.DefaultCurrency),
		},
	}
	m.setFocus(0)
	return m
}

// NewCategoryForm creates a form seeded from a category draft.
func NewCategoryForm(draft model.CategoryDraft, theme themes.Theme) FormModel {
	m := FormModel{
		theme: theme,
		title: "New Category",
		kind:  FormCategory,
		fields: []formField{
			newTextField("Name", draft.Name, "Groceries"),
			newChoiceField("Type", typeOptions(), typeOptions(), string(draft.Type)),
			newTextField("Color", draft.Color, "#RRGGBB (optional)"),
		},
	}
	m.setFocus(0)
	return m
}

// NewBudgetForm creates a form seeded from a budget draft. Callers pass
// the expense categories; budgets only apply to those.
func NewBudgetForm(draft model.BudgetDraft, categories []model.Category, theme themes.Theme) FormModel {
	options, values := categoryOptions(categories)

	m := FormModel{
		theme: theme,
		title: "Set Budget",
		kind:  FormBudget,
		fields: []formField{
			newChoiceField("Category", options, values, draft.CategoryID),
			newTextField("Amount", draft.Amount, "0.00"),
			newChoiceField("Period", periodOptions(), periodOptions(), string(draft.Period)),
			newTextField("Currency", draft.Currency, model.DefaultCurrency),
		},
	}
	m.setFocus(0)
	return m
}

// NewCurrencyForm creates a form for changing the default currency.
func NewCurrencyForm(current string, theme themes.Theme) FormModel {
	m := FormModel{
		theme: theme,
		title: "Default Currency",
		kind:  FormCurrency,
		fields: []formField{
			newTextField("Currency", current, model.DefaultCurrency),
		},
	}
	m.setFocus(0)
	return m
}

func newTextField(label, value, placeholder string) formField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.SetValue(value)
	input.CharLimit = 64
	input.Width = 28
	input.Prompt = ""
	return formField{kind: fieldText, label: label, input: input}
}

func newChoiceField(label string, options, values []string, selected string) formField {
	choice := 0
	for i, v := range values {
		if v == selected {
			choice = i
			break
		}
	}
	return formField{kind: fieldChoice, label: label, options: options, values: values, choice: choice}
}

func typeOptions() []string {
	return []string{string(model.TypeExpense), string(model.TypeIncome)}
}

func periodOptions() []string {
	return []string{string(model.PeriodWeekly), string(model.PeriodMonthly), string(model.PeriodYearly)}
}

func categoryOptions(categories []model.Category) (options, values []string) {
	for _, c := range categories {
		options = append(options, c.Name)
		values = append(values, c.ID)
	}
	return options, values
}

// SetError shows a submission error and keeps the form open.
func (m *FormModel) SetError(text string) {
	m.errText = text
}

// Kind returns which draft the form edits.
func (m FormModel) Kind() FormKind {
	return m.kind
}

// Resize sets the available width.
func (m *FormModel) Resize(width int) {
	m.width = width
}

// value returns the submitted value of the field with the given label.
func (m FormModel) value(label string) string {
	for _, f := range m.fields {
		if f.label != label {
			continue
		}
		if f.kind == fieldChoice {
			if f.choice < 0 || f.choice >= len(f.values) {
				return ""
			}
			return f.values[f.choice]
		}
		return strings.TrimSpace(f.input.Value())
	}
	return ""
}

func (m *FormModel) setFocus(focus int) {
	count := len(m.fields)
	m.focus = ((focus % count) + count) % count

	for i := range m.fields {
		if m.fields[i].kind != fieldText {
			continue
		}
		if i == m.focus {
			m.fields[i].input.Focus()
		} else {
			m.fields[i].input.Blur()
		}
	}
}

func (m *FormModel) cycleChoice(forward bool) {
	f := &m.fields[m.focus]
	if len(f.options) == 0 {
		return
	}
	if forward {
		f.choice = (f.choice + 1) % len(f.options)
	} else {
		f.choice = (f.choice - 1 + len(f.options)) % len(f.options)
	}

	// Switching the transaction type re-filters the category choices.
	if m.kind == FormTransaction && f.label == "Type" {
		options, values := categoryOptions(model.FilterCategories(m.categories, model.TransactionType(f.values[f.choice])))
		for i := range m.fields {
			if m.fields[i].label == "Category" {
				m.fields[i].options = options
				m.fields[i].values = values
				m.fields[i].choice = 0
			}
		}
	}
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return FormCancelMsg{} }

	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, textinput.Blink

	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, textinput.Blink

	case "enter":
		if m.focus < len(m.fields)-1 {
			m.setFocus(m.focus + 1)
			return m, textinput.Blink
		}
		return m.submit()

	case "left", "right":
		if m.fields[m.focus].kind == fieldChoice {
			m.cycleChoice(key.String() == "right")
			return m, nil
		}
	}

	return m.updateFocusedInput(msg)
}

func (m FormModel) updateFocusedInput(msg tea.Msg) (FormModel, tea.Cmd) {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return m, nil
	}
	if m.fields[m.focus].kind != fieldText {
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m FormModel) submit() (FormModel, tea.Cmd) {
	msg, err := m.buildSubmit()
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}

	m.errText = ""
	return m, func() tea.Msg { return msg }
}

// buildSubmit assembles the draft message. Amounts stay raw text; the
// dispatch path validates them so a failed parse keeps the form values.
// Dates are parsed here for immediate feedback.
func (m FormModel) buildSubmit() (tea.Msg, error) {
	switch m.kind {
	case FormTransaction:
		date, err := model.ParseDate(m.value("Date"))
		if err != nil {
			return nil, err
		}
		return TransactionFormSubmitMsg{Draft: model.TransactionDraft{
			Type:        model.TransactionType(m.value("Type")),
			Amount:      m.value("Amount"),
			CategoryID:  m.value("Category"),
			Date:        date,
			Description: m.value("Description"),
			Currency:    strings.ToUpper(m.value("Currency")),
		}}, nil

	case FormCategory:
		return CategoryFormSubmitMsg{Draft: model.CategoryDraft{
			Name:  m.value("Name"),
			Type:  model.TransactionType(m.value("Type")),
			Color: m.value("Color"),
		}}, nil

	case FormBudget:
		return BudgetFormSubmitMsg{Draft: model.BudgetDraft{
			CategoryID: m.value("Category"),
			Amount:     m.value("Amount"),
			Period:     model.Period(m.value("Period")),
			Currency:   strings.ToUpper(m.value("Currency")),
		}}, nil

	default:
		return CurrencyFormSubmitMsg{Code: strings.ToUpper(m.value("Currency"))}, nil
	}
}

// View renders the form.
func (m FormModel) View() string {
	rows := []string{m.theme.Title.Render(m.title)}

	for i, f := range m.fields {
		label := m.theme.Subtitle.Render(padRight(f.label, 12))
		if i == m.focus {
			label = lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render(padRight(f.label, 12))
		}

		var value string
		switch f.kind {
		case fieldText:
			value = f.input.View()
		case fieldChoice:
			switch {
			case len(f.options) == 0:
				value = m.theme.Faint.Render("(none available)")
			case i == m.focus:
				value = fmt.Sprintf("◂ %s ▸", m.theme.Bold.Render(f.options[f.choice]))
			default:
				value = m.theme.Normal.Render(f.options[f.choice])
			}
		}

		rows = append(rows, label+" "+value)
	}

	if m.errText != "" {
		rows = append(rows, "", m.theme.StatusError.Render(m.errText))
	}

	hint := "enter next · esc cancel"
	if m.focus == len(m.fields)-1 {
		hint = "enter save · esc cancel"
	}
	rows = append(rows, "", m.theme.Faint.Render(hint))

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
