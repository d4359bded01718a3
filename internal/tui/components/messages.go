package components

import "github.com/budgielabs/budgie/internal/model"

// TransactionFormSubmitMsg carries a filled transaction form.
type TransactionFormSubmitMsg struct {
	Draft model.TransactionDraft
}

// CategoryFormSubmitMsg carries a filled category form.
type CategoryFormSubmitMsg struct {
	Draft model.CategoryDraft
}

// BudgetFormSubmitMsg carries a filled budget form.
type BudgetFormSubmitMsg struct {
	Draft model.BudgetDraft
}

// CurrencyFormSubmitMsg carries a new default currency code.
type CurrencyFormSubmitMsg struct {
	Code string
}

// FormCancelMsg requests closing the active form without submitting.
type FormCancelMsg struct{}
