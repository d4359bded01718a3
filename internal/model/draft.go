package model

import (
	"fmt"
	"regexp"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// TransactionDraft is unsaved transaction form input. The amount stays raw
// text until Validate parses it, so a typo never leaves the form as a
// malformed number.
type TransactionDraft struct {
	Type        TransactionType
	Amount      string
	CategoryID  string
	Description string
	Currency    string
	Date        Date
}

// Validate checks the draft and converts it into the request shape sent to
// the service. The draft itself is left untouched so a failed submission
// keeps the form populated.
func (d TransactionDraft) Validate() (TransactionRequest, error) {
	if _, err := ParseTransactionType(string(d.Type)); err != nil {
		return TransactionRequest{}, err
	}
	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return TransactionRequest{}, fmt.Errorf("amount %q: %w", d.Amount, err)
	}
	if d.CategoryID == "" {
		return TransactionRequest{}, fmt.Errorf("category is required")
	}
	if d.Date.IsZero() {
		return TransactionRequest{}, fmt.Errorf("date is required")
	}
	if d.Currency == "" {
		return TransactionRequest{}, fmt.Errorf("currency is required")
	}

	return TransactionRequest{
		Type:        d.Type,
		Amount:      amount,
		CategoryID:  d.CategoryID,
		Description: d.Description,
		Date:        d.Date,
		Currency:    d.Currency,
	}, nil
}

// CategoryDraft is unsaved category form input.
type CategoryDraft struct {
	Name  string
	Color string
	Type  TransactionType
}

// Validate checks the draft and converts it into the request shape. An
// empty color is allowed; the service applies its default.
func (d CategoryDraft) Validate() (CategoryRequest, error) {
	if d.Name == "" {
		return CategoryRequest{}, fmt.Errorf("name is required")
	}
	if _, err := ParseTransactionType(string(d.Type)); err != nil {
		return CategoryRequest{}, err
	}
	if d.Color != "" && !hexColorRe.MatchString(d.Color) {
		return CategoryRequest{}, fmt.Errorf("invalid color %q (want #RRGGBB)", d.Color)
	}

	return CategoryRequest{
		Name:  d.Name,
		Color: d.Color,
		Type:  d.Type,
	}, nil
}

// BudgetDraft is unsaved budget form input.
type BudgetDraft struct {
	CategoryID string
	Amount     string
	Currency   string
	Period     Period
}

// Validate checks the draft and converts it into the request shape.
// Budgets only make sense against expense categories; callers are expected
// to offer only those, and the service rejects unknown category IDs.
func (d BudgetDraft) Validate() (BudgetRequest, error) {
	if d.CategoryID == "" {
		return BudgetRequest{}, fmt.Errorf("category is required")
	}
	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return BudgetRequest{}, fmt.Errorf("amount %q: %w", d.Amount, err)
	}
	if _, err := ParsePeriod(string(d.Period)); err != nil {
		return BudgetRequest{}, err
	}
	if d.Currency == "" {
		return BudgetRequest{}, fmt.Errorf("currency is required")
	}

	return BudgetRequest{
		CategoryID: d.CategoryID,
		Amount:     amount,
		Period:     d.Period,
		Currency:   d.Currency,
	}, nil
}
