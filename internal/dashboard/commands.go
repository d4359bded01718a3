package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/budgielabs/budgie/internal/api"
	"github.com/budgielabs/budgie/internal/model"
)

// Command is a mutation the store can dispatch. Each command declares the
// read models it invalidates on success; the caller refreshes exactly
// those. The table replaces the old implicit knowledge of which fetches
// follow which mutation.
type Command interface {
	// Name identifies the command in logs and error messages.
	Name() string
	// Invalidates lists the read models stale after a successful run.
	Invalidates() []ReadModel

	run(ctx context.Context, svc api.Service) error
}

// CreateTransaction records a new transaction from a validated draft.
type CreateTransaction struct {
	Draft model.TransactionDraft
}

func (c CreateTransaction) Name() string { return "create-transaction" }

// Invalidates reports transactions plus both period aggregates: a new
// transaction moves the totals, the budget overview and the spending
// breakdown.
func (c CreateTransaction) Invalidates() []ReadModel {
	return []ReadModel{ReadTransactions, ReadOverview, ReadSpending}
}

func (c CreateTransaction) run(ctx context.Context, svc api.Service) error {
	req, err := c.Draft.Validate()
	if err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	_, err = svc.CreateTransaction(ctx, req)
	return err
}

// CreateCategory adds a new category from a validated draft.
type CreateCategory struct {
	Draft model.CategoryDraft
}

func (c CreateCategory) Name() string { return "create-category" }

// Invalidates reports only categories; no transaction references the new
// category yet, so the aggregates are unchanged.
func (c CreateCategory) Invalidates() []ReadModel {
	return []ReadModel{ReadCategories}
}

func (c CreateCategory) run(ctx context.Context, svc api.Service) error {
	req, err := c.Draft.Validate()
	if err != nil {
		return fmt.Errorf("invalid category: %w", err)
	}
	_, err = svc.CreateCategory(ctx, req)
	return err
}

// CreateBudget sets a budget from a validated draft. The service upserts
// on (category, period), so this also covers changing an existing budget.
type CreateBudget struct {
	Draft model.BudgetDraft
}

func (c CreateBudget) Name() string { return "create-budget" }

// Invalidates reports only the overview: spending ignores budgets and the
// raw budget list is not part of the default dashboard.
func (c CreateBudget) Invalidates() []ReadModel {
	return []ReadModel{ReadOverview}
}

func (c CreateBudget) run(ctx context.Context, svc api.Service) error {
	req, err := c.Draft.Validate()
	if err != nil {
		return fmt.Errorf("invalid budget: %w", err)
	}
	_, err = svc.CreateBudget(ctx, req)
	return err
}

// DeleteTransaction removes one transaction by ID.
type DeleteTransaction struct {
	ID string
}

func (c DeleteTransaction) Name() string { return "delete-transaction" }

// Invalidates mirrors CreateTransaction: the totals and both period
// aggregates shift when a transaction disappears.
func (c DeleteTransaction) Invalidates() []ReadModel {
	return []ReadModel{ReadTransactions, ReadOverview, ReadSpending}
}

func (c DeleteTransaction) run(ctx context.Context, svc api.Service) error {
	if c.ID == "" {
		return fmt.Errorf("transaction id is required")
	}
	return svc.DeleteTransaction(ctx, c.ID)
}

// DeleteCategory removes one category by ID.
type DeleteCategory struct {
	ID string
}

func (c DeleteCategory) Name() string { return "delete-category" }

func (c DeleteCategory) Invalidates() []ReadModel {
	return []ReadModel{ReadCategories}
}

func (c DeleteCategory) run(ctx context.Context, svc api.Service) error {
	if c.ID == "" {
		return fmt.Errorf("category id is required")
	}
	return svc.DeleteCategory(ctx, c.ID)
}

// DeleteBudget removes one budget by ID.
type DeleteBudget struct {
	ID string
}

func (c DeleteBudget) Name() string { return "delete-budget" }

func (c DeleteBudget) Invalidates() []ReadModel {
	return []ReadModel{ReadOverview}
}

func (c DeleteBudget) run(ctx context.Context, svc api.Service) error {
	if c.ID == "" {
		return fmt.Errorf("budget id is required")
	}
	return svc.DeleteBudget(ctx, c.ID)
}

// UpdateDefaultCurrency changes the app-wide default currency.
type UpdateDefaultCurrency struct {
	Code string
}

func (c UpdateDefaultCurrency) Name() string { return "update-default-currency" }

// Invalidates reports settings; existing transactions keep the currency
// they were recorded with.
func (c UpdateDefaultCurrency) Invalidates() []ReadModel {
	return []ReadModel{ReadSettings}
}

func (c UpdateDefaultCurrency) run(ctx context.Context, svc api.Service) error {
	code := strings.ToUpper(strings.TrimSpace(c.Code))
	if code == "" {
		return fmt.Errorf("currency is required")
	}
	_, err := svc.UpdateSettings(ctx, model.SettingsUpdate{DefaultCurrency: code})
	return err
}
