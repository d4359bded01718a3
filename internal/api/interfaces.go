package api

import (
	"context"

	"github.com/budgielabs/budgie/internal/model"
)

// Service defines the contract for talking to the budget tracker service.
// This interface allows for easy mocking in tests and swapping transports.
type Service interface {
	Transactions(ctx context.Context) ([]model.Transaction, error)
	TransactionsByType(ctx context.Context, t model.TransactionType) ([]model.Transaction, error)
	CreateTransaction(ctx context.Context, req model.TransactionRequest) (model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	Categories(ctx context.Context) ([]model.Category, error)
	CategoriesByType(ctx context.Context, t model.TransactionType) ([]model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	Budgets(ctx context.Context) ([]model.Budget, error)
	BudgetsByPeriod(ctx context.Context, period model.Period) ([]model.Budget, error)
	CreateBudget(ctx context.Context, req model.BudgetRequest) (model.Budget, error)
	DeleteBudget(ctx context.Context, id string) error

	BudgetOverview(ctx context.Context, period model.Period) ([]model.BudgetOverviewEntry, error)
	SpendingByCategory(ctx context.Context, period model.Period) ([]model.SpendingEntry, error)

	Settings(ctx context.Context) (model.Settings, error)
	UpdateSettings(ctx context.Context, update model.SettingsUpdate) (model.Settings, error)
}
