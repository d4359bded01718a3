package api

import (
	"context"
	"sync"

	"github.com/budgielabs/budgie/internal/model"
)

// Mock is a mock implementation of Service for testing.
type Mock struct {
	// Functions that can be set by tests to control behavior
	TransactionsFn       func(ctx context.Context) ([]model.Transaction, error)
	TransactionsByTypeFn func(ctx context.Context, t model.TransactionType) ([]model.Transaction, error)
	CreateTransactionFn  func(ctx context.Context, req model.TransactionRequest) (model.Transaction, error)
	DeleteTransactionFn  func(ctx context.Context, id string) error
	CategoriesFn         func(ctx context.Context) ([]model.Category, error)
	CategoriesByTypeFn   func(ctx context.Context, t model.TransactionType) ([]model.Category, error)
	CreateCategoryFn     func(ctx context.Context, req model.CategoryRequest) (model.Category, error)
	DeleteCategoryFn     func(ctx context.Context, id string) error
	BudgetsFn            func(ctx context.Context) ([]model.Budget, error)
	BudgetsByPeriodFn    func(ctx context.Context, period model.Period) ([]model.Budget, error)
	CreateBudgetFn       func(ctx context.Context, req model.BudgetRequest) (model.Budget, error)
	DeleteBudgetFn       func(ctx context.Context, id string) error
	BudgetOverviewFn     func(ctx context.Context, period model.Period) ([]model.BudgetOverviewEntry, error)
	SpendingByCategoryFn func(ctx context.Context, period model.Period) ([]model.SpendingEntry, error)
	SettingsFn           func(ctx context.Context) (model.Settings, error)
	UpdateSettingsFn     func(ctx context.Context, update model.SettingsUpdate) (model.Settings, error)

	// Call tracking
	TransactionsCalls       int
	TransactionsByTypeCalls []model.TransactionType
	CreateTransactionCalls  []model.TransactionRequest
	DeleteTransactionCalls  []string
	CategoriesCalls         int
	CategoriesByTypeCalls   []model.TransactionType
	CreateCategoryCalls     []model.CategoryRequest
	DeleteCategoryCalls     []string
	BudgetsCalls            int
	BudgetsByPeriodCalls    []model.Period
	CreateBudgetCalls       []model.BudgetRequest
	DeleteBudgetCalls       []string
	BudgetOverviewCalls     []model.Period
	SpendingByCategoryCalls []model.Period
	SettingsCalls           int
	UpdateSettingsCalls     []model.SettingsUpdate

	mu sync.Mutex
}

// NewMock creates a new mock budget service client.
func NewMock() *Mock {
	return &Mock{}
}

// Transactions implements Service.Transactions.
func (m *Mock) Transactions(ctx context.Context) ([]model.Transaction, error) {
	m.mu.Lock()
	m.TransactionsCalls++
	m.mu.Unlock()

	if m.TransactionsFn != nil {
		return m.TransactionsFn(ctx)
	}
	return []model.Transaction{}, nil
}

// TransactionsByType implements Service.TransactionsByType.
func (m *Mock) TransactionsByType(ctx context.Context, t model.TransactionType) ([]model.Transaction, error) {
	m.mu.Lock()
	m.TransactionsByTypeCalls = append(m.TransactionsByTypeCalls, t)
	m.mu.Unlock()

	if m.TransactionsByTypeFn != nil {
		return m.TransactionsByTypeFn(ctx, t)
	}
	return []model.Transaction{}, nil
}

// CreateTransaction implements Service.CreateTransaction.
func (m *Mock) CreateTransaction(ctx context.Context, req model.TransactionRequest) (model.Transaction, error) {
	m.mu.Lock()
	m.CreateTransactionCalls = append(m.CreateTransactionCalls, req)
	m.mu.Unlock()

	if m.CreateTransactionFn != nil {
		return m.CreateTransactionFn(ctx, req)
	}
	return model.Transaction{}, nil
}

// DeleteTransaction implements Service.DeleteTransaction.
func (m *Mock) DeleteTransaction(ctx context.Context, id string) error {
	m.mu.Lock()
	m.DeleteTransactionCalls = append(m.DeleteTransactionCalls, id)
	m.mu.Unlock()

	if m.DeleteTransactionFn != nil {
		return m.DeleteTransactionFn(ctx, id)
	}
	return nil
}

// Categories implements Service.Categories.
func (m *Mock) Categories(ctx context.Context) ([]model.Category, error) {
	m.mu.Lock()
	m.CategoriesCalls++
	m.mu.Unlock()

	if m.CategoriesFn != nil {
		return m.CategoriesFn(ctx)
	}
	return []model.Category{}, nil
}

// CategoriesByType implements Service.CategoriesByType.
func (m *Mock) CategoriesByType(ctx context.Context, t model.TransactionType) ([]model.Category, error) {
	m.mu.Lock()
	m.CategoriesByTypeCalls = append(m.CategoriesByTypeCalls, t)
	m.mu.Unlock()

	if m.CategoriesByTypeFn != nil {
		return m.CategoriesByTypeFn(ctx, t)
	}
	return []model.Category{}, nil
}

// CreateCategory implements Service.CreateCategory.
func (m *Mock) CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error) {
	m.mu.Lock()
	m.CreateCategoryCalls = append(m.CreateCategoryCalls, req)
	m.mu.Unlock()

	if m.CreateCategoryFn != nil {
		return m.CreateCategoryFn(ctx, req)
	}
	return model.Category{}, nil
}

// DeleteCategory implements Service.DeleteCategory.
func (m *Mock) DeleteCategory(ctx context.Context, id string) error {
	m.mu.Lock()
	m.DeleteCategoryCalls = append(m.DeleteCategoryCalls, id)
	m.mu.Unlock()

	if m.DeleteCategoryFn != nil {
		return m.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// Budgets implements Service.Budgets.
func (m *Mock) Budgets(ctx context.Context) ([]model.Budget, error) {
	m.mu.Lock()
	m.BudgetsCalls++
	m.mu.Unlock()

	if m.BudgetsFn != nil {
		return m.BudgetsFn(ctx)
	}
	return []model.Budget{}, nil
}

// BudgetsByPeriod implements Service.BudgetsByPeriod.
func (m *Mock) BudgetsByPeriod(ctx context.Context, period model.Period) ([]model.Budget, error) {
	m.mu.Lock()
	m.BudgetsByPeriodCalls = append(m.BudgetsByPeriodCalls, period)
	m.mu.Unlock()

	if m.BudgetsByPeriodFn != nil {
		return m.BudgetsByPeriodFn(ctx, period)
	}
	return []model.Budget{}, nil
}

// CreateBudget implements Service.CreateBudget.
func (m *Mock) CreateBudget(ctx context.Context, req model.BudgetRequest) (model.Budget, error) {
	m.mu.Lock()
	m.CreateBudgetCalls = append(m.CreateBudgetCalls, req)
	m.mu.Unlock()

	if m.CreateBudgetFn != nil {
		return m.CreateBudgetFn(ctx, req)
	}
	return model.Budget{}, nil
}

// DeleteBudget implements Service.DeleteBudget.
func (m *Mock) DeleteBudget(ctx context.Context, id string) error {
	m.mu.Lock()
	m.DeleteBudgetCalls = append(m.DeleteBudgetCalls, id)
	m.mu.Unlock()

	if m.DeleteBudgetFn != nil {
		return m.DeleteBudgetFn(ctx, id)
	}
	return nil
}

// BudgetOverview implements Service.BudgetOverview.
func (m *Mock) BudgetOverview(ctx context.Context, period model.Period) ([]model.BudgetOverviewEntry, error) {
	m.mu.Lock()
	m.BudgetOverviewCalls = append(m.BudgetOverviewCalls, period)
	m.mu.Unlock()

	if m.BudgetOverviewFn != nil {
		return m.BudgetOverviewFn(ctx, period)
	}
	return []model.BudgetOverviewEntry{}, nil
}

// SpendingByCategory implements Service.SpendingByCategory.
func (m *Mock) SpendingByCategory(ctx context.Context, period model.Period) ([]model.SpendingEntry, error) {
	m.mu.Lock()
	m.SpendingByCategoryCalls = append(m.SpendingByCategoryCalls, period)
	m.mu.Unlock()

	if m.SpendingByCategoryFn != nil {
		return m.SpendingByCategoryFn(ctx, period)
	}
	return []model.SpendingEntry{}, nil
}

// Settings implements Service.Settings.
func (m *Mock) Settings(ctx context.Context) (model.Settings, error) {
	m.mu.Lock()
	m.SettingsCalls++
	m.mu.Unlock()

	if m.SettingsFn != nil {
		return m.SettingsFn(ctx)
	}
	return model.Settings{DefaultCurrency: model.DefaultCurrency}, nil
}

// UpdateSettings implements Service.UpdateSettings.
func (m *Mock) UpdateSettings(ctx context.Context, update model.SettingsUpdate) (model.Settings, error) {
	m.mu.Lock()
	m.UpdateSettingsCalls = append(m.UpdateSettingsCalls, update)
	m.mu.Unlock()

	if m.UpdateSettingsFn != nil {
		return m.UpdateSettingsFn(ctx, update)
	}
	return model.Settings{DefaultCurrency: update.DefaultCurrency}, nil
}

// Reset clears all call tracking.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TransactionsCalls = 0
	m.TransactionsByTypeCalls = nil
	m.CreateTransactionCalls = nil
	m.DeleteTransactionCalls = nil
	m.CategoriesCalls = 0
	m.CategoriesByTypeCalls = nil
	m.CreateCategoryCalls = nil
	m.DeleteCategoryCalls = nil
	m.BudgetsCalls = 0
	m.BudgetsByPeriodCalls = nil
	m.CreateBudgetCalls = nil
	m.DeleteBudgetCalls = nil
	m.BudgetOverviewCalls = nil
	m.SpendingByCategoryCalls = nil
	m.SettingsCalls = 0
	m.UpdateSettingsCalls = nil
}

// Ensure Mock implements the Service interface.
var _ Service = (*Mock)(nil)
