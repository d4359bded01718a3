// Package dashboard implements the client-side store behind the budget
// dashboard: typed read models fetched from the service, derived summary
// statistics, and command dispatch with explicit invalidation.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/budgielabs/budgie/internal/api"
	"github.com/budgielabs/budgie/internal/model"
)

// ReadModel names one fetched collection the dashboard renders. Each is
// refreshed wholesale; there is no partial patching.
type ReadModel string

// The read models held by the store.
const (
	ReadTransactions ReadModel = "transactions"
	ReadCategories   ReadModel = "categories"
	ReadBudgets      ReadModel = "budgets"
	ReadOverview     ReadModel = "overview"
	ReadSpending     ReadModel = "spending"
	ReadSettings     ReadModel = "settings"
)

// AllReadModels returns every read model, in initial-load order.
func AllReadModels() []ReadModel {
	return []ReadModel{
		ReadCategories,
		ReadTransactions,
		ReadBudgets,
		ReadSettings,
		ReadOverview,
		ReadSpending,
	}
}

// Store owns the dashboard's view state. All fetched collections are
// replaced wholesale on success and left untouched on failure, so the
// dashboard always shows the last good data. Fetches carry a monotonic
// per-read-model token; a completion that is no longer the latest issued
// for its read model is dropped instead of overwriting newer state.
//
// The store never retries on its own. Failed operations come back as
// errors already tagged with severity; callers classify them with
// common.Classify and decide how to surface them.
type Store struct {
	svc    api.Service
	tokens map[ReadModel]uint64

	transactions []model.Transaction
	categories   []model.Category
	budgets      []model.Budget
	overview     []model.BudgetOverviewEntry
	spending     []model.SpendingEntry
	settings     model.Settings
	period       model.Period

	mu sync.RWMutex
}

// New creates a store backed by the given service client. The reporting
// period starts at the monthly default; settings hold the service default
// currency until the first fetch.
func New(svc api.Service) *Store {
	return &Store{
		svc:      svc,
		tokens:   make(map[ReadModel]uint64),
		period:   model.DefaultPeriod,
		settings: model.Settings{DefaultCurrency: model.DefaultCurrency},
	}
}

// Load fetches one read model from the service and replaces the held
// collection. Overview and spending are scoped to the currently selected
// period. On failure the previous collection is kept and the error is
// returned for the caller to classify. A fetch that completes after a newer
// fetch was issued for the same read model is discarded.
func (s *Store) Load(ctx context.Context, rm ReadModel) error {
	s.mu.Lock()
	s.tokens[rm]++
	token := s.tokens[rm]
	period := s.period
	s.mu.Unlock()

	switch rm {
	case ReadTransactions:
		transactions, err := s.svc.Transactions(ctx)
		if err != nil {
			return err
		}
		s.apply(rm, token, func() { s.transactions = transactions })
	case ReadCategories:
		categories, err := s.svc.Categories(ctx)
		if err != nil {
			return err
		}
		s.apply(rm, token, func() { s.categories = categories })
	case ReadBudgets:
		budgets, err := s.svc.Budgets(ctx)
		if err != nil {
			return err
		}
		s.apply(rm, token, func() { s.budgets = budgets })
	case ReadOverview:
		overview, err := s.svc.BudgetOverview(ctx, period)
		if err != nil {
			return err
		}
		s.apply(rm, token, func() { s.overview = overview })
	case ReadSpending:
		spending, err := s.svc.SpendingByCategory(ctx, period)
		if err != nil {
			return err
		}
		s.apply(rm, token, func() { s.spending = spending })
	case ReadSettings:
		settings, err := s.svc.Settings(ctx)
		if err != nil {
			return err
		}
		s.apply(rm, token, func() { s.settings = settings })
	default:
		return fmt.Errorf("unknown read model %q", rm)
	}

	return nil
}

// apply installs a fetched collection unless a newer fetch was issued for
// the same read model while this one was in flight.
func (s *Store) apply(rm ReadModel, token uint64, install func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokens[rm] != token {
		slog.Debug("Discarding stale fetch",
			"read_model", rm,
			"token", token,
			"latest", s.tokens[rm])
		return
	}
	install()
}

// Refresh loads the given read models in order, stopping at the first
// failure.
func (s *Store) Refresh(ctx context.Context, rms ...ReadModel) error {
	for _, rm := range rms {
		if err := s.Load(ctx, rm); err != nil {
			return err
		}
	}
	return nil
}

// SetPeriod selects a new reporting period and returns the read models
// that now need refreshing: exactly overview and spending. Transactions,
// categories, budgets and settings are period-independent and are not
// refetched. Selecting the already-current period is a no-op.
//
// The tokens for overview and spending are advanced immediately so that a
// fetch still in flight for the old period can no longer land.
func (s *Store) SetPeriod(p model.Period) []ReadModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p == s.period {
		return nil
	}
	s.period = p
	s.tokens[ReadOverview]++
	s.tokens[ReadSpending]++

	return []ReadModel{ReadOverview, ReadSpending}
}

// Dispatch executes a mutation against the service. On success it returns
// the read models the command invalidates, for the caller to refresh; the
// store applies no optimistic update. On failure nothing is invalidated
// and the error is returned for the caller to classify.
func (s *Store) Dispatch(ctx context.Context, cmd Command) ([]ReadModel, error) {
	if err := cmd.run(ctx, s.svc); err != nil {
		return nil, fmt.Errorf("%s: %w", cmd.Name(), err)
	}

	slog.Debug("Command applied",
		"command", cmd.Name(),
		"invalidates", cmd.Invalidates())

	return cmd.Invalidates(), nil
}

// Summary recomputes the derived totals from the full transaction list.
func (s *Store) Summary() model.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.Summarize(s.transactions)
}

// CategoriesByType returns the held categories whose type matches t. Forms
// use this so an expense form only offers expense categories.
func (s *Store) CategoriesByType(t model.TransactionType) []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.FilterCategories(s.categories, t)
}

// NewTransactionDraft returns an empty transaction form seeded with the
// default currency and today's date.
func (s *Store) NewTransactionDraft() model.TransactionDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.TransactionDraft{
		Type:     model.TypeExpense,
		Currency: s.settings.DefaultCurrency,
		Date:     model.Today(),
	}
}

// NewCategoryDraft returns an empty category form.
func (s *Store) NewCategoryDraft() model.CategoryDraft {
	return model.CategoryDraft{Type: model.TypeExpense}
}

// NewBudgetDraft returns an empty budget form seeded with the default
// currency and the selected period.
func (s *Store) NewBudgetDraft() model.BudgetDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.BudgetDraft{
		Currency: s.settings.DefaultCurrency,
		Period:   s.period,
	}
}

// Transactions returns the held transaction list. The returned slice is a
// snapshot; the store replaces rather than mutates it.
func (s *Store) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions
}

// Categories returns the held category list.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

// Budgets returns the held budget list.
func (s *Store) Budgets() []model.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budgets
}

// Overview returns the held budget overview for the selected period.
func (s *Store) Overview() []model.BudgetOverviewEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overview
}

// Spending returns the held per-category spending for the selected period.
func (s *Store) Spending() []model.SpendingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spending
}

// Settings returns the held settings singleton.
func (s *Store) Settings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Period returns the selected reporting period.
func (s *Store) Period() model.Period {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.period
}
