package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/budgielabs/budgie/internal/api"
	"github.com/budgielabs/budgie/internal/config"
	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/storage"
)

// initClient builds the budget service client from configuration.
func initClient() (*api.Client, error) {
	client, err := api.NewClient(config.LoadAPIConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}
	return client, nil
}

// initLedger opens the local import ledger with proper path expansion.
func initLedger(ctx context.Context) (*storage.ImportLedger, error) {
	// Get ledger path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultLedgerPath()
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	ledger, err := storage.NewImportLedger(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := ledger.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return ledger, nil
}

// periodFromFlag parses a --period value, falling back to the default
// period when the flag is unset.
func periodFromFlag(value string) (model.Period, error) {
	if value == "" {
		return model.DefaultPeriod, nil
	}
	return model.ParsePeriod(value)
}

// resolveCategory finds a category of the given type by ID or name.
func resolveCategory(ctx context.Context, svc api.Service, t model.TransactionType, idOrName string) (model.Category, error) {
	if idOrName == "" {
		return model.Category{}, fmt.Errorf("category is required")
	}

	categories, err := svc.CategoriesByType(ctx, t)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get categories: %w", err)
	}

	for _, cat := range categories {
		if cat.ID == idOrName || strings.EqualFold(cat.Name, idOrName) {
			return cat, nil
		}
	}

	return model.Category{}, fmt.Errorf("no %s category matching %q", t, idOrName)
}

// defaultCurrency returns the service-wide default currency, falling back
// to the built-in default when settings cannot be fetched.
func defaultCurrency(ctx context.Context, svc api.Service) string {
	settings, err := svc.Settings(ctx)
	if err != nil || settings.DefaultCurrency == "" {
		return model.DefaultCurrency
	}
	return settings.DefaultCurrency
}

// confirmAction prompts for a yes/no confirmation unless force is set.
func confirmAction(prompt string, force bool) bool {
	if force {
		return true
	}
	fmt.Printf("%s (y/N): ", prompt)
	var response string
	_, _ = fmt.Scanln(&response)
	return strings.ToLower(response) == "y"
}
