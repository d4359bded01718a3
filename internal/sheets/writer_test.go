package sheets

import (
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgielabs/budgie/internal/model"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		config  Config
		wantErr bool
	}{
		{
			name: "valid oauth config",
			config: Config{
				ClientID:      "test-client",
				ClientSecret:  "test-secret",
				RefreshToken:  "test-token",
				BatchSize:     100,
				RetryAttempts: 3,
				RetryDelay:    time.Second,
			},
			wantErr: false,
		},
		{
			name: "valid service account config",
			config: Config{
				ServiceAccountPath: "/path/to/key.json",
				BatchSize:          100,
				RetryAttempts:      3,
				RetryDelay:         time.Second,
			},
			wantErr: false,
		},
		{
			name: "missing auth",
			config: Config{
				BatchSize:     100,
				RetryAttempts: 3,
				RetryDelay:    time.Second,
			},
			wantErr: true,
			errMsg:  "no authentication method configured",
		},
		{
			name: "multiple auth methods",
			config: Config{
				ClientID:           "test-client",
				ClientSecret:       "test-secret",
				RefreshToken:       "test-token",
				ServiceAccountPath: "/path/to/key.json",
				BatchSize:          100,
				RetryAttempts:      3,
				RetryDelay:         time.Second,
			},
			wantErr: true,
			errMsg:  "multiple authentication methods configured",
		},
		{
			name: "partial oauth falls back to no auth",
			config: Config{
				ClientID:      "test-client",
				BatchSize:     100,
				RetryAttempts: 3,
				RetryDelay:    time.Second,
			},
			wantErr: true,
			errMsg:  "no authentication method configured",
		},
		{
			name: "invalid batch size",
			config: Config{
				ServiceAccountPath: "/path/to/key.json",
				BatchSize:          0,
				RetryAttempts:      3,
				RetryDelay:         time.Second,
			},
			wantErr: true,
			errMsg:  "batch size must be positive",
		},
		{
			name: "negative retry attempts",
			config: Config{
				ServiceAccountPath: "/path/to/key.json",
				BatchSize:          100,
				RetryAttempts:      -1,
				RetryDelay:         time.Second,
			},
			wantErr: true,
			errMsg:  "retry attempts cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfigIsValidWithAuth(t *testing.T) {
	config := DefaultConfig()
	config.ServiceAccountPath = "/path/to/key.json"
	require.NoError(t, config.Validate())
	assert.Equal(t, "Budget Report", config.SpreadsheetName)
}

func TestPrepareReportData(t *testing.T) {
	writer := &Writer{
		config: DefaultConfig(),
		logger: slog.Default(),
	}

	report := &Report{
		GeneratedAt: time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
		Currency:    "USD",
		Period:      model.PeriodMonthly,
		Summary: model.Summary{
			TotalIncome:   decimal.NewFromInt(150),
			TotalExpenses: decimal.NewFromInt(30),
			Net:           decimal.NewFromInt(120),
			Count:         3,
		},
		Transactions: []model.Transaction{
			{
				ID:           "t-old",
				Type:         model.TypeExpense,
				Amount:       decimal.NewFromInt(30),
				CategoryName: "Groceries",
				Date:         model.NewDate(2024, 3, 1),
				Currency:     "USD",
			},
			{
				ID:           "t-new",
				Type:         model.TypeIncome,
				Amount:       decimal.NewFromInt(150),
				CategoryName: "Salary",
				Date:         model.NewDate(2024, 3, 15),
				Currency:     "USD",
			},
		},
		Overview: []model.BudgetOverviewEntry{
			{
				CategoryName:   "Groceries",
				BudgetAmount:   decimal.NewFromInt(200),
				SpentAmount:    decimal.NewFromInt(30),
				PercentageUsed: 15,
			},
			{
				CategoryName:   "Rent",
				BudgetAmount:   decimal.NewFromInt(1000),
				SpentAmount:    decimal.NewFromInt(1100),
				PercentageUsed: 110,
				IsOverBudget:   true,
			},
		},
	}

	values := writer.prepareReportData(report)

	// Title row carries the period.
	require.NotEmpty(t, values)
	assert.Equal(t, "Budget Report", values[0][0])
	assert.Contains(t, values[0][1], "monthly")

	// Totals.
	assert.Equal(t, []any{"Total Income", "150", "USD"}, values[3])
	assert.Equal(t, []any{"Total Expenses", "30", "USD"}, values[4])
	assert.Equal(t, []any{"Net", "120", "USD"}, values[5])
	assert.Equal(t, []any{"Transactions", 3}, values[6])

	// Overview sorted most-used first; the over-budget row leads.
	assert.Equal(t, "Rent", values[10][0])
	assert.Equal(t, true, values[10][5])
	assert.Equal(t, "Groceries", values[11][0])

	// Transactions sorted newest first after their header.
	assert.Equal(t, []any{"Date", "Type", "Category", "Description", "Amount", "Currency"}, values[14])
	assert.Equal(t, "2024-03-15", values[15][0])
	assert.Equal(t, "income", values[15][1])
	assert.Equal(t, "2024-03-01", values[16][0])

	// Source slices were not reordered in place.
	assert.Equal(t, "t-old", report.Transactions[0].ID)
	assert.Equal(t, "Groceries", report.Overview[0].CategoryName)
}
