package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a spending limit for one expense category within a period.
// The service upserts on (category_id, period), so submitting a second
// budget for the same pair replaces the amount instead of duplicating.
type Budget struct {
	CreatedAt    time.Time       `json:"created_at"`
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Currency     string          `json:"currency"`
	Period       Period          `json:"period"`
	Amount       decimal.Decimal `json:"amount"`
}

// BudgetRequest is the shape POSTed to create or replace a budget.
type BudgetRequest struct {
	CategoryID string          `json:"category_id"`
	Currency   string          `json:"currency"`
	Period     Period          `json:"period"`
	Amount     decimal.Decimal `json:"amount"`
}

// BudgetOverviewEntry is the service's spend-vs-budget comparison for one
// category within the selected period. All figures are computed server-side;
// the client renders them as-is.
type BudgetOverviewEntry struct {
	CategoryID      string          `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	CategoryColor   string          `json:"category_color"`
	Currency        string          `json:"currency"`
	Period          Period          `json:"period"`
	BudgetAmount    decimal.Decimal `json:"budget_amount"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	PercentageUsed  float64         `json:"percentage_used"`
	IsOverBudget    bool            `json:"is_over_budget"`
}
