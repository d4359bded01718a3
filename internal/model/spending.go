package model

import "github.com/shopspring/decimal"

// SpendingEntry is the service's expense aggregate for one category within
// the selected period.
type SpendingEntry struct {
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	Color            string          `json:"color"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	TransactionCount int             `json:"transaction_count"`
}
