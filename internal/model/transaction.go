package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money flowed in or out.
type TransactionType string

const (
	// TypeIncome marks transactions and categories on the income side.
	TypeIncome TransactionType = "income"
	// TypeExpense marks transactions and categories on the expense side.
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType validates a user- or wire-supplied type value.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("invalid transaction type %q (want income or expense)", s)
	}
}

// Transaction is a single income or expense entry as the budget service
// returns it. The client never edits a transaction in place; it is created
// once and deleted individually.
type Transaction struct {
	CreatedAt    time.Time       `json:"created_at"`
	ID           string          `json:"id"`
	Type         TransactionType `json:"type"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Description  string          `json:"description,omitempty"`
	Currency     string          `json:"currency"`
	Date         Date            `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
}

// TransactionRequest is the shape POSTed to create a transaction.
type TransactionRequest struct {
	Type        TransactionType `json:"type"`
	CategoryID  string          `json:"category_id"`
	Description string          `json:"description,omitempty"`
	Currency    string          `json:"currency"`
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
}
