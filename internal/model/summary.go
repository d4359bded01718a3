package model

import "github.com/shopspring/decimal"

// Summary holds the aggregates derived from the in-memory transaction list.
// It is always recomputed from the full list, never maintained
// incrementally, so it can only be as stale as the last transaction fetch.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Net           decimal.Decimal
	Count         int
}

// Summarize computes income, expense and net totals over a transaction
// list. Net is income minus expenses.
func Summarize(transactions []Transaction) Summary {
	s := Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Count:         len(transactions),
	}
	for _, t := range transactions {
		switch t.Type {
		case TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case TypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
		}
	}
	s.Net = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}
