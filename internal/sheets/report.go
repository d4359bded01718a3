package sheets

import (
	"time"

	"github.com/budgielabs/budgie/internal/model"
)

// Report is the data written to the spreadsheet: the derived totals, the
// full transaction list, and the budget overview for the selected period.
type Report struct {
	GeneratedAt  time.Time
	Currency     string
	Period       model.Period
	Summary      model.Summary
	Transactions []model.Transaction
	Overview     []model.BudgetOverviewEntry
}
