package model

import "fmt"

// Period is the reporting granularity for budget and spending aggregation.
type Period string

const (
	// PeriodWeekly aggregates over the current week (Monday start).
	PeriodWeekly Period = "weekly"
	// PeriodMonthly aggregates over the current calendar month.
	PeriodMonthly Period = "monthly"
	// PeriodYearly aggregates over the current calendar year.
	PeriodYearly Period = "yearly"
)

// DefaultPeriod is what the dashboard opens with.
const DefaultPeriod = PeriodMonthly

// ParsePeriod validates a user- or wire-supplied period value.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeekly:
		return PeriodWeekly, nil
	case PeriodMonthly:
		return PeriodMonthly, nil
	case PeriodYearly:
		return PeriodYearly, nil
	default:
		return "", fmt.Errorf("invalid period %q (want weekly, monthly or yearly)", s)
	}
}

// Next cycles weekly -> monthly -> yearly -> weekly. The dashboard binds
// this to the period toggle key.
func (p Period) Next() Period {
	switch p {
	case PeriodWeekly:
		return PeriodMonthly
	case PeriodMonthly:
		return PeriodYearly
	default:
		return PeriodWeekly
	}
}

func (p Period) String() string {
	return string(p)
}
