package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthEntry is one transaction row joined with its category, as returned
// by the reporting query for a month window.
type MonthEntry struct {
	Amount       decimal.Decimal
	Kind         CategoryKind
	CategoryName string
}

// CategoryTotal is one line of the monthly report: an expense category,
// its summed amount and its share of the month's total expenses.
type CategoryTotal struct {
	Name    string
	Amount  decimal.Decimal
	Percent decimal.Decimal
}

// MonthlyReport aggregates a calendar month of transactions.
// HasEntries is false when the month has no transactions at all; in that
// case the totals are zero and TopCategories is empty.
type MonthlyReport struct {
	Year          int
	Month         time.Month
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	TopCategories []CategoryTotal
	HasEntries    bool
}
