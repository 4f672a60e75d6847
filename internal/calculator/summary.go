package calculator

import (
	"errors"

	"github.com/shopspring/decimal"

	"fii/internal/model"
)

var hundred = decimal.NewFromInt(100)

// ErrNoMonths is returned when a year has nothing to summarize.
var ErrNoMonths = errors.New("no months recorded for year")

// YearTotals aggregates the months of one year.
type YearTotals struct {
	Months            int
	Income            decimal.Decimal
	Expenses          decimal.Decimal
	Savings           decimal.Decimal // Income - Expenses, may be negative
	SavingsRate       decimal.Decimal // percent of Income, rounded to 2 places
	LatestInvestments decimal.Decimal // investments of the last month in sequence order
}

// CalculateYearTotals sums income and expenses across the months of y.
func CalculateYearTotals(y *model.Year) (YearTotals, error) {
	if y == nil || len(y.Months) == 0 {
		return YearTotals{}, ErrNoMonths
	}

	totals := YearTotals{Months: len(y.Months)}
	for _, m := range y.Months {
		totals.Income = totals.Income.Add(decimal.NewFromInt(int64(m.Income)))
		totals.Expenses = totals.Expenses.Add(decimal.NewFromInt(int64(m.Expenses)))
	}
	totals.Savings = totals.Income.Sub(totals.Expenses)
	totals.SavingsRate = CalculateSavingsRate(totals.Income, totals.Expenses)
	totals.LatestInvestments = decimal.NewFromInt(int64(y.Months[len(y.Months)-1].Investments))
	return totals, nil
}

// CalculateSavingsRate returns (income - expenses) / income as a percentage.
// Zero income yields zero.
func CalculateSavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(hundred).Round(2)
}
