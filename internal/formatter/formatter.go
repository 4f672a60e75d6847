// Package formatter renders records for the terminal.
package formatter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fii/internal/calculator"
	"fii/internal/model"
	"fii/internal/recorder"
)

// MonthHeader labels the columns of model.Month.Format.
var MonthHeader = fmt.Sprintf("%-10s %10s %10s %12s %12s", "month", "income", "expenses", "investments", "inv. income")

// FormatMonth renders a single month line.
func FormatMonth(m model.Month, percent uint8) string {
	return m.Format(percent) + "\n"
}

// FormatYear renders the year id, its months, and a totals block.
func FormatYear(y *model.Year, percent uint8) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n", y))

	totals, err := calculator.CalculateYearTotals(y)
	if errors.Is(err, calculator.ErrNoMonths) {
		b.WriteString("  no months recorded\n")
		return b.String()
	}

	b.WriteString(MonthHeader + "\n")
	for _, m := range y.Months {
		b.WriteString(m.Format(percent) + "\n")
	}
	b.WriteString(strings.Repeat("-", len(MonthHeader)) + "\n")
	b.WriteString(fmt.Sprintf("income:       %s\n", totals.Income.StringFixed(0)))
	b.WriteString(fmt.Sprintf("expenses:     %s\n", totals.Expenses.StringFixed(0)))
	b.WriteString(fmt.Sprintf("savings:      %s\n", totals.Savings.StringFixed(0)))
	b.WriteString(fmt.Sprintf("savings rate: %s%%\n", totals.SavingsRate.StringFixed(2)))
	b.WriteString(fmt.Sprintf("investments:  %s (%d month(s))\n", totals.LatestInvestments.StringFixed(0), totals.Months))
	return b.String()
}

// FormatJournal renders journal entries one per line.
func FormatJournal(entries []recorder.MonthEntry) string {
	var b strings.Builder
	for _, e := range entries {
		action := "added"
		if e.Replaced {
			action = "replaced"
		}
		b.WriteString(fmt.Sprintf("%s  %-8s %d %-10s %10d %10d %12d\n",
			e.RecordedAt.Format("2006-01-02 15:04"), action, e.Year, e.Month,
			e.Income, e.Expenses, e.Investments))
	}
	return b.String()
}

// FormatNextDue renders when the next monthly snapshot is due.
func FormatNextDue(next time.Time) string {
	return fmt.Sprintf("next snapshot due: %s (%s)\n", next.Format("2006-01-02 15:04"), next.Format("January 2006"))
}
