package model

import "fmt"

// DefaultWithdrawalPercent is the safe-withdrawal rate used when none is configured.
const DefaultWithdrawalPercent uint8 = 4

// Month is one month's financial snapshot.
type Month struct {
	Name        string `yaml:"name"`
	Income      uint32 `yaml:"income"`
	Expenses    uint16 `yaml:"expenses"`
	Investments uint32 `yaml:"investments"` // balance at month end
}

// NewMonth builds a Month. Values are taken as-is, no range checks are made.
func NewMonth(name string, income uint32, expenses uint16, investments uint32) Month {
	return Month{
		Name:        name,
		Income:      income,
		Expenses:    expenses,
		Investments: investments,
	}
}

// InvestmentIncome returns the hypothetical withdrawal of percent of the investment balance.
// The division happens before the multiplication so results match previously displayed values.
func (m Month) InvestmentIncome(percent uint8) float64 {
	return float64(m.Investments) / 100 * float64(percent)
}

// Equal reports whether every field of m and o matches.
func (m Month) Equal(o Month) bool {
	return m == o
}

// Format renders the month as a fixed-width terminal line, investment income at percent.
func (m Month) Format(percent uint8) string {
	return fmt.Sprintf("%-10s %10d %10d %12d %12.2f",
		m.Name, m.Income, m.Expenses, m.Investments, m.InvestmentIncome(percent))
}

func (m Month) String() string {
	return m.Format(DefaultWithdrawalPercent)
}
