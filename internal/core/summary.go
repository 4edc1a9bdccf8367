package core

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals is the aggregate of a transaction view.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// MonthBucket is the cash flow of one calendar month.
type MonthBucket struct {
	Year    int
	Month   time.Month
	Label   string // short month name for chart axes
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryTotal represents an amount aggregated by category name.
type CategoryTotal struct {
	Name  string
	Value decimal.Decimal
}

// SavingsRate returns the balance as a percentage of income, or zero when
// there is no income. The value is not clamped.
func (t Totals) SavingsRate() decimal.Decimal {
	if !t.Income.IsPositive() {
		return decimal.Zero
	}
	return t.Balance.Div(t.Income).Mul(hundred)
}

// SavingsProgress is SavingsRate clamped to [0, 100] for progress bars.
func (t Totals) SavingsProgress() decimal.Decimal {
	r := t.SavingsRate()
	if r.IsNegative() {
		return decimal.Zero
	}
	if r.GreaterThan(hundred) {
		return hundred
	}
	return r
}

// Net returns income minus expense for the bucket.
func (b MonthBucket) Net() decimal.Decimal {
	return b.Income.Sub(b.Expense)
}
