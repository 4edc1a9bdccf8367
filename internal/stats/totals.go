package stats

import (
	"github.com/shopspring/decimal"

	"finanzas/internal/core"
)

// Summarize adds up income and expense of txs. Transactions of any other
// type are ignored. No rounding is applied.
func Summarize(txs []core.Transaction) core.Totals {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case core.Income:
			income = income.Add(t.Amount)
		case core.Expense:
			expense = expense.Add(t.Amount)
		}
	}
	return core.Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
