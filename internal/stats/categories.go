package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"finanzas/internal/core"
)

// TopExpenseCategories returns the five expense categories with the highest
// totals, largest first.
func TopExpenseCategories(txs []core.Transaction) []core.CategoryTotal {
	return TopCategories(txs, core.Expense, TopCategoryCount)
}

// TopCategories sums the amounts of txs of type typ per category and returns
// at most limit entries sorted by value, descending. Categories are matched
// exactly; equal sums keep the order in which the category first appeared.
// A non-positive limit returns every category.
func TopCategories(txs []core.Transaction, typ core.TransactionType, limit int) []core.CategoryTotal {
	totals := make([]core.CategoryTotal, 0)
	index := make(map[string]int)
	for _, t := range txs {
		if t.Type != typ {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, core.CategoryTotal{Name: t.Category, Value: decimal.Zero})
		}
		totals[i].Value = totals[i].Value.Add(t.Amount)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Value.GreaterThan(totals[j].Value)
	})

	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}
