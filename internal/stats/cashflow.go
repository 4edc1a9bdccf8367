package stats

import (
	"time"

	"finanzas/internal/core"
)

const (
	// CashFlowMonths is how many monthly buckets the cash-flow chart shows.
	CashFlowMonths = 6
	// TopCategoryCount is how many categories the breakdown chart shows.
	TopCategoryCount = 5
)

// MonthlyCashFlow buckets txs by calendar month and returns the last six
// buckets in ascending order, labelled with Spanish short month names.
func MonthlyCashFlow(txs []core.Transaction) []core.MonthBucket {
	return CashFlow(txs, CashFlowMonths, SpanishShortMonth)
}

// CashFlow buckets txs by (year, month). Buckets are emitted in the order
// their month first appears in an ascending date sort, and only the last
// limit buckets are returned. A non-positive limit returns every bucket.
func CashFlow(txs []core.Transaction, limit int, label MonthLabeler) []core.MonthBucket {
	if label == nil {
		label = SpanishShortMonth
	}
	type key struct {
		year  int
		month time.Month
	}

	buckets := make([]core.MonthBucket, 0)
	index := make(map[key]int)
	for _, t := range SortByDateAsc(txs) {
		k := key{t.Date.Year, t.Date.Month}
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, core.MonthBucket{
				Year:  k.year,
				Month: k.month,
				Label: label(k.year, k.month),
			})
		}
		switch t.Type {
		case core.Income:
			buckets[i].Income = buckets[i].Income.Add(t.Amount)
		case core.Expense:
			buckets[i].Expense = buckets[i].Expense.Add(t.Amount)
		}
	}

	if limit > 0 && len(buckets) > limit {
		buckets = buckets[len(buckets)-limit:]
	}
	return buckets
}
