package stats

import (
	"sort"
	"time"

	"finanzas/internal/core"
)

// Filter returns the transactions of txs that fall in period p relative to
// now, most recent date first. Equal dates keep their input order.
func Filter(txs []core.Transaction, p core.Period, now time.Time) []core.Transaction {
	m := MatcherFor(p)
	today := core.Today(now)

	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if m.Matches(t.Date, today) {
			out = append(out, t)
		}
	}
	sortByDate(out, true)
	return out
}

// SortByDateDesc returns a copy of txs ordered by date, newest first.
func SortByDateDesc(txs []core.Transaction) []core.Transaction {
	out := append([]core.Transaction(nil), txs...)
	sortByDate(out, true)
	return out
}

// SortByDateAsc returns a copy of txs ordered by date, oldest first.
func SortByDateAsc(txs []core.Transaction) []core.Transaction {
	out := append([]core.Transaction(nil), txs...)
	sortByDate(out, false)
	return out
}

func sortByDate(txs []core.Transaction, desc bool) {
	sort.SliceStable(txs, func(i, j int) bool {
		if desc {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].Date.Before(txs[j].Date)
	})
}
