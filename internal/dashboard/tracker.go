// Package dashboard exposes the transaction ledger to a presentation layer:
// the selected period, the filtered view with its totals and the chart series.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"finanzas/internal/cache"
	"finanzas/internal/core"
	"finanzas/internal/ledger"
	"finanzas/internal/log"
	"finanzas/internal/stats"
)

// RecentCount is how many transactions the dashboard list shows.
const RecentCount = 5

// View is the period-filtered snapshot the dashboard renders.
type View struct {
	Period       core.Period
	Today        time.Time
	Transactions []core.Transaction
	Totals       core.Totals
}

// Tracker is not safe for concurrent use; it belongs to one presentation loop.
type Tracker struct {
	store  *ledger.Store
	period core.Period
	now    func() time.Time
	views  cache.Cache[View]
	logger *log.Logger
}

type Option func(*Tracker)

// WithClock sets the clock used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithPeriod sets the initial period. Unknown values are ignored.
func WithPeriod(p core.Period) Option {
	return func(t *Tracker) {
		if p.IsValid() {
			t.period = p
		}
	}
}

// WithCache memoizes views in c.
func WithCache(c cache.Cache[View]) Option {
	return func(t *Tracker) {
		if c != nil {
			t.views = c
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger.WithComponent(log.ComponentDashboard)
		}
	}
}

// New builds a Tracker over store with the month period selected.
func New(store *ledger.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:  store,
		period: core.Month,
		now:    time.Now,
		views:  cache.Noop[View]{},
		logger: log.Default(log.ComponentDashboard),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetPeriod changes the selected period. A value outside the known set is
// kept as given and filters like core.All.
func (t *Tracker) SetPeriod(p core.Period) {
	if p == t.period {
		return
	}
	t.logger.Debug("Period changed", "from", t.period, log.FieldPeriod, p)
	t.period = p
}

func (t *Tracker) Period() core.Period {
	return t.period
}

// Create adds a transaction to the ledger.
func (t *Tracker) Create(ctx context.Context, d core.Draft) core.Transaction {
	return t.store.Create(ctx, d)
}

// Delete removes a transaction from the ledger, reporting whether it existed.
func (t *Tracker) Delete(ctx context.Context, id string) bool {
	return t.store.Delete(ctx, id)
}

// Transactions returns the whole collection in creation order, newest first.
func (t *Tracker) Transactions() []core.Transaction {
	return t.store.List()
}

// View returns the transactions of the selected period, newest date first,
// together with their totals.
func (t *Tracker) View() View {
	now := t.now()
	key := fmt.Sprintf("%d|%s|%s", t.store.Version(), t.period, core.Today(now))
	if v, ok := t.views.Get(key); ok {
		return cloneView(v)
	}

	t.logger.Debug("Computing view", log.FieldPeriod, t.period, log.FieldVersion, t.store.Version())
	filtered := stats.Filter(t.store.List(), t.period, now)
	v := View{
		Period:       t.period,
		Today:        now,
		Transactions: filtered,
		Totals:       stats.Summarize(filtered),
	}
	t.views.Set(key, v)
	return cloneView(v)
}

// Recent returns at most n transactions from the current view.
func (t *Tracker) Recent(n int) []core.Transaction {
	txs := t.View().Transactions
	if n < 0 {
		n = 0
	}
	if n < len(txs) {
		txs = txs[:n]
	}
	return txs
}

// CashFlow returns the monthly income/expense series over the whole history,
// independent of the selected period.
func (t *Tracker) CashFlow() []core.MonthBucket {
	return stats.MonthlyCashFlow(t.store.List())
}

// TopCategories returns the largest expense categories over the whole history.
func (t *Tracker) TopCategories() []core.CategoryTotal {
	return stats.TopExpenseCategories(t.store.List())
}

func cloneView(v View) View {
	v.Transactions = append([]core.Transaction{}, v.Transactions...)
	return v
}
