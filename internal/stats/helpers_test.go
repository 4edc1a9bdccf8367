package stats

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"finanzas/internal/core"
)

func date(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func tx(t *testing.T, id string, amount string, typ core.TransactionType, day string, category string) core.Transaction {
	t.Helper()
	return core.Transaction{
		ID:            id,
		Name:          id,
		Amount:        decimal.RequireFromString(amount),
		Type:          typ,
		Category:      category,
		Date:          date(t, day),
		PaymentMethod: core.DefaultPaymentMethod,
	}
}

func at(day string) time.Time {
	tm, err := time.Parse("2006-01-02 15:04", day+" 12:00")
	if err != nil {
		panic(err)
	}
	return tm
}

func ids(txs []core.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
