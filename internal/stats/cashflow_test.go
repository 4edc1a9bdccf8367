package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finanzas/internal/core"
)

func TestMonthlyCashFlow_ScenarioD(t *testing.T) {
	days := []string{
		"2024-05-03", "2023-10-09", "2024-02-14", "2023-11-30",
		"2024-04-01", "2023-12-24", "2024-01-15", "2024-03-08",
	}
	var txs []core.Transaction
	for i, d := range days {
		typ := core.Expense
		if i%2 == 0 {
			typ = core.Income
		}
		txs = append(txs, tx(t, d, "10", typ, d, "Comida"))
	}

	got := MonthlyCashFlow(txs)
	if len(got) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(got))
	}
	want := []struct {
		year  int
		month time.Month
		label string
	}{
		{2023, time.December, "dic"},
		{2024, time.January, "ene"},
		{2024, time.February, "feb"},
		{2024, time.March, "mar"},
		{2024, time.April, "abr"},
		{2024, time.May, "may"},
	}
	for i, w := range want {
		b := got[i]
		if b.Year != w.year || b.Month != w.month || b.Label != w.label {
			t.Errorf("bucket %d = %d-%02d %q, want %d-%02d %q", i, b.Year, b.Month, b.Label, w.year, w.month, w.label)
		}
	}
}

func TestCashFlow_SumsPerMonth(t *testing.T) {
	txs := []core.Transaction{
		tx(t, "a", "1000", core.Income, "2024-01-05", "Sueldo"),
		tx(t, "b", "200", core.Expense, "2024-01-10", "Comida"),
		tx(t, "c", "50.5", core.Expense, "2024-01-31", "Hogar"),
		tx(t, "d", "300", core.Income, "2025-01-02", "Freelance"),
		tx(t, "e", "7", core.TransactionType("transfer"), "2024-09-01", "Otros"),
	}
	got := CashFlow(txs, 0, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 buckets, got %+v", got)
	}
	if !got[0].Income.Equal(decimal.NewFromInt(1000)) || !got[0].Expense.Equal(decimal.RequireFromString("250.5")) {
		t.Errorf("january 2024 = %+v", got[0])
	}
	if got[1].Month != time.September || !got[1].Income.IsZero() || !got[1].Expense.IsZero() {
		t.Errorf("september bucket should be empty, got %+v", got[1])
	}
	if got[2].Year != 2025 || !got[2].Income.Equal(decimal.NewFromInt(300)) {
		t.Errorf("january 2025 = %+v", got[2])
	}
	if !got[0].Net().Equal(decimal.RequireFromString("749.5")) {
		t.Errorf("net = %s", got[0].Net())
	}
}

func TestCashFlow_CustomLabel(t *testing.T) {
	txs := []core.Transaction{tx(t, "a", "1", core.Income, "2024-09-05", "Sueldo")}
	got := CashFlow(txs, 6, func(year int, m time.Month) string { return m.String()[:3] })
	if got[0].Label != "Sep" {
		t.Fatalf("label = %q", got[0].Label)
	}
	if SpanishShortMonth(2024, time.September) != "set" {
		t.Fatalf("unexpected es-PE label for september")
	}
}

func TestMonthlyCashFlow_Empty(t *testing.T) {
	got := MonthlyCashFlow(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
