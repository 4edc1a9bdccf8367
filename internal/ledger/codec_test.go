package ledger

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"finanzas/internal/core"
)

func sampleTransactions() []core.Transaction {
	return []core.Transaction{
		{
			ID:            "b",
			Name:          "Almuerzo",
			Amount:        decimal.RequireFromString("12.35"),
			Type:          core.Expense,
			Category:      "Comida",
			Date:          civil.Date{Year: 2024, Month: time.January, Day: 10},
			PaymentMethod: "Tarjeta Débito",
		},
		{
			ID:            "a",
			Name:          "Sueldo enero",
			Amount:        decimal.NewFromInt(1000),
			Type:          core.Income,
			Category:      "Sueldo",
			Date:          civil.Date{Year: 2024, Month: time.January, Day: 5},
			PaymentMethod: "Transferencia",
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := sampleTransactions()
	raw, err := Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d transactions, got %d", len(in), len(out))
	}
	for i := range in {
		a, b := in[i], out[i]
		if a.ID != b.ID || a.Name != b.Name || !a.Amount.Equal(b.Amount) || a.Type != b.Type ||
			a.Category != b.Category || a.Date != b.Date || a.PaymentMethod != b.PaymentMethod {
			t.Errorf("transaction %d changed: %+v -> %+v", i, a, b)
		}
	}
}

func TestEncodeWritesNumericAmounts(t *testing.T) {
	raw, err := Encode(sampleTransactions())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var generic []map[string]any
	if err := json.Unmarshal([]byte(raw), &generic); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := generic[0]["amount"].(float64); !ok {
		t.Fatalf("amount should be a JSON number, got %T", generic[0]["amount"])
	}
	if generic[0]["date"] != "2024-01-10" || generic[0]["paymentMethod"] != "Tarjeta Débito" {
		t.Fatalf("unexpected stored fields: %v", generic[0])
	}
}

func TestDecodeLegacyTimestamps(t *testing.T) {
	raw := `[{"id":"x","name":"n","amount":5.5,"type":"expense","category":"Comida","date":"2024-03-01T00:00:00.000Z","paymentMethod":"Efectivo"}]`
	out, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out[0].Date != (civil.Date{Year: 2024, Month: time.March, Day: 1}) {
		t.Fatalf("unexpected date: %v", out[0].Date)
	}
	if !out[0].Amount.Equal(decimal.RequireFromString("5.5")) {
		t.Fatalf("unexpected amount: %s", out[0].Amount)
	}
}

func TestDecodeRejectsCorruptContent(t *testing.T) {
	cases := map[string]string{
		"not json":      `{{{`,
		"object":        `{"id":"x"}`,
		"bad amount":    `[{"id":"x","amount":"lots","date":"2024-01-01"}]`,
		"no amount":     `[{"id":"x","date":"2024-01-01"}]`,
		"bad date":      `[{"id":"x","amount":1,"date":"yesterday"}]`,
		"partial date":  `[{"id":"x","amount":1,"date":"2024-02"}]`,
		"trailing data": `[]{"garbage"`,
		"second array":  `[][]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(raw); err == nil {
				t.Errorf("expected error for %s", raw)
			}
		})
	}
}

func TestEncodeEmptyAndZeroDate(t *testing.T) {
	raw, err := Encode(nil)
	if err != nil || raw != "[]" {
		t.Fatalf("expected empty array, got %q (err=%v)", raw, err)
	}

	raw, err = Encode([]core.Transaction{{ID: "z", Amount: decimal.NewFromInt(-3), Type: core.Expense}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(raw, `"date":""`) || !strings.Contains(raw, `"amount":-3`) {
		t.Fatalf("unexpected encoding: %s", raw)
	}
	out, err := Decode(raw)
	if err != nil || len(out) != 1 || !out[0].Amount.Equal(decimal.NewFromInt(-3)) {
		t.Fatalf("unexpected decode: %+v (err=%v)", out, err)
	}
}

func TestOutOfRangeDatesSurviveRoundTrip(t *testing.T) {
	dates := []civil.Date{
		{Year: 2024, Month: time.February, Day: 30},
		{Year: 10000, Month: time.January, Day: 1},
		{Year: 2024, Month: 13, Day: 1},
		{Year: 2024, Month: time.January, Day: 0},
	}
	for _, d := range dates {
		t.Run(d.String(), func(t *testing.T) {
			in := []core.Transaction{{ID: "x", Amount: decimal.NewFromInt(1), Type: core.Expense, Date: d}}
			raw, err := Encode(in)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			out, err := Decode(raw)
			if err != nil {
				t.Fatalf("decode %s: %v", raw, err)
			}
			if len(out) != 1 || out[0].Date != d {
				t.Fatalf("got %+v, want date %+v", out, d)
			}
		})
	}
}
