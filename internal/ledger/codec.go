package ledger

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"finanzas/internal/core"
)

// record is the stored shape of a transaction. Amount is a JSON number so
// the slot stays readable by tools that expect numeric amounts.
type record struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Amount        json.Number `json:"amount"`
	Type          string      `json:"type"`
	Category      string      `json:"category"`
	Date          string      `json:"date"`
	PaymentMethod string      `json:"paymentMethod"`
}

// Encode serializes the collection, keeping its order.
func Encode(txs []core.Transaction) (string, error) {
	records := make([]record, len(txs))
	for i, t := range txs {
		records[i] = record{
			ID:            t.ID,
			Name:          t.Name,
			Amount:        json.Number(t.Amount.String()),
			Type:          string(t.Type),
			Category:      t.Category,
			Date:          storedDate(t.Date),
			PaymentMethod: t.PaymentMethod,
		}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode transactions: %w", err)
	}
	return string(b), nil
}

// Decode parses a stored collection. Any malformed entry fails the whole
// document; callers treat that as having no stored data.
func Decode(s string) ([]core.Transaction, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode transactions: unexpected content after collection")
	}

	txs := make([]core.Transaction, 0, len(records))
	for i, r := range records {
		amount, err := decimal.NewFromString(r.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("decode transaction %d amount %q: %w", i, r.Amount, err)
		}
		date, err := parseStoredDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("decode transaction %d: %w", i, err)
		}
		txs = append(txs, core.Transaction{
			ID:            r.ID,
			Name:          r.Name,
			Amount:        amount,
			Type:          core.TransactionType(r.Type),
			Category:      r.Category,
			Date:          date,
			PaymentMethod: r.PaymentMethod,
		})
	}
	return txs, nil
}

// storedDate writes YYYY-MM-DD; a missing date is stored as "".
func storedDate(d civil.Date) string {
	if d == (civil.Date{}) {
		return ""
	}
	return d.String()
}

// parseStoredDate accepts plain dates and full timestamps, which older
// clients wrote. Timestamps keep the calendar date they were written with.
// Out-of-range dates such as 2024-02-30 come back field for field, as
// storedDate wrote them.
func parseStoredDate(s string) (civil.Date, error) {
	if s == "" {
		return civil.Date{}, nil
	}
	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return civil.DateOf(t), nil
	}
	var (
		d     civil.Date
		month int
	)
	if n, err := fmt.Sscanf(s, "%d-%d-%d", &d.Year, &month, &d.Day); err == nil && n == 3 {
		d.Month = time.Month(month)
		if d.String() == s {
			return d, nil
		}
	}
	return civil.Date{}, fmt.Errorf("invalid date %q", s)
}
