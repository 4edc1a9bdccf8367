package core

import (
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
	All   Period = "all"
)

type (
	TransactionType string

	// Period selects the time window of the transaction view.
	Period string

	// Draft is a transaction payload before an identifier is assigned.
	Draft struct {
		Name          string
		Amount        decimal.Decimal
		Type          TransactionType
		Category      string
		Date          civil.Date
		PaymentMethod string
	}

	Transaction struct {
		ID            string
		Name          string
		Amount        decimal.Decimal
		Type          TransactionType
		Category      string // opaque label, not a catalog reference
		Date          civil.Date
		PaymentMethod string
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyName     = errors.New("empty name")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidDate   = errors.New("invalid date")
	ErrUnknownPeriod = errors.New("unknown period")
)

// Periods lists the selectable periods in display order.
var Periods = []Period{Week, Month, Year, All}

// IsValid reports whether t is one of the two known directions.
func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense:
		return true
	default:
		return false
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// ParseTransactionType accepts "income"/"expense" in any case.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// IsValid reports whether p is a known period.
func (p Period) IsValid() bool {
	switch p {
	case Week, Month, Year, All:
		return true
	default:
		return false
	}
}

func (p Period) String() string {
	return string(p)
}

// Label returns the selector caption shown by the dashboard.
func (p Period) Label() string {
	switch p {
	case Week:
		return "Semana"
	case Month:
		return "Mes"
	case Year:
		return "Año"
	default:
		return "Todo"
	}
}

// ParsePeriod parses a period name. The second result is false for unknown names.
func ParsePeriod(s string) (Period, bool) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil || !d.IsValid() {
		return civil.Date{}, ErrInvalidDate
	}
	return d, nil
}

// Today returns the calendar date of now in now's location.
func Today(now time.Time) civil.Date {
	return civil.DateOf(now)
}

// Validate checks the producer-side rules for a new transaction. The ledger
// never calls it; callers that collect user input should.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if len(d.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if !d.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !d.Type.IsValid() {
		return ErrInvalidType
	}
	if !d.Date.IsValid() {
		return ErrInvalidDate
	}
	return nil
}

// WithID turns the draft into a stored transaction.
func (d Draft) WithID(id string) Transaction {
	return Transaction{
		ID:            id,
		Name:          d.Name,
		Amount:        d.Amount,
		Type:          d.Type,
		Category:      d.Category,
		Date:          d.Date,
		PaymentMethod: d.PaymentMethod,
	}
}

// IsIncome reports whether the transaction adds to the balance.
func (t Transaction) IsIncome() bool {
	return t.Type == Income
}

// SignedAmount returns the amount with its direction applied.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
