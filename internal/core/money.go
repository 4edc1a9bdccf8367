// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing user-entered amounts and
// formatting them the way the dashboard displays soles.
package core

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol prefixes every displayed amount.
const CurrencySymbol = "S/"

var displayLocale = language.MustParse("es-PE")

// ParseAmount converts a decimal string to an exact amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Signs,
// exponents and zero are rejected: amounts are positive magnitudes whose
// direction is carried by the transaction type.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("0")     -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.Count(s, ".") > 1 {
		return decimal.Zero, ErrInvalidAmount
	}
	for _, r := range s {
		if r != '.' && !unicode.IsDigit(r) {
			return decimal.Zero, ErrInvalidAmount
		}
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatAmount renders an amount with two decimals using es-PE grouping,
// e.g. "S/ 1,234.50". Rounding happens here only; stored values stay exact.
func FormatAmount(d decimal.Decimal) string {
	p := message.NewPrinter(displayLocale)
	f, _ := d.Round(2).Float64()
	return CurrencySymbol + " " + p.Sprint(number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatSigned renders an amount as "+ S/ 10.00" or "- S/ 10.00" by type.
func FormatSigned(t Transaction) string {
	sign := "-"
	if t.IsIncome() {
		sign = "+"
	}
	return sign + " " + CurrencySymbol + " " + t.Amount.StringFixed(2)
}
