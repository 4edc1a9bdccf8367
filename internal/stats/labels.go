package stats

import "time"

// MonthLabeler names a calendar month for chart axes.
type MonthLabeler func(year int, month time.Month) string

var spanishShortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "set", "oct", "nov", "dic",
}

// SpanishShortMonth labels months the way es-PE abbreviates them.
func SpanishShortMonth(_ int, month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return spanishShortMonths[month-1]
}
