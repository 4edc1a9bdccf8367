// Package stats derives the dashboard views from the raw transaction list.
//
// Every function here is pure: inputs are never mutated and the reference
// instant is always passed in, so the same inputs give the same output.
//
// This file implements the period matchers. Each period has its own
// matcher that decides whether a transaction date belongs to the window
// ending today.
package stats

import (
	"cloud.google.com/go/civil"

	"finanzas/internal/core"
)

// weekSpan is how many days back the week view reaches, inclusive.
const weekSpan = 7

// PeriodMatcher decides whether a date falls inside a period window.
type PeriodMatcher interface {
	// Matches reports whether date belongs to the window that contains today.
	Matches(date, today civil.Date) bool
}

// AllMatcher keeps every date.
type AllMatcher struct{}

func (AllMatcher) Matches(_, _ civil.Date) bool { return true }

// YearMatcher keeps dates in the calendar year of today.
type YearMatcher struct{}

func (YearMatcher) Matches(date, today civil.Date) bool {
	return date.Year == today.Year
}

// MonthMatcher keeps dates in the calendar month and year of today. The
// window is calendar aligned, not a rolling number of days.
type MonthMatcher struct{}

func (MonthMatcher) Matches(date, today civil.Date) bool {
	return date.Year == today.Year && date.Month == today.Month
}

// WeekMatcher keeps dates on or after today minus seven days. Future dates
// are kept.
type WeekMatcher struct{}

func (WeekMatcher) Matches(date, today civil.Date) bool {
	return !date.Before(today.AddDays(-weekSpan))
}

var periodMatchers = map[core.Period]PeriodMatcher{
	core.Week:  WeekMatcher{},
	core.Month: MonthMatcher{},
	core.Year:  YearMatcher{},
	core.All:   AllMatcher{},
}

// MatcherFor returns the matcher for p. Unknown periods fall back to
// AllMatcher so that every selector value yields a view.
func MatcherFor(p core.Period) PeriodMatcher {
	if m, ok := periodMatchers[p]; ok {
		return m
	}
	return AllMatcher{}
}
