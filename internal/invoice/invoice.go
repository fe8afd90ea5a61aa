// Package invoice implements the credit card billing cycle calculation.
//
// A card closes its cycle on a fixed day of the month. Purchases made on or
// before the closing day belong to that month's invoice; purchases made
// after it roll over to the next month. With a closing day of 10, a purchase
// on June 9th lands on the June invoice and a purchase on June 11th lands on
// the July invoice.
package invoice

import (
	"fmt"
	"regexp"
	"time"
)

// monthRegex matches the YYYY-MM label persisted on transactions and cards.
var monthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// MonthOf returns the invoice month label (YYYY-MM) for a transaction dated
// date on a card whose cycle closes on closingDay.
//
// The closing day is clamped to the last day of the transaction's month, so
// a card closing on the 31st closes on Feb 28th (or 29th) in February rather
// than rolling over into March. Only the calendar date matters; time of day
// never affects the result.
func MonthOf(date time.Time, closingDay int) string {
	year, month, day := date.Date()

	boundary := closingDay
	if last := lastDay(year, month); boundary > last {
		boundary = last
	}

	if day <= boundary {
		return Label(year, month)
	}

	// time.Date normalizes month 13 to January of the next year.
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return Label(next.Year(), next.Month())
}

// CurrentMonth returns the invoice month label for the given instant,
// used to default a card's current invoice month at creation.
func CurrentMonth(now time.Time) string {
	return Label(now.Year(), now.Month())
}

// Label formats a year and month as a YYYY-MM invoice month label.
func Label(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ValidMonth reports whether s is a well-formed YYYY-MM invoice month label.
func ValidMonth(s string) bool {
	return monthRegex.MatchString(s)
}

// lastDay returns the number of days in the given month.
func lastDay(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
