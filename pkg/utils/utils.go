package utils

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AddMonth advances a date by exactly one calendar month. When the
// day-of-month does not exist in the target month (Jan 31 -> Feb), the day
// is clamped to the last valid day instead of rolling into the next month,
// which is what time.AddDate would do.
func AddMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	last := DaysInMonth(year, month+1)
	if day > last {
		day = last
	}
	h, m, s := t.Clock()
	return time.Date(year, month+1, day, h, m, s, t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days in the given month. The month may
// be outside 1..12; time.Date normalizes it.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Accepted calendar-date layouts for loan start dates, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// ParseDate normalizes a calendar-date string into a time.Time.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// DecimalFromFloat converts float64 to decimal.Decimal
func DecimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
