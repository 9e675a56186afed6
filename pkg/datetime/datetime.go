// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"github.com/JYeeRen/early-payment/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the
	// output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on
// error. This is intended for use in tests where the date string is known to
// be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// AdvanceMonth returns the date one calendar month after the given date,
// keeping the day of month and rolling the year over at December. Unlike
// time.AddDate it never normalizes: a day that does not exist in the target
// month is reported as an error instead of silently shifting into the
// following month.
func AdvanceMonth(date time.Time) (time.Time, error) {
	year, month, day := date.Date()
	month++
	if month > time.December {
		month = time.January
		year++
	}
	next := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	if next.Day() != day || next.Month() != month {
		return time.Time{}, fmt.Errorf("no day %d in month %d-%02d", day, year, int(month))
	}
	return next, nil
}
