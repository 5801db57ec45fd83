// Package monthkey provides the calendar month identifier used throughout the
// monthly expense engine. Keys render as zero-padded "YYYY-MM" and compare
// chronologically by (year, month) tuple, never by raw string.
package monthkey

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"budget-api/internal/pkg/errs"
)

var ErrInvalidMonthKey = errs.New("invalid month key, expected YYYY-MM")

var strictPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

type Month struct {
	year  int
	month time.Month
}

// Parse accepts only the strict boundary format: four-digit year, two-digit
// zero-padded month.
func Parse(s string) (Month, error) {
	if !strictPattern.MatchString(s) {
		return Month{}, ErrInvalidMonthKey
	}
	year, _ := strconv.Atoi(s[:4])
	mon, _ := strconv.Atoi(s[5:])
	if mon < 1 || mon > 12 {
		return Month{}, ErrInvalidMonthKey
	}
	return Month{year: year, month: time.Month(mon)}, nil
}

// FromDateString extracts the month from a stored calendar date. Template dates
// come from user input and are not trusted: "YYYY-MM", "YYYY-MM-DD" and RFC3339
// timestamps are accepted, anything else reports ok=false instead of failing the
// surrounding operation.
func FromDateString(s string) (Month, bool) {
	if s == "" {
		return Month{}, false
	}
	if len(s) >= 7 {
		if m, err := Parse(s[:7]); err == nil {
			if len(s) == 7 || s[7] == '-' || s[7] == 'T' {
				return m, true
			}
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FromTime(t), true
	}
	return Month{}, false
}

func FromTime(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month()}
}

func New(year int, month time.Month) Month {
	return Month{year: year, month: month}
}

func (m Month) Year() int         { return m.year }
func (m Month) Month() time.Month { return m.month }

func (m Month) IsZero() bool {
	return m.year == 0 && m.month == 0
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.year, int(m.month))
}

// Compare returns -1, 0 or +1 comparing m against other chronologically.
func (m Month) Compare(other Month) int {
	switch {
	case m.year != other.year:
		if m.year < other.year {
			return -1
		}
		return 1
	case m.month != other.month:
		if m.month < other.month {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (m Month) Before(other Month) bool {
	return m.Compare(other) < 0
}

func (m Month) After(other Month) bool {
	return m.Compare(other) > 0
}

func (m Month) Equal(other Month) bool {
	return m.Compare(other) == 0
}
