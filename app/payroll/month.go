package payroll

import (
	"fmt"
	"time"
)

// Month identifies a calendar pay month as "YYYY-MM". All month comparisons
// in payroll code compare these identifiers, never full dates, so the day of
// month can never skew them. Lexicographic order on valid values equals
// chronological order.
type Month string

const monthLayout = "2006-01"

// ParseMonth validates and returns a Month from its "YYYY-MM" form.
func ParseMonth(s string) (Month, error) {
	if _, err := time.Parse(monthLayout, s); err != nil {
		return "", fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return Month(s), nil
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month(t.Format(monthLayout))
}

// Valid reports whether m is a well-formed "YYYY-MM" identifier.
func (m Month) Valid() bool {
	_, err := time.Parse(monthLayout, string(m))
	return err == nil
}

// AddMonths returns the month n calendar months after m.
func (m Month) AddMonths(n int) Month {
	t, err := time.Parse(monthLayout, string(m))
	if err != nil {
		return m
	}
	return MonthOf(t.AddDate(0, n, 0))
}

// Before reports whether m is chronologically before other.
func (m Month) Before(other Month) bool {
	return string(m) < string(other)
}

func (m Month) String() string {
	return string(m)
}
