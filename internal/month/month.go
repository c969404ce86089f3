// Package month provides the calendar-month key used to scope budgets and expenses.
package month

import (
	"fmt"
	"time"
)

// Layout is the wire and storage format of a month key.
const Layout = "2006-01"

// Month identifies a calendar month. The zero value is not a valid month.
type Month struct {
	Year  int
	Month time.Month
}

// Parse parses a YYYY-MM month key.
func Parse(s string) (Month, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// Of returns the month containing t as observed in loc.
// A nil loc means UTC.
func Of(t time.Time, loc *time.Location) Month {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Current returns the month of the current instant in loc.
func Current(loc *time.Location) Month {
	return Of(time.Now(), loc)
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Start returns midnight UTC of the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the exclusive upper bound of the month: the start of the next month.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Next returns the following month.
func (m Month) Next() Month {
	return Of(m.End(), time.UTC)
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	return Of(m.Start().AddDate(0, -1, 0), time.UTC)
}

// Contains reports whether the calendar date of t (read in UTC) falls in m.
func (m Month) Contains(t time.Time) bool {
	return Of(t, time.UTC) == m
}
