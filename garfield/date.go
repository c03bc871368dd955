package garfield

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the textual form accepted by ParseDate.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the calendar day of t in t's location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local calendar day.
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate parses a date in YYYY-MM-DD form. Impossible days such as
// 2023-02-30 are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Format formats the day using a time package layout.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// AddDays returns the day n days after d (before d if n is negative).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time().AddDate(0, 0, n))
}

func (d Date) String() string {
	return d.Format(DateLayout)
}
