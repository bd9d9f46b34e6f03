package datemath

import "time"

// DefaultTimezone is the civil zone every day-key is anchored to.
const DefaultTimezone = "Asia/Jakarta"

// DayKeyLayout is the canonical day-key format.
const DayKeyLayout = "2006-01-02"

// MonthKeyLayout identifies a calendar month, e.g. "2024-01".
const MonthKeyLayout = "2006-01"

// Range is a named dashboard period.
type Range string

const (
	RangeYesterday Range = "yesterday"
	RangeToday     Range = "today"
	RangeLast7Days Range = "last-7-days"
	RangeThisMonth Range = "this-month"
)

// Span is an inclusive pair of UTC-midnight instants.
type Span struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day (a UTC-midnight instant) lies within the span.
func (s Span) Contains(day time.Time) bool {
	return !day.Before(s.Start) && !day.After(s.End)
}
