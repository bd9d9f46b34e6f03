package datemath

import (
	"fmt"
	"strings"
	"time"
)

// ParseRange converts a range tag to a Range.
// The Indonesian short tags used by older clients are accepted as aliases.
func ParseRange(tag string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "yesterday", "kemarin":
		return RangeYesterday, nil
	case "today", "hari-ini":
		return RangeToday, nil
	case "last-7-days", "week":
		return RangeLast7Days, nil
	case "this-month", "month":
		return RangeThisMonth, nil
	}
	return "", fmt.Errorf("unknown range %q", tag)
}

// ResolveRange returns the inclusive span for r relative to today,
// a UTC-midnight instant.
func ResolveRange(r Range, today time.Time) (Span, error) {
	switch r {
	case RangeYesterday:
		d := today.AddDate(0, 0, -1)
		return Span{Start: d, End: d}, nil
	case RangeToday:
		return Span{Start: today, End: today}, nil
	case RangeLast7Days:
		return Span{Start: today.AddDate(0, 0, -6), End: today}, nil
	case RangeThisMonth:
		return Span{Start: MonthStart(today), End: MonthEnd(today)}, nil
	}
	return Span{}, fmt.Errorf("unknown range %q", r)
}

// MonthStart returns the first day of date's month.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of date's month (day 0 of the next month).
func MonthEnd(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// AddMonths moves to the first day of the month offset months away.
func AddMonths(date time.Time, offset int) time.Time {
	return time.Date(date.Year(), date.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}

// MonthDays lists every day of date's month in order.
func MonthDays(date time.Time) []time.Time {
	start := MonthStart(date)
	days := make([]time.Time, 0, 31)
	for d := start; d.Month() == start.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// LeadingBlanks returns how many grid cells precede the 1st of date's month
// in a Sunday-first week layout.
func LeadingBlanks(date time.Time) int {
	return int(MonthStart(date).Weekday())
}

// SameMonth reports whether a and b fall in the same year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
