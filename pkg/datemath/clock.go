package datemath

import (
	"fmt"
	"time"
)

// Clock maps instants onto civil dates of a fixed timezone.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a Clock for the given IANA timezone string.
// e.g. "Asia/Jakarta"
func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{location: loc, now: time.Now}, nil
}

// NewFixedClock creates a Clock for a zone with a constant UTC offset.
// Used when the tz database is unavailable.
func NewFixedClock(name string, offset time.Duration) *Clock {
	return &Clock{location: time.FixedZone(name, int(offset.Seconds())), now: time.Now}
}

// WithNow returns a copy of the clock reading time from fn.
func (c *Clock) WithNow(fn func() time.Time) *Clock {
	return &Clock{location: c.location, now: fn}
}

// Location returns the clock's civil timezone.
func (c *Clock) Location() *time.Location {
	return c.location
}

// Today returns the current civil date as a UTC-midnight instant.
func (c *Clock) Today() time.Time {
	return c.CurrentDate(c.now())
}

// CurrentDate returns the civil date of now in the clock's timezone,
// represented as midnight UTC of that date.
func (c *Clock) CurrentDate(now time.Time) time.Time {
	t := now.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TodayKey returns the day-key of the current civil date.
func (c *Clock) TodayKey() string {
	return DayKey(c.Today())
}

// CivilDayKey returns the YYYY-MM-DD civil day of instant in loc.
func CivilDayKey(instant time.Time, loc *time.Location) string {
	return instant.In(loc).Format(DayKeyLayout)
}

// DayKey formats a UTC-midnight instant as YYYY-MM-DD using UTC fields only.
func DayKey(date time.Time) string {
	return date.UTC().Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key into its UTC-midnight instant.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// ParseMonthKey parses a YYYY-MM key into the UTC-midnight first day of that month.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// MonthKey formats the month of date as YYYY-MM.
func MonthKey(date time.Time) string {
	return date.UTC().Format(MonthKeyLayout)
}
