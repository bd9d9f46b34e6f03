package datemath

import (
	"fmt"
	"time"
)

var monthNamesID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var weekdayNamesID = [...]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

// MonthNameID returns the Indonesian name of m.
func MonthNameID(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNamesID[m-1]
}

// MonthLabelID renders e.g. "Januari 2024".
func MonthLabelID(date time.Time) string {
	return fmt.Sprintf("%s %d", MonthNameID(date.Month()), date.Year())
}

// WeekdayHeadersID returns Sunday-first short weekday names.
func WeekdayHeadersID() []string {
	out := make([]string, len(weekdayNamesID))
	copy(out, weekdayNamesID[:])
	return out
}

// DisplayDateID renders a day-key the way spreadsheets expect it: DD/MM/YYYY.
func DisplayDateID(date time.Time) string {
	return date.UTC().Format("02/01/2006")
}

var rangeLabelsID = map[Range]string{
	RangeYesterday: "Kemarin",
	RangeToday:     "Hari ini",
	RangeLast7Days: "7 Hari Terakhir",
	RangeThisMonth: "Bulan ini",
}

// RangeLabelID returns the Indonesian display label of r, or r itself.
func RangeLabelID(r Range) string {
	if label, ok := rangeLabelsID[r]; ok {
		return label
	}
	return string(r)
}

var weekdayLongID = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// WeekdayNameID returns the full Indonesian weekday name of date.
func WeekdayNameID(date time.Time) string {
	return weekdayLongID[date.Weekday()]
}

// LongDateID renders e.g. "10 Januari 2024".
func LongDateID(date time.Time) string {
	return fmt.Sprintf("%d %s %d", date.Day(), MonthNameID(date.Month()), date.Year())
}
