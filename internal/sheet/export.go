package sheet

import (
	"time"
	"unicode/utf8"

	"my-daily-planner/internal/model"
	"my-daily-planner/pkg/datemath"
)

// Row is one exported task in spreadsheet form.
type Row struct {
	Date         string
	Text         string
	PlanningTime float64
	ActualTime   float64
	Status       string
	ResultLink   string
}

func (r Row) values() []interface{} {
	return []interface{}{r.Date, r.Text, r.PlanningTime, r.ActualTime, r.Status, r.ResultLink}
}

// ExportRows lists the tasks of month's calendar month, ordered by day-key
// and then by position within the day.
func ExportRows(tm model.TaskMap, month time.Time) ([]Row, error) {
	var rows []Row
	for _, key := range tm.SortedKeys() {
		day, err := datemath.ParseDayKey(key)
		if err != nil || !datemath.SameMonth(day, month) {
			continue
		}
		for _, t := range tm[key] {
			rows = append(rows, Row{
				Date:         datemath.DisplayDateID(day),
				Text:         t.Text,
				PlanningTime: t.PlanningTime,
				ActualTime:   t.ActualTime,
				Status:       formatStatus(t.Completed),
				ResultLink:   t.ResultLink,
			})
		}
	}
	if len(rows) == 0 {
		return nil, ErrNothingToExport
	}
	return rows, nil
}

// SheetName is the worksheet title for month, e.g. "Tugas Januari".
func SheetName(month time.Time) string {
	return "Tugas " + datemath.MonthNameID(month.Month())
}

// textWidth sizes the task column to the longest text.
func textWidth(rows []Row) float64 {
	longest := 0
	for _, r := range rows {
		if n := utf8.RuneCountInString(r.Text); n > longest {
			longest = n
		}
	}
	if w := longest + textWidthPadding; w > minTextWidth {
		return float64(w)
	}
	return minTextWidth
}
