package task

import (
	"io"

	"my-daily-planner/internal/model"
)

// DayOutput is the checklist of one day with its time totals.
type DayOutput struct {
	DayKey        string
	Weekday       string
	DateLabel     string
	IsToday       bool
	Tasks         []model.Task
	TotalPlanning float64
	TotalActual   float64
	Progress      float64 // percent, capped at 100
}

// AddInput is the input for adding a task to a day.
type AddInput struct {
	DayKey       string
	Text         string
	PlanningTime float64
}

// UpdateInput replaces the editable fields of a task.
type UpdateInput struct {
	DayKey       string
	ID           string
	Text         string
	PlanningTime float64
	ActualTime   float64
	ResultLink   string
}

// ToggleInput flips the completion of a task. ActualTime is required when
// completing a task whose actual time is still 0. A nil ResultLink keeps the
// current link.
type ToggleInput struct {
	DayKey     string
	ID         string
	ActualTime *float64
	ResultLink *string
}

// TaskOutput is the task after a mutation, with the refreshed day view.
type TaskOutput struct {
	Task model.Task
	Day  DayOutput
}

// CalendarInput selects the month grid. Empty fields default to today.
type CalendarInput struct {
	Month    string // YYYY-MM
	Selected string // YYYY-MM-DD
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Key        string
	Day        int
	IsToday    bool
	IsSelected bool
	HasTasks   bool
}

// CalendarOutput is a Sunday-first month grid.
type CalendarOutput struct {
	Month         string
	Label         string
	Weekdays      []string
	LeadingBlanks int
	Days          []CalendarDay
	PrevMonth     string
	NextMonth     string
	Today         string
}

// ExportOutput is an .xlsx workbook ready for download.
type ExportOutput struct {
	FileName  string
	SheetName string
	Rows      int
	Content   []byte
}

// ImportInput carries an uploaded spreadsheet.
type ImportInput struct {
	FileName string
	File     io.Reader
}

// ImportOutput reports how many rows became tasks.
type ImportOutput struct {
	Accepted int
	Skipped  int
	Days     []string
}
