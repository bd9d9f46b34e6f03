package dashboard

import (
	"my-daily-planner/internal/model"
	"my-daily-planner/pkg/datemath"
)

// PieSlice is one segment of the completed-time chart.
type PieSlice struct {
	Label string
	Value float64
	Color string
}

// BarItem is one plan-vs-actual bar pair.
type BarItem struct {
	Label  string
	Plan   float64
	Actual float64
}

// SummaryOutput is the dashboard view for one range.
type SummaryOutput struct {
	Range    datemath.Range
	Start    string
	End      string
	Summary  model.Summary
	Pending  []model.Task
	Pie      []PieSlice
	Bar      []BarItem
	Analysis string
}

// AnalyzeOutput carries the narrative produced for a range.
type AnalyzeOutput struct {
	Range    datemath.Range
	Analysis string
}

// ReportOutput is a downloadable plain-text report.
type ReportOutput struct {
	FileName string
	Content  string
}
