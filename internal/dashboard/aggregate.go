package dashboard

import (
	"my-daily-planner/internal/model"
	"my-daily-planner/pkg/datemath"
)

// TasksInRange collects the tasks whose day-key lies in span, walking days in
// ascending order. Keys that are not valid day-keys are ignored.
func TasksInRange(tm model.TaskMap, span datemath.Span) []model.Task {
	var out []model.Task
	for _, key := range tm.SortedKeys() {
		day, err := datemath.ParseDayKey(key)
		if err != nil || !span.Contains(day) {
			continue
		}
		out = append(out, tm[key]...)
	}
	return out
}

// Aggregate computes the Summary of tasks.
func Aggregate(tasks []model.Task) model.Summary {
	s := model.Summary{Tasks: tasks, Total: len(tasks)}
	for _, t := range tasks {
		s.TotalPlanning += t.PlanningTime
		s.TotalActual += t.ActualTime
		if t.Completed {
			s.Done++
			s.TotalActualDone += t.ActualTime
		}
	}
	s.Pending = s.Total - s.Done
	return s
}

// PendingTasks returns the tasks of s that are not completed.
func PendingTasks(s model.Summary) []model.Task {
	out := make([]model.Task, 0, s.Pending)
	for _, t := range s.Tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

var pieColors = []string{"#eab308", "#22c55e", "#ef4444", "#3b82f6", "#a855f7", "#ec4899", "#f97316", "#6b7280"}

// PieData is the time distribution of completed tasks that logged hours.
func PieData(s model.Summary) []PieSlice {
	var out []PieSlice
	for _, t := range s.Tasks {
		if !t.Completed || t.ActualTime <= 0 {
			continue
		}
		out = append(out, PieSlice{
			Label: t.Text,
			Value: t.ActualTime,
			Color: pieColors[len(out)%len(pieColors)],
		})
	}
	return out
}

// BarData compares planned and actual hours per task.
func BarData(s model.Summary) []BarItem {
	out := make([]BarItem, len(s.Tasks))
	for i, t := range s.Tasks {
		out[i] = BarItem{Label: t.Text, Plan: t.PlanningTime, Actual: t.ActualTime}
	}
	return out
}
