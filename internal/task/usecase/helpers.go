package usecase

import (
	"math"
	"strings"

	"my-daily-planner/internal/model"
	"my-daily-planner/internal/task"
	"my-daily-planner/pkg/datemath"
)

// validDayKey rejects anything that is not a real YYYY-MM-DD date.
func validDayKey(key string) error {
	if _, err := datemath.ParseDayKey(key); err != nil {
		return task.ErrInvalidDayKey
	}
	return nil
}

func validDuration(hours float64) error {
	if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return task.ErrInvalidDuration
	}
	return nil
}

func indexOf(tasks []model.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// buildDay renders the checklist view of dayKey.
func (uc *implUseCase) buildDay(dayKey string, tasks []model.Task) task.DayOutput {
	date, _ := datemath.ParseDayKey(dayKey)
	out := task.DayOutput{
		DayKey:    dayKey,
		Weekday:   datemath.WeekdayNameID(date),
		DateLabel: datemath.LongDateID(date),
		IsToday:   dayKey == uc.clock.TodayKey(),
		Tasks:     tasks,
	}
	if out.Tasks == nil {
		out.Tasks = []model.Task{}
	}
	for _, t := range tasks {
		out.TotalPlanning += t.PlanningTime
		out.TotalActual += t.ActualTime
	}
	if out.TotalPlanning > 0 {
		out.Progress = math.Min(100, out.TotalActual/out.TotalPlanning*100)
	}
	return out
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
