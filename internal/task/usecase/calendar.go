package usecase

import (
	"context"

	"my-daily-planner/internal/task"
	"my-daily-planner/pkg/datemath"
)

// Calendar renders a Sunday-first month grid with task markers.
func (uc *implUseCase) Calendar(ctx context.Context, input task.CalendarInput) (task.CalendarOutput, error) {
	today := uc.clock.Today()
	todayKey := datemath.DayKey(today)

	month := datemath.MonthStart(today)
	if input.Month != "" {
		m, err := datemath.ParseMonthKey(input.Month)
		if err != nil {
			return task.CalendarOutput{}, task.ErrInvalidMonth
		}
		month = m
	}

	selected := todayKey
	if input.Selected != "" {
		if err := validDayKey(input.Selected); err != nil {
			return task.CalendarOutput{}, err
		}
		selected = input.Selected
	}

	snapshot := uc.store.Snapshot()
	days := datemath.MonthDays(month)
	out := task.CalendarOutput{
		Month:         datemath.MonthKey(month),
		Label:         datemath.MonthLabelID(month),
		Weekdays:      datemath.WeekdayHeadersID(),
		LeadingBlanks: datemath.LeadingBlanks(month),
		Days:          make([]task.CalendarDay, len(days)),
		PrevMonth:     datemath.MonthKey(datemath.AddMonths(month, -1)),
		NextMonth:     datemath.MonthKey(datemath.AddMonths(month, 1)),
		Today:         todayKey,
	}
	for i, d := range days {
		key := datemath.DayKey(d)
		out.Days[i] = task.CalendarDay{
			Key:        key,
			Day:        d.Day(),
			IsToday:    key == todayKey,
			IsSelected: key == selected,
			HasTasks:   len(snapshot[key]) > 0,
		}
	}
	return out, nil
}
