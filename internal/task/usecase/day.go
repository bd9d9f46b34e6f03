package usecase

import (
	"context"
	"errors"

	"my-daily-planner/internal/model"
	"my-daily-planner/internal/task"
)

// Today returns the checklist of the current civil day.
func (uc *implUseCase) Today(ctx context.Context) (task.DayOutput, error) {
	return uc.ListDay(ctx, uc.clock.TodayKey())
}

// ListDay returns the checklist of dayKey.
func (uc *implUseCase) ListDay(ctx context.Context, dayKey string) (task.DayOutput, error) {
	if err := validDayKey(dayKey); err != nil {
		return task.DayOutput{}, err
	}
	return uc.buildDay(dayKey, uc.store.Day(dayKey)), nil
}

// Add appends a new pending task to a day.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (task.TaskOutput, error) {
	if err := validDayKey(input.DayKey); err != nil {
		return task.TaskOutput{}, err
	}
	text := trimmed(input.Text)
	if text == "" {
		return task.TaskOutput{}, task.ErrEmptyText
	}
	if err := validDuration(input.PlanningTime); err != nil {
		return task.TaskOutput{}, err
	}

	t := model.Task{
		ID:           uc.newID(),
		Text:         text,
		PlanningTime: input.PlanningTime,
	}
	err := uc.store.Update(ctx, func(tm model.TaskMap) error {
		tm[input.DayKey] = append(tm[input.DayKey], t)
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add: %v", err)
		return task.TaskOutput{}, err
	}

	return task.TaskOutput{Task: t, Day: uc.buildDay(input.DayKey, uc.store.Day(input.DayKey))}, nil
}

// Update edits text, durations and result link of a task.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.TaskOutput, error) {
	if err := validDayKey(input.DayKey); err != nil {
		return task.TaskOutput{}, err
	}
	text := trimmed(input.Text)
	if text == "" {
		return task.TaskOutput{}, task.ErrEmptyText
	}
	if err := validDuration(input.PlanningTime); err != nil {
		return task.TaskOutput{}, err
	}
	if err := validDuration(input.ActualTime); err != nil {
		return task.TaskOutput{}, err
	}

	return uc.apply(ctx, "uc.Update", input.DayKey, input.ID, func(t *model.Task) error {
		t.Text = text
		t.PlanningTime = input.PlanningTime
		t.ActualTime = input.ActualTime
		t.ResultLink = trimmed(input.ResultLink)
		return nil
	})
}

// Toggle completes or un-completes a task.
func (uc *implUseCase) Toggle(ctx context.Context, input task.ToggleInput) (task.TaskOutput, error) {
	if err := validDayKey(input.DayKey); err != nil {
		return task.TaskOutput{}, err
	}
	if input.ActualTime != nil {
		if err := validDuration(*input.ActualTime); err != nil {
			return task.TaskOutput{}, err
		}
	}

	return uc.apply(ctx, "uc.Toggle", input.DayKey, input.ID, func(t *model.Task) error {
		if t.Completed {
			t.Completed = false
			return nil
		}

		if input.ActualTime != nil {
			t.ActualTime = *input.ActualTime
		}
		if t.ActualTime == 0 && input.ActualTime == nil {
			return task.ErrActualTimeRequired
		}
		if input.ResultLink != nil {
			t.ResultLink = trimmed(*input.ResultLink)
		}
		t.Completed = true
		return nil
	})
}

// Delete removes a task.
func (uc *implUseCase) Delete(ctx context.Context, dayKey, id string) (task.DayOutput, error) {
	if err := validDayKey(dayKey); err != nil {
		return task.DayOutput{}, err
	}

	err := uc.store.Update(ctx, func(tm model.TaskMap) error {
		tasks := tm[dayKey]
		i := indexOf(tasks, id)
		if i < 0 {
			return task.ErrTaskNotFound
		}
		tm[dayKey] = append(tasks[:i], tasks[i+1:]...)
		return nil
	})
	if err != nil {
		if !errors.Is(err, task.ErrTaskNotFound) {
			uc.l.Errorf(ctx, "uc.Delete: %v", err)
		}
		return task.DayOutput{}, err
	}

	return uc.buildDay(dayKey, uc.store.Day(dayKey)), nil
}

// apply runs fn on one task under a single store update.
func (uc *implUseCase) apply(ctx context.Context, op, dayKey, id string, fn func(t *model.Task) error) (task.TaskOutput, error) {
	var updated model.Task
	err := uc.store.Update(ctx, func(tm model.TaskMap) error {
		tasks := tm[dayKey]
		i := indexOf(tasks, id)
		if i < 0 {
			return task.ErrTaskNotFound
		}
		if err := fn(&tasks[i]); err != nil {
			return err
		}
		updated = tasks[i]
		return nil
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v", op, err)
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: updated, Day: uc.buildDay(dayKey, uc.store.Day(dayKey))}, nil
}
