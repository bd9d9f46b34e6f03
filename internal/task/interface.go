package task

import (
	"context"
)

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// Today returns the checklist of the current civil day.
	Today(ctx context.Context) (DayOutput, error)

	// ListDay returns the checklist of dayKey.
	ListDay(ctx context.Context, dayKey string) (DayOutput, error)

	// Add appends a new pending task to a day.
	Add(ctx context.Context, input AddInput) (TaskOutput, error)

	// Update edits text, durations and result link of a task.
	Update(ctx context.Context, input UpdateInput) (TaskOutput, error)

	// Toggle completes or un-completes a task.
	Toggle(ctx context.Context, input ToggleInput) (TaskOutput, error)

	// Delete removes a task.
	Delete(ctx context.Context, dayKey, id string) (DayOutput, error)

	// Calendar renders a month grid.
	Calendar(ctx context.Context, input CalendarInput) (CalendarOutput, error)

	// Export writes a month's tasks as an .xlsx workbook.
	Export(ctx context.Context, month string) (ExportOutput, error)

	// Import appends the tasks of an uploaded workbook.
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
}
