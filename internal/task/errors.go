package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyText          = errors.New("task text is empty")
	ErrInvalidDuration    = errors.New("duration must be a non-negative number of hours")
	ErrActualTimeRequired = errors.New("actual time is required to complete a task without one")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidDayKey      = errors.New("invalid day key")
	ErrInvalidMonth       = errors.New("invalid month")
)
