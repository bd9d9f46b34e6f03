package repository

import "errors"

var (
	ErrFailedToLoad  = errors.New("failed to load task slot")
	ErrFailedToSave  = errors.New("failed to save task slot")
	ErrCorruptedSlot = errors.New("task slot is not valid JSON")
	ErrUnavailable   = errors.New("task slot backend unavailable")
)
