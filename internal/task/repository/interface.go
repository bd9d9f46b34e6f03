package repository

import (
	"context"

	"my-daily-planner/internal/model"
)

// SlotKey is the name of the slot holding the serialized task map.
const SlotKey = "tasks"

// Repository persists the whole task map as a single slot.
// Load returns an empty map when the slot does not exist yet.
type Repository interface {
	Load(ctx context.Context) (model.TaskMap, error)
	Save(ctx context.Context, tasks model.TaskMap) error
	// Ping reports whether the backend can currently serve the slot.
	Ping(ctx context.Context) error
}
