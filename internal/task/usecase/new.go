package usecase

import (
	"github.com/google/uuid"

	"my-daily-planner/internal/store"
	"my-daily-planner/internal/task"
	"my-daily-planner/pkg/datemath"
	pkgLog "my-daily-planner/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	store *store.Store
	clock *datemath.Clock
	newID func() string
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, st *store.Store, clock *datemath.Clock) task.UseCase {
	return &implUseCase{
		l:     l,
		store: st,
		clock: clock,
		newID: uuid.NewString,
	}
}
