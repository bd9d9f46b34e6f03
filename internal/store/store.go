package store

import (
	"context"
	"sync"

	"my-daily-planner/internal/model"
	"my-daily-planner/internal/task/repository"
	"my-daily-planner/pkg/log"
)

// Store holds the task map in memory and writes it through to the
// persistence slot on every replacement.
type Store struct {
	mu    sync.RWMutex
	tasks model.TaskMap
	repo  repository.Repository
	l     log.Logger
}

// Open loads the slot once and returns a ready Store.
func Open(ctx context.Context, repo repository.Repository, l log.Logger) (*Store, error) {
	tasks, err := repo.Load(ctx)
	if err != nil {
		l.Errorf(ctx, "store.Open Load: %v", err)
		return nil, err
	}
	l.Infof(ctx, "store.Open: loaded %d tasks across %d days", tasks.Count(), len(tasks))
	return &Store{tasks: tasks, repo: repo, l: l}, nil
}

// Ping checks the persistence backend.
func (s *Store) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Snapshot returns a deep copy of the whole map.
func (s *Store) Snapshot() model.TaskMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.Clone()
}

// Day returns a copy of the tasks stored under dayKey.
func (s *Store) Day(dayKey string) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := s.tasks[dayKey]
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}

// HasTasks reports whether dayKey has at least one task.
func (s *Store) HasTasks(dayKey string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks[dayKey]) > 0
}

// Replace persists next and makes it the current value. On a persistence
// error the previous value stays in place.
func (s *Store) Replace(ctx context.Context, next model.TaskMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(ctx, next)
}

// Update runs fn on a copy of the current map and replaces the store with
// the result. fn returning an error aborts without touching the store.
func (s *Store) Update(ctx context.Context, fn func(tasks model.TaskMap) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.tasks.Clone()
	if err := fn(next); err != nil {
		return err
	}
	return s.replaceLocked(ctx, next)
}

func (s *Store) replaceLocked(ctx context.Context, next model.TaskMap) error {
	if next == nil {
		next = model.TaskMap{}
	}
	next = next.Prune()
	if err := s.repo.Save(ctx, next); err != nil {
		s.l.Errorf(ctx, "store.Replace Save: %v", err)
		return err
	}
	s.tasks = next
	return nil
}
