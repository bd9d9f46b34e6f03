package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"my-daily-planner/internal/model"
	"my-daily-planner/internal/task/repository"
)

// Load reads the slot file. A missing file yields an empty map.
func (r *implRepository) Load(ctx context.Context) (model.TaskMap, error) {
	raw, err := afero.ReadFile(r.fs, r.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.TaskMap{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return nil, repository.ErrFailedToLoad
	}
	if len(raw) == 0 {
		return model.TaskMap{}, nil
	}

	var tasks model.TaskMap
	if err := json.Unmarshal(raw, &tasks); err != nil {
		r.l.Errorf(ctx, "%s unmarshal: %v", r.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrCorruptedSlot, err)
	}
	if tasks == nil {
		tasks = model.TaskMap{}
	}
	return tasks, nil
}

// Save replaces the slot file atomically (temp file + rename).
func (r *implRepository) Save(ctx context.Context, tasks model.TaskMap) error {
	if tasks == nil {
		tasks = model.TaskMap{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}

	if err := r.fs.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		r.l.Errorf(ctx, "%s mkdir: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}

	tmp := r.path + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, raw, 0o644); err != nil {
		r.l.Errorf(ctx, "%s write: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}
	if err := r.fs.Rename(tmp, r.path); err != nil {
		r.l.Errorf(ctx, "%s rename: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}
	return nil
}

// Ping stats the slot file. A slot that was never written is fine.
func (r *implRepository) Ping(ctx context.Context) error {
	if _, err := r.fs.Stat(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Ping"), err)
		return repository.ErrUnavailable
	}
	return nil
}
