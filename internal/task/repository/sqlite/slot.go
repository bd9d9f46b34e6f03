package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"my-daily-planner/internal/model"
	"my-daily-planner/internal/task/repository"
)

// Load reads the tasks slot. A missing row yields an empty map.
func (r *implRepository) Load(ctx context.Context) (model.TaskMap, error) {
	var row slot
	err := r.db.WithContext(ctx).Where(&slot{Key: repository.SlotKey}).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.TaskMap{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return nil, repository.ErrFailedToLoad
	}

	var tasks model.TaskMap
	if err := json.Unmarshal([]byte(row.Value), &tasks); err != nil {
		r.l.Errorf(ctx, "%s unmarshal: %v", r.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrCorruptedSlot, err)
	}
	if tasks == nil {
		tasks = model.TaskMap{}
	}
	return tasks, nil
}

// Save upserts the tasks slot.
func (r *implRepository) Save(ctx context.Context, tasks model.TaskMap) error {
	if tasks == nil {
		tasks = model.TaskMap{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}

	row := slot{Key: repository.SlotKey, Value: string(raw), UpdatedAt: time.Now()}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}
	return nil
}

// Ping checks the underlying database connection.
func (r *implRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Ping"), err)
		return repository.ErrUnavailable
	}
	return nil
}
