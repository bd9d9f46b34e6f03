package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"my-daily-planner/internal/model"
	"my-daily-planner/internal/task/repository"
	"my-daily-planner/internal/task/repository/sqlite"
	"my-daily-planner/pkg/log"
)

func TestSlotRoundTrip(t *testing.T) {
	db, err := sqlite.NewDB(repository.SQLiteOptions{Path: "file::memory:?cache=shared"})
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	repo := sqlite.New(db, log.NewNop())
	ctx := context.Background()

	empty, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty map, got %v", empty)
	}

	first := model.TaskMap{"2024-01-10": {{ID: "1", Text: "A", PlanningTime: 2}}}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}

	second := model.TaskMap{
		"2024-01-10": {{ID: "1", Text: "A", PlanningTime: 2, Completed: true, ActualTime: 2}},
		"2024-01-11": {{ID: "2", Text: "B"}},
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save second (upsert): %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || !got["2024-01-10"][0].Completed || got["2024-01-11"][0].Text != "B" {
		t.Errorf("unexpected slot content: %+v", got)
	}
}

func TestPing(t *testing.T) {
	db, err := sqlite.NewDB(repository.SQLiteOptions{Path: "file:ping?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	repo := sqlite.New(db, log.NewNop())
	ctx := context.Background()

	if err := repo.Ping(ctx); err != nil {
		t.Fatalf("Ping on open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("DB: %v", err)
	}
	sqlDB.Close()
	if err := repo.Ping(ctx); !errors.Is(err, repository.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable after close, got %v", err)
	}
}
