package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // Asia/Jakarta without a system tz database

	"github.com/spf13/afero"

	"my-daily-planner/config"
	_ "my-daily-planner/docs" // Swagger docs
	dashboardUC "my-daily-planner/internal/dashboard/usecase"
	"my-daily-planner/internal/httpserver"
	"my-daily-planner/internal/store"
	"my-daily-planner/internal/task/repository"
	fileRepo "my-daily-planner/internal/task/repository/file"
	sqliteRepo "my-daily-planner/internal/task/repository/sqlite"
	taskUC "my-daily-planner/internal/task/usecase"
	"my-daily-planner/pkg/datemath"
	"my-daily-planner/pkg/gemini"
	"my-daily-planner/pkg/log"
)

// @title       My Daily Planner API
// @description Personal daily-task planner with calendar, spreadsheet import/export and an AI productivity summary.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting My Daily Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Clock
	clock, err := datemath.NewClock(cfg.Planner.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC+7: %v", cfg.Planner.Timezone, err)
		clock = datemath.NewFixedClock("WIB", 7*time.Hour)
	}

	// 4. Task Store
	repo, err := newRepository(cfg.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage: ", err)
		return
	}
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	st, err := store.Open(ctx, repo, logger)
	if err != nil {
		logger.Error(ctx, "Failed to load tasks: ", err)
		return
	}

	// 5. AI client (optional)
	var ai gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		ai, err = gemini.New(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			APIURL:  cfg.Gemini.APIURL,
			Timeout: cfg.Gemini.Timeout,
		})
		if err != nil {
			logger.Warnf(ctx, "Gemini not available: %v", err)
			ai = nil
		} else {
			logger.Infof(ctx, "Gemini initialized (model %s)", ai.Model())
		}
	} else {
		logger.Warn(ctx, "API_KEY is not set, AI analysis is disabled")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Store:           st,
		TaskUC:          taskUC.New(logger, st, clock),
		DashboardUC:     dashboardUC.New(logger, st, clock, ai),
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newRepository(cfg config.StorageConfig, l log.Logger) (repository.Repository, error) {
	switch cfg.Driver {
	case config.StorageDriverSQLite:
		db, err := sqliteRepo.NewDB(repository.SQLiteOptions{Path: cfg.SQLitePath})
		if err != nil {
			return nil, err
		}
		return sqliteRepo.New(db, l), nil
	default:
		fs := afero.NewOsFs()
		if err := fs.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
		return fileRepo.New(fs, repository.FileOptions{Dir: cfg.Dir}, l), nil
	}
}
