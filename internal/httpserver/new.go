package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"my-daily-planner/internal/dashboard"
	"my-daily-planner/internal/middleware"
	"my-daily-planner/internal/store"
	"my-daily-planner/internal/task"
	"my-daily-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	store       *store.Store
	taskUC      task.UseCase
	dashboardUC dashboard.UseCase
	mwConfig    middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Store           *store.Store
	TaskUC          task.UseCase
	DashboardUC     dashboard.UseCase
	RateLimitPerMin int
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		store:       cfg.Store,
		taskUC:      cfg.TaskUC,
		dashboardUC: cfg.DashboardUC,
		mwConfig:    middleware.Config{RateLimitPerMin: cfg.RateLimitPerMin},
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.dashboardUC == nil {
		return errors.New("dashboard usecase is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
