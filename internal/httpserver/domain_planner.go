package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dashboardHTTP "my-daily-planner/internal/dashboard/delivery/http"
	"my-daily-planner/internal/middleware"
	taskHTTP "my-daily-planner/internal/task/delivery/http"
)

// setupPlannerDomain registers /api/v1/planner.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api.Group("/planner"), h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}

// setupDashboardDomain registers /api/v1/dashboard.
func (srv HTTPServer) setupDashboardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := dashboardHTTP.New(srv.l, srv.dashboardUC)
	dashboardHTTP.RegisterRoutes(api.Group("/dashboard"), h, mw)

	srv.l.Infof(ctx, "Dashboard domain registered")
	return nil
}
