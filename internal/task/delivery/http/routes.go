package http

import (
	"github.com/gin-gonic/gin"

	"my-daily-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/today", h.Today)
	rg.GET("/calendar", h.Calendar)
	rg.GET("/export", h.Export)
	rg.POST("/import", mw.RateLimit(), h.Import)

	days := rg.Group("/days/:day")
	{
		days.GET("", h.Day)
		days.POST("/tasks", h.Add)
		days.PUT("/tasks/:id", h.Update)
		days.DELETE("/tasks/:id", h.Delete)
		days.POST("/tasks/:id/toggle", h.Toggle)
	}
}
