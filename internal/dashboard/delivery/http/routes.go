package http

import (
	"github.com/gin-gonic/gin"

	"my-daily-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/summary", h.Summary)
	rg.POST("/analysis", mw.RateLimit(), h.Analysis)
	rg.GET("/report", h.Report)
}
