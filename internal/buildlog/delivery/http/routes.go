package http

import (
	"github.com/gin-gonic/gin"

	"buildbridge/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	logs := rg.Group("/logs")
	{
		logs.GET("/:buildId", mw.Auth(), h.GetLogs)
	}
}
