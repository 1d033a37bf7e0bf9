package http

import (
	"github.com/gin-gonic/gin"

	"buildbridge/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	projects := rg.Group("/projects")
	{
		projects.POST("", mw.Auth(), h.Create)
		projects.GET("", mw.Auth(), h.List)
		projects.GET("/:id", mw.Auth(), h.Detail)
		projects.PUT("/:id", mw.Auth(), h.Update)
		projects.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
