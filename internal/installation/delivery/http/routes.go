package http

import (
	"github.com/gin-gonic/gin"

	"buildbridge/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The OAuth URL endpoint is public; everything else requires auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	installations := rg.Group("/installations")
	{
		installations.POST("", mw.Auth(), h.Register)
		installations.GET("", mw.Auth(), h.List)
		installations.GET("/:installationId/repositories", mw.Auth(), h.ListRepositories)
		installations.DELETE("/:installationId", mw.Auth(), h.Delete)
	}

	oauth := rg.Group("/oauth/github")
	{
		oauth.GET("/url", h.OAuthURL)
		oauth.POST("/exchange", mw.Auth(), h.ExchangeOAuth)
	}
}
