package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"buildbridge/internal/middleware"
	"buildbridge/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerWebhookRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.gin.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.CustomRecovery(srv.handlePanic))

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// handlePanic renders an unhandled panic as a 500 carrying the panic
// message, so API clients see what blew up instead of a blank error.
func (srv *HTTPServer) handlePanic(c *gin.Context, recovered any) {
	ctx := c.Request.Context()
	srv.l.Errorf(ctx, "panic recovered: %v", recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("%v", recovered)})
}

// registerWebhookRoutes exposes the GitHub webhook receiver. The GET route is
// the health probe GitHub pings when the endpoint is configured.
func (srv *HTTPServer) registerWebhookRoutes() {
	ctx := context.Background()

	if !srv.webhookEnabled || srv.webhookHandler == nil {
		srv.l.Infof(ctx, "Webhook receiver disabled, skipping routes")
		return
	}

	srv.gin.GET("/webhooks/github", srv.webhookHandler.HandleHealth)
	srv.gin.POST("/webhooks/github", srv.webhookHandler.HandleGitHubWebhook)
	srv.l.Infof(ctx, "GitHub webhook routes registered at /webhooks/github")
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.cfg)

	if err := srv.setupInstallationDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupProjectDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupBuildLogDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
