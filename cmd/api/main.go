package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"buildbridge/config"
	_ "buildbridge/docs" // Swagger docs
	dispatchUC "buildbridge/internal/dispatch/usecase"
	"buildbridge/internal/httpserver"
	projectRepo "buildbridge/internal/project/repository/postgre"
	"buildbridge/internal/webhook"
	"buildbridge/pkg/codebuild"
	"buildbridge/pkg/github"
	"buildbridge/pkg/log"
)

// @title       BuildBridge API
// @description CI/CD integration service bridging GitHub App installations, repositories, and a managed build service.
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

	logger.Info(ctx, "Starting BuildBridge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres: %v", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ping postgres: %v", err)
		return
	}
	logger.Info(ctx, "Postgres connected")

	// 4. Outbound clients
	buildSvc := codebuild.NewClient(cfg.BuildService.BaseURL, cfg.BuildService.Token)
	ghClient := github.NewClient(cfg.GitHub.APIBaseURL, cfg.GitHub.Token)

	// 5. Webhook receiver: push events fan out to matching project bindings
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled {
		repo := projectRepo.New(db, logger)
		dispatcher := dispatchUC.New(repo, buildSvc, logger)

		webhookHandler = webhook.NewHandler(dispatcher, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)

		if cfg.Webhook.Secret == "" {
			logger.Warn(ctx, "Webhook secret not configured, signed deliveries will be rejected")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		PostgresDB:     db,
		BuildService:   buildSvc,
		GitHub:         ghClient,
		AppConfig:      cfg,
		WebhookHandler: webhookHandler,
		WebhookEnabled: cfg.Webhook.Enabled,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
