package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"buildbridge/config"
	"buildbridge/internal/webhook"
	"buildbridge/pkg/codebuild"
	"buildbridge/pkg/github"
	"buildbridge/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	postgresDB *sql.DB

	// Collaborators
	buildSvc codebuild.IBuildService
	gh       github.IGitHub
	cfg      *config.Config

	// Webhooks
	webhookHandler *webhook.Handler
	webhookEnabled bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB

	BuildService codebuild.IBuildService
	GitHub       github.IGitHub
	AppConfig    *config.Config

	WebhookHandler *webhook.Handler
	WebhookEnabled bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		postgresDB:     cfg.PostgresDB,
		buildSvc:       cfg.BuildService,
		gh:             cfg.GitHub,
		cfg:            cfg.AppConfig,
		webhookHandler: cfg.WebhookHandler,
		webhookEnabled: cfg.WebhookEnabled,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.buildSvc == nil {
		return errors.New("build service client is required")
	}
	if srv.gh == nil {
		return errors.New("github client is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	return nil
}
