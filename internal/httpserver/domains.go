package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	githubOAuth "golang.org/x/oauth2/github"

	buildlogHTTP "buildbridge/internal/buildlog/delivery/http"
	buildlogUC "buildbridge/internal/buildlog/usecase"
	installationHTTP "buildbridge/internal/installation/delivery/http"
	installationRepo "buildbridge/internal/installation/repository/postgre"
	installationUC "buildbridge/internal/installation/usecase"
	"buildbridge/internal/middleware"
	projectHTTP "buildbridge/internal/project/delivery/http"
	projectRepo "buildbridge/internal/project/repository/postgre"
	projectUC "buildbridge/internal/project/usecase"
)

// setupInstallationDomain wires the installation domain:
// repository → usecase → HTTP handler → routes under /api/v1.
func (srv *HTTPServer) setupInstallationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := installationRepo.New(srv.postgresDB, srv.l)

	var oauthCfg *oauth2.Config
	if srv.cfg.GitHub.OAuthClientID != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     srv.cfg.GitHub.OAuthClientID,
			ClientSecret: srv.cfg.GitHub.OAuthClientSecret,
			RedirectURL:  srv.cfg.GitHub.OAuthRedirectURL,
			Scopes:       []string{"read:user"},
			Endpoint:     githubOAuth.Endpoint,
		}
	}

	uc := installationUC.New(repo, srv.gh, oauthCfg, srv.l)
	h := installationHTTP.New(srv.l, uc)
	installationHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Installation domain registered")
	return nil
}

// setupProjectDomain wires the project domain.
func (srv *HTTPServer) setupProjectDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := projectRepo.New(srv.postgresDB, srv.l)
	uc := projectUC.New(repo, srv.buildSvc, srv.l)
	h := projectHTTP.New(srv.l, uc)
	projectHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Project domain registered")
	return nil
}

// setupBuildLogDomain wires the build log domain.
func (srv *HTTPServer) setupBuildLogDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := buildlogUC.New(srv.buildSvc, srv.l)
	h := buildlogHTTP.New(srv.l, uc)
	buildlogHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "BuildLog domain registered")
	return nil
}
