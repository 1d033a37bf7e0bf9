package usecase

import (
	"golang.org/x/oauth2"

	"buildbridge/internal/installation/repository"
	"buildbridge/pkg/github"
	"buildbridge/pkg/log"
)

// implUseCase is the private implementation of installation.UseCase.
type implUseCase struct {
	repo     repository.Repository
	gh       github.IGitHub
	oauthCfg *oauth2.Config
	l        log.Logger
}

// New creates a new installation UseCase implementation. oauthCfg may be nil
// when the OAuth connect flow is not configured; the OAuth operations then
// return ErrOAuthNotConfigured.
func New(repo repository.Repository, gh github.IGitHub, oauthCfg *oauth2.Config, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		gh:       gh,
		oauthCfg: oauthCfg,
		l:        l,
	}
}
