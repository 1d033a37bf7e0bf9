package usecase

import (
	"buildbridge/internal/project/repository"
	"buildbridge/pkg/codebuild"
	"buildbridge/pkg/log"
)

// implUseCase is the private implementation of project.UseCase.
type implUseCase struct {
	repo     repository.Repository
	buildSvc codebuild.IBuildService
	l        log.Logger
}

// New creates a new project UseCase implementation.
func New(repo repository.Repository, buildSvc codebuild.IBuildService, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		buildSvc: buildSvc,
		l:        l,
	}
}
