package usecase

import (
	"buildbridge/pkg/codebuild"
	"buildbridge/pkg/log"
)

// implUseCase is the private implementation of buildlog.UseCase.
type implUseCase struct {
	buildSvc codebuild.IBuildService
	l        log.Logger
}

// New creates a new buildlog UseCase implementation.
func New(buildSvc codebuild.IBuildService, l log.Logger) *implUseCase {
	return &implUseCase{
		buildSvc: buildSvc,
		l:        l,
	}
}
