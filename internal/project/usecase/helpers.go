package usecase

import (
	"fmt"

	"buildbridge/internal/project"
	"buildbridge/pkg/codebuild"
)

// newCreateProjectInput maps a project create request to the build
// service's provisioning input.
func (uc *implUseCase) newCreateProjectInput(buildProjectName string, input project.CreateProjectInput) codebuild.CreateProjectInput {
	return codebuild.CreateProjectInput{
		Name:          buildProjectName,
		RepositoryURL: fmt.Sprintf("https://github.com/%s/%s.git", input.Owner, input.RepoName),
		SourceBranch:  input.SelectedBranch,
	}
}

// coalesce returns the first non-empty string — used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
