package usecase

import (
	"context"

	"buildbridge/internal/model"
	"buildbridge/internal/project"
	repo "buildbridge/internal/project/repository"
)

// List returns a paginated list of the caller's Projects.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input project.ListProjectsInput) (project.ListProjectsOutput, error) {
	projects, total, err := uc.repo.ListProjects(ctx, repo.ListProjectsOptions{
		UserID: sc.UserID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListProjects: %v", err)
		return project.ListProjectsOutput{}, err
	}

	return project.ListProjectsOutput{
		Projects: projects,
		Total:    total,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}, nil
}
