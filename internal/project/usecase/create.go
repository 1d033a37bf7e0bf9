package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"buildbridge/internal/model"
	"buildbridge/internal/project"
	repo "buildbridge/internal/project/repository"
)

// Create links a repository/branch to the user and provisions a build
// definition for it. A provisioning failure is recorded on the project
// (status FAILED) but does not abort the create — the definition can be
// re-provisioned later via Update.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input project.CreateProjectInput) (project.CreateProjectOutput, error) {
	// Business validation: one project per repo+branch
	existing, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{
		Owner:          input.Owner,
		RepoName:       input.RepoName,
		SelectedBranch: input.SelectedBranch,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneProject: %v", err)
		return project.CreateProjectOutput{}, err
	}
	if existing.ID != "" {
		return project.CreateProjectOutput{}, project.ErrRepoAlreadyLinked
	}

	buildProjectName := fmt.Sprintf("bb-%s-%s-%s", input.Owner, input.RepoName, uuid.New().String()[:8])
	buildStatus := project.BuildStatusCreated

	_, err = uc.buildSvc.CreateProject(ctx, uc.newCreateProjectInput(buildProjectName, input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create provision build project %s: %v", buildProjectName, err)
		buildProjectName = ""
		buildStatus = project.BuildStatusFailed
	}

	// Persist
	p, err := uc.repo.CreateProject(ctx, repo.CreateProjectOptions{
		UserID:           sc.UserID,
		InstallationID:   input.InstallationID,
		Owner:            input.Owner,
		RepoName:         input.RepoName,
		SelectedBranch:   input.SelectedBranch,
		BuildProjectName: buildProjectName,
		BuildStatus:      buildStatus,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateProject: %v", err)
		return project.CreateProjectOutput{}, err
	}

	return project.CreateProjectOutput{Project: p}, nil
}
