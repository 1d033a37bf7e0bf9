package usecase

import (
	"context"

	"buildbridge/internal/model"
	"buildbridge/internal/project"
	repo "buildbridge/internal/project/repository"
)

// Detail returns a single Project owned by the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (project.DetailProjectOutput, error) {
	p, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneProject: %v", err)
		return project.DetailProjectOutput{}, err
	}
	if p.ID == "" {
		return project.DetailProjectOutput{}, project.ErrProjectNotFound
	}
	return project.DetailProjectOutput{Project: p}, nil
}

// Update changes the selected branch of an existing Project.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input project.UpdateProjectInput) (project.UpdateProjectOutput, error) {
	existing, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneProject: %v", err)
		return project.UpdateProjectOutput{}, err
	}
	if existing.ID == "" {
		return project.UpdateProjectOutput{}, project.ErrProjectNotFound
	}

	p, err := uc.repo.UpdateProject(ctx, repo.UpdateProjectOptions{
		ID:               existing.ID,
		SelectedBranch:   uc.coalesce(input.SelectedBranch, existing.SelectedBranch),
		BuildProjectName: existing.BuildProjectName,
		BuildStatus:      existing.BuildStatus,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateProject: %v", err)
		return project.UpdateProjectOutput{}, err
	}

	return project.UpdateProjectOutput{Project: p}, nil
}

// Delete removes a Project and best-effort deletes its build definition.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneProject: %v", err)
		return err
	}
	if existing.ID == "" {
		return project.ErrProjectNotFound
	}

	// Best effort: a dangling build definition is harmless, an undeletable
	// project row is not.
	if existing.BuildProjectName != "" {
		if err := uc.buildSvc.DeleteProject(ctx, existing.BuildProjectName); err != nil {
			uc.l.Warnf(ctx, "uc.Delete build definition %s: %v", existing.BuildProjectName, err)
		}
	}

	if err := uc.repo.DeleteProject(ctx, existing.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteProject: %v", err)
		return err
	}
	return nil
}
