package usecase

import (
	"context"

	"buildbridge/internal/installation"
	"buildbridge/internal/installation/repository"
	"buildbridge/internal/model"
)

// Register records an App installation for the caller. The account login is
// resolved through the GitHub API so the stored row carries a human-readable
// owner; a lookup failure is not fatal — the installation is stored anyway.
func (uc *implUseCase) Register(ctx context.Context, sc model.Scope, input installation.RegisterInput) (installation.RegisterOutput, error) {
	accountLogin := ""
	ghIns, err := uc.gh.GetInstallation(ctx, input.InstallationID)
	if err != nil {
		uc.l.Warnf(ctx, "installation.Register: resolve account for %d: %v", input.InstallationID, err)
	} else {
		accountLogin = ghIns.Account.Login
	}

	ins, err := uc.repo.UpsertInstallation(ctx, repository.UpsertInstallationOptions{
		UserID:         sc.UserID,
		InstallationID: input.InstallationID,
		AccountLogin:   accountLogin,
	})
	if err != nil {
		uc.l.Errorf(ctx, "installation.Register: %v", err)
		return installation.RegisterOutput{}, err
	}

	return installation.RegisterOutput{Installation: ins}, nil
}

// List returns the caller's registered installations.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (installation.ListOutput, error) {
	installations, err := uc.repo.ListInstallations(ctx, repository.ListInstallationsOptions{
		UserID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "installation.List: %v", err)
		return installation.ListOutput{}, err
	}
	return installation.ListOutput{Installations: installations}, nil
}

// ListRepositories lists the repositories an installation grants access to.
// The installation must belong to the caller.
func (uc *implUseCase) ListRepositories(ctx context.Context, sc model.Scope, installationID int64) (installation.ListRepositoriesOutput, error) {
	ins, err := uc.repo.GetOneInstallation(ctx, repository.GetOneInstallationOptions{
		UserID:         sc.UserID,
		InstallationID: installationID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "installation.ListRepositories: %v", err)
		return installation.ListRepositoriesOutput{}, err
	}
	if ins.ID == "" {
		return installation.ListRepositoriesOutput{}, installation.ErrInstallationNotFound
	}

	ghRepos, err := uc.gh.ListInstallationRepositories(ctx, installationID)
	if err != nil {
		uc.l.Errorf(ctx, "installation.ListRepositories: github: %v", err)
		return installation.ListRepositoriesOutput{}, err
	}

	repos := make([]installation.Repository, 0, len(ghRepos))
	for _, gr := range ghRepos {
		repos = append(repos, installation.Repository{
			ID:            gr.ID,
			Name:          gr.Name,
			FullName:      gr.FullName,
			Private:       gr.Private,
			DefaultBranch: gr.DefaultBranch,
		})
	}

	return installation.ListRepositoriesOutput{Repositories: repos}, nil
}

// Delete removes a registered installation. The stored projects keep their
// bindings; deleting them is the project domain's call, not a side effect.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, installationID int64) error {
	ins, err := uc.repo.GetOneInstallation(ctx, repository.GetOneInstallationOptions{
		UserID:         sc.UserID,
		InstallationID: installationID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "installation.Delete: %v", err)
		return err
	}
	if ins.ID == "" {
		return installation.ErrInstallationNotFound
	}

	if err := uc.repo.DeleteInstallation(ctx, ins.ID); err != nil {
		uc.l.Errorf(ctx, "installation.Delete: %v", err)
		return err
	}
	return nil
}
