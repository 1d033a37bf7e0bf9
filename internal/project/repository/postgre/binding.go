package postgre

import (
	"context"

	"buildbridge/internal/project"
	repo "buildbridge/internal/project/repository"
)

// ListBindings returns the build bindings for a repository/installation
// pair, filtered to the given build status.
func (r *implRepository) ListBindings(ctx context.Context, opt repo.ListBindingsOptions) ([]project.BuildBinding, error) {
	const query = `
		SELECT id, selected_branch, build_project_name, build_status
		FROM projects
		WHERE owner = $1 AND repo_name = $2 AND installation_id = $3 AND build_status = $4`

	rows, err := r.db.QueryContext(ctx, query, opt.Owner, opt.RepoName, opt.InstallationID, opt.BuildStatus)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBindings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var bindings []project.BuildBinding
	for rows.Next() {
		var b project.BuildBinding
		if err := rows.Scan(&b.ProjectID, &b.SelectedBranch, &b.BuildProjectName, &b.BuildStatus); err != nil {
			return nil, repo.ErrFailedToList
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}
