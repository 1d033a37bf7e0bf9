package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"buildbridge/internal/project"
	repo "buildbridge/internal/project/repository"
)

const projectColumns = `id, user_id, installation_id, owner, repo_name, selected_branch, build_project_name, build_status, created_at, updated_at`

// CreateProject inserts a new Project row and returns the created entity.
func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (project.Project, error) {
	query := fmt.Sprintf(`
		INSERT INTO projects (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s`, projectColumns, projectColumns)

	id := uuid.New().String()

	var p project.Project
	err := r.db.QueryRowContext(ctx, query,
		id, opt.UserID, opt.InstallationID, opt.Owner, opt.RepoName,
		opt.SelectedBranch, opt.BuildProjectName, opt.BuildStatus,
	).Scan(scanDest(&p)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return project.Project{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOneProject retrieves a single Project by the provided filters (AND condition).
// Returns zero-value Project (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneProject(ctx context.Context, opt repo.GetOneProjectOptions) (project.Project, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM projects WHERE %s LIMIT 1", projectColumns, mods)

	var p project.Project
	err := r.db.QueryRowContext(ctx, query, args...).Scan(scanDest(&p)...)
	if err == sql.ErrNoRows {
		return project.Project{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProject"), err)
		return project.Project{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListProjects returns a paginated list of Projects and the total count.
func (r *implRepository) ListProjects(ctx context.Context, opt repo.ListProjectsOptions) ([]project.Project, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM projects WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListProjects"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM projects %s", projectColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(scanDest(&p)...); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	return projects, total, nil
}

// UpdateProject updates a Project by ID and returns the updated entity.
func (r *implRepository) UpdateProject(ctx context.Context, opt repo.UpdateProjectOptions) (project.Project, error) {
	query := fmt.Sprintf(`
		UPDATE projects
		SET selected_branch = $1, build_project_name = $2, build_status = $3, updated_at = $4
		WHERE id = $5
		RETURNING %s`, projectColumns)

	var p project.Project
	err := r.db.QueryRowContext(ctx, query,
		opt.SelectedBranch, opt.BuildProjectName, opt.BuildStatus, time.Now(), opt.ID,
	).Scan(scanDest(&p)...)
	if err == sql.ErrNoRows {
		return project.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProject"), err)
		return project.Project{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

// DeleteProject removes a Project by ID.
func (r *implRepository) DeleteProject(ctx context.Context, id string) error {
	const query = `DELETE FROM projects WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProject"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// scanDest returns the Scan destinations in projectColumns order.
func scanDest(p *project.Project) []any {
	return []any{
		&p.ID, &p.UserID, &p.InstallationID, &p.Owner, &p.RepoName,
		&p.SelectedBranch, &p.BuildProjectName, &p.BuildStatus,
		&p.CreatedAt, &p.UpdatedAt,
	}
}
