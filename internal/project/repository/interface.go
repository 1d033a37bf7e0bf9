package repository

import (
	"context"

	"buildbridge/internal/project"
)

// Repository is the composed interface for the project domain data store.
type Repository interface {
	ProjectRepository
	HistoryRepository
}

// ProjectRepository defines all data access methods for the Project entity.
type ProjectRepository interface {
	CreateProject(ctx context.Context, opt CreateProjectOptions) (project.Project, error)
	GetOneProject(ctx context.Context, opt GetOneProjectOptions) (project.Project, error)
	ListProjects(ctx context.Context, opt ListProjectsOptions) ([]project.Project, int, error)
	UpdateProject(ctx context.Context, opt UpdateProjectOptions) (project.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// ListBindings returns the build bindings for a repository, filtered to
	// the given build status. Used by the push dispatcher.
	ListBindings(ctx context.Context, opt ListBindingsOptions) ([]project.BuildBinding, error)
}

// HistoryRepository persists observed pushes per project.
type HistoryRepository interface {
	AppendPushHistory(ctx context.Context, opt AppendPushHistoryOptions) error
}
