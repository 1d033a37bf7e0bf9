package repository

import "buildbridge/internal/project"

// CreateProjectOptions holds parameters for inserting a new Project.
type CreateProjectOptions struct {
	UserID           string
	InstallationID   int64
	Owner            string
	RepoName         string
	SelectedBranch   string
	BuildProjectName string
	BuildStatus      project.BuildStatus
}

// GetOneProjectOptions holds filter parameters for fetching a single
// Project. All non-empty fields are applied as AND conditions.
type GetOneProjectOptions struct {
	ID             string
	UserID         string
	Owner          string
	RepoName       string
	SelectedBranch string
}

// ListProjectsOptions holds filter and pagination parameters for listing
// Projects.
type ListProjectsOptions struct {
	UserID string
	Limit  int
	Offset int
}

// UpdateProjectOptions holds parameters for updating an existing Project.
type UpdateProjectOptions struct {
	ID               string
	SelectedBranch   string
	BuildProjectName string
	BuildStatus      project.BuildStatus
}

// ListBindingsOptions identifies the repository whose bindings to fetch.
type ListBindingsOptions struct {
	Owner          string
	RepoName       string
	InstallationID int64
	BuildStatus    project.BuildStatus
}

// AppendPushHistoryOptions holds one push record to persist.
type AppendPushHistoryOptions struct {
	Record project.PushRecord
}
