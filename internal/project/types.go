package project

import "time"

// BuildStatus tracks the lifecycle of a project's build definition on the
// build service.
type BuildStatus string

const (
	// BuildStatusPending means no build definition has been provisioned yet.
	BuildStatusPending BuildStatus = "PENDING"
	// BuildStatusCreated means the build definition exists and can be started.
	BuildStatusCreated BuildStatus = "CREATED"
	// BuildStatusFailed means provisioning was attempted and rejected.
	BuildStatusFailed BuildStatus = "FAILED"
)

// Project binds a user to a repository/branch and its build definition.
type Project struct {
	ID               string
	UserID           string
	InstallationID   int64
	Owner            string
	RepoName         string
	SelectedBranch   string
	BuildProjectName string
	BuildStatus      BuildStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BuildBinding is the slice of a Project the push dispatcher needs.
type BuildBinding struct {
	ProjectID        string
	SelectedBranch   string
	BuildProjectName string
	BuildStatus      BuildStatus
}

// PushRecord is one observed push against a project, kept as history.
type PushRecord struct {
	ProjectID     string
	Branch        string
	CommitSHA     string
	CommitMessage string
	PusherName    string
}

// --- UseCase Inputs ---

type CreateProjectInput struct {
	InstallationID int64
	Owner          string
	RepoName       string
	SelectedBranch string
}

type ListProjectsInput struct {
	Limit  int
	Offset int
}

type UpdateProjectInput struct {
	ID             string
	SelectedBranch string
}

// --- UseCase Outputs ---

type CreateProjectOutput struct {
	Project Project
}

type ListProjectsOutput struct {
	Projects []Project
	Total    int
	Limit    int
	Offset   int
}

type DetailProjectOutput struct {
	Project Project
}

type UpdateProjectOutput struct {
	Project Project
}
