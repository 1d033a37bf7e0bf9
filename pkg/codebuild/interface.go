package codebuild

import "context"

// IBuildService defines the interface for the managed build service client.
// Implementations are safe for concurrent use.
type IBuildService interface {
	// CreateProject provisions a named build definition for a repository.
	CreateProject(ctx context.Context, input CreateProjectInput) (Project, error)

	// StartBuild starts a build of the given project at the given branch.
	// The branch is sent to the service as a full ref (refs/heads/<branch>).
	StartBuild(ctx context.Context, projectName, branch string) (Build, error)

	// GetBuildLogs returns one page of log events for a build.
	GetBuildLogs(ctx context.Context, buildID string, opt GetLogsOptions) (LogPage, error)

	// DeleteProject removes a build definition. Missing projects are not an error.
	DeleteProject(ctx context.Context, projectName string) error
}
