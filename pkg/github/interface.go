package github

import "context"

// IGitHub defines the interface for the GitHub REST API client.
// Implementations are safe for concurrent use.
type IGitHub interface {
	// GetInstallation fetches metadata for an App installation.
	GetInstallation(ctx context.Context, installationID int64) (Installation, error)

	// ListInstallationRepositories lists the repositories an installation
	// grants access to.
	ListInstallationRepositories(ctx context.Context, installationID int64) ([]Repository, error)
}
