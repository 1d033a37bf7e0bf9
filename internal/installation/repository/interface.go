package repository

import (
	"context"

	"buildbridge/internal/installation"
)

// Repository defines all data access methods for the Installation entity.
type Repository interface {
	// UpsertInstallation inserts the installation or refreshes it when the
	// same installation id is already registered for the user.
	UpsertInstallation(ctx context.Context, opt UpsertInstallationOptions) (installation.Installation, error)
	GetOneInstallation(ctx context.Context, opt GetOneInstallationOptions) (installation.Installation, error)
	ListInstallations(ctx context.Context, opt ListInstallationsOptions) ([]installation.Installation, error)
	DeleteInstallation(ctx context.Context, id string) error
}
