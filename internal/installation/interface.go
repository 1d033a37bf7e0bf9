package installation

import (
	"context"

	"buildbridge/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Register records (or refreshes) an App installation for the caller.
	Register(ctx context.Context, sc model.Scope, input RegisterInput) (RegisterOutput, error)

	// List returns the caller's registered installations.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// ListRepositories lists the repositories one installation grants
	// access to, via the GitHub API.
	ListRepositories(ctx context.Context, sc model.Scope, installationID int64) (ListRepositoriesOutput, error)

	// Delete removes one of the caller's registered installations,
	// addressed by its GitHub installation id.
	Delete(ctx context.Context, sc model.Scope, installationID int64) error

	// OAuthURL returns the GitHub authorization URL to start the connect flow.
	OAuthURL(ctx context.Context) (OAuthURLOutput, error)

	// ExchangeOAuth trades an authorization code for an access token.
	ExchangeOAuth(ctx context.Context, sc model.Scope, input ExchangeOAuthInput) (ExchangeOAuthOutput, error)
}
