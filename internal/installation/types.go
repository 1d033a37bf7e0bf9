package installation

import "time"

// Installation is a stored GitHub App installation grant for a user.
type Installation struct {
	ID             string
	UserID         string
	InstallationID int64
	AccountLogin   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Repository is one repository an installation grants access to.
type Repository struct {
	ID            int64
	Name          string
	FullName      string
	Private       bool
	DefaultBranch string
}

// --- UseCase Inputs ---

type RegisterInput struct {
	InstallationID int64
}

type ExchangeOAuthInput struct {
	Code string
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	Installation Installation
}

type ListOutput struct {
	Installations []Installation
}

type ListRepositoriesOutput struct {
	Repositories []Repository
}

type OAuthURLOutput struct {
	URL   string
	State string
}

type ExchangeOAuthOutput struct {
	AccessToken string
	TokenType   string
}
