package installation

import "errors"

var (
	ErrInstallationNotFound = errors.New("installation not found")
	ErrOAuthNotConfigured   = errors.New("github oauth is not configured")
	ErrOAuthExchangeFailed  = errors.New("github oauth code exchange failed")
)
