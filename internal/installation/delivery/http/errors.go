package http

import (
	"net/http"

	"buildbridge/internal/installation"
	pkgErrors "buildbridge/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case installation.ErrInstallationNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "installation not found")
	case installation.ErrOAuthNotConfigured:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "github oauth is not configured")
	case installation.ErrOAuthExchangeFailed:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "oauth code exchange failed")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
