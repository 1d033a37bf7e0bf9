package http

import (
	"net/http"

	"buildbridge/internal/buildlog"
	pkgErrors "buildbridge/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case buildlog.ErrBuildIDRequired:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "build id is required")
	case buildlog.ErrInvalidLimit:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 500")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
