package http

import (
	"net/http"

	"buildbridge/internal/project"
	pkgErrors "buildbridge/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case project.ErrProjectNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "project not found")
	case project.ErrRepoAlreadyLinked:
		return pkgErrors.NewHTTPError(http.StatusConflict, "repository branch already linked to a project")
	case project.ErrInvalidRepoName:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid repository name")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
