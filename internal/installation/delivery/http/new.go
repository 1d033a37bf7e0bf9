package http

import (
	"buildbridge/internal/installation"
	"buildbridge/pkg/log"
)

type handler struct {
	l  log.Logger
	uc installation.UseCase
}

// New creates a new HTTP handler for the installation domain.
func New(l log.Logger, uc installation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
