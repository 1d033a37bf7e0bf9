package http

import (
	"buildbridge/internal/buildlog"
	"buildbridge/pkg/log"
)

type handler struct {
	l  log.Logger
	uc buildlog.UseCase
}

// New creates a new HTTP handler for the buildlog domain.
func New(l log.Logger, uc buildlog.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
