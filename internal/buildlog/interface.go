package buildlog

import (
	"context"

	"buildbridge/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetLogs returns one page of log events for a build.
	GetLogs(ctx context.Context, sc model.Scope, input GetLogsInput) (GetLogsOutput, error)
}
