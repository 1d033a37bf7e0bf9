package dispatch

import (
	"context"

	"buildbridge/internal/model"
)

// UseCase is the push-triggered build dispatcher.
type UseCase interface {
	// HandlePush resolves the projects bound to a push, records the push
	// against each of them and triggers builds for branch matches. It
	// returns once every per-project task has settled; individual task
	// failures are reported in the output, never as the returned error.
	HandlePush(ctx context.Context, event model.PushEvent) (HandlePushOutput, error)
}
