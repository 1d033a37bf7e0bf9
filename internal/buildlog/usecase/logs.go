package usecase

import (
	"context"
	"strings"

	"buildbridge/internal/buildlog"
	"buildbridge/internal/model"
	"buildbridge/pkg/codebuild"
)

// GetLogs validates the request and proxies one page of log events from the
// build service. A zero limit means the default page size; anything outside
// [MinLimit, MaxLimit] is rejected.
func (uc *implUseCase) GetLogs(ctx context.Context, sc model.Scope, input buildlog.GetLogsInput) (buildlog.GetLogsOutput, error) {
	if strings.TrimSpace(input.BuildID) == "" {
		return buildlog.GetLogsOutput{}, buildlog.ErrBuildIDRequired
	}

	limit := input.Limit
	if limit == 0 {
		limit = buildlog.DefaultLimit
	}
	if limit < buildlog.MinLimit || limit > buildlog.MaxLimit {
		return buildlog.GetLogsOutput{}, buildlog.ErrInvalidLimit
	}

	page, err := uc.buildSvc.GetBuildLogs(ctx, input.BuildID, codebuild.GetLogsOptions{
		Limit:     limit,
		NextToken: input.NextToken,
	})
	if err != nil {
		uc.l.Errorf(ctx, "buildlog.GetLogs: %v", err)
		return buildlog.GetLogsOutput{}, err
	}

	events := make([]buildlog.LogEvent, 0, len(page.Events))
	for _, ev := range page.Events {
		events = append(events, buildlog.LogEvent{
			Timestamp: ev.Timestamp,
			Message:   ev.Message,
		})
	}

	return buildlog.GetLogsOutput{
		Events:    events,
		NextToken: page.NextToken,
	}, nil
}
