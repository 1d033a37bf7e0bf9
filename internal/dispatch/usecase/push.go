package usecase

import (
	"context"
	"sync"

	"buildbridge/internal/dispatch"
	"buildbridge/internal/model"
	"buildbridge/internal/project"
	repo "buildbridge/internal/project/repository"
)

// HandlePush fans out over every project bound to the pushed repository.
// Each project task is independent: a failed history append or build
// trigger is logged and reported in its TriggerResult without touching
// the other tasks. A push from an unlinked or malformed source is not an
// error; the function logs and returns an empty output.
func (uc *implUseCase) HandlePush(ctx context.Context, event model.PushEvent) (dispatch.HandlePushOutput, error) {
	if event.RepositoryFullName == "" || event.InstallationID == 0 {
		uc.l.Infof(ctx, "push ignored: missing repository full name or installation id (repo=%q installation=%d)",
			event.RepositoryFullName, event.InstallationID)
		return dispatch.HandlePushOutput{}, nil
	}
	if event.Owner() == "" || event.RepoName() == "" {
		uc.l.Infof(ctx, "push ignored: malformed repository full name %q", event.RepositoryFullName)
		return dispatch.HandlePushOutput{}, nil
	}

	bindings, err := uc.repo.ListBindings(ctx, repo.ListBindingsOptions{
		Owner:          event.Owner(),
		RepoName:       event.RepoName(),
		InstallationID: event.InstallationID,
		BuildStatus:    project.BuildStatusCreated,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.HandlePush ListBindings: %v", err)
		return dispatch.HandlePushOutput{}, err
	}
	if len(bindings) == 0 {
		uc.l.Infof(ctx, "push to %s@%s matched no projects", event.RepositoryFullName, event.PushedBranch)
		return dispatch.HandlePushOutput{}, nil
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make([]dispatch.TriggerResult, 0, len(bindings))
	)

	for _, binding := range bindings {
		wg.Add(1)
		go func(b project.BuildBinding) {
			defer wg.Done()
			result := uc.evaluateBinding(ctx, b, event)
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(binding)
	}
	wg.Wait()

	output := dispatch.HandlePushOutput{
		MatchedProjects: len(bindings),
		Results:         results,
	}
	uc.l.Infof(ctx, "push to %s@%s: %d project(s) matched, %d build(s) triggered",
		event.RepositoryFullName, event.PushedBranch, output.MatchedProjects, output.TriggeredCount())
	return output, nil
}

// evaluateBinding runs one project's task: best-effort history append,
// then a conditional build trigger.
func (uc *implUseCase) evaluateBinding(ctx context.Context, b project.BuildBinding, event model.PushEvent) dispatch.TriggerResult {
	// History is best effort: its failure must not abort the trigger
	// evaluation for this project.
	if err := uc.repo.AppendPushHistory(ctx, repo.AppendPushHistoryOptions{
		Record: project.PushRecord{
			ProjectID:     b.ProjectID,
			Branch:        event.PushedBranch,
			CommitSHA:     event.CommitSHA,
			CommitMessage: event.CommitMessage,
			PusherName:    event.PusherName,
		},
	}); err != nil {
		uc.l.Warnf(ctx, "dispatch: push history append failed for project %s: %v", b.ProjectID, err)
	}

	if b.SelectedBranch != event.PushedBranch {
		uc.l.Infof(ctx, "dispatch: project %s skipped: watches %q, push was %q",
			b.ProjectID, b.SelectedBranch, event.PushedBranch)
		return dispatch.TriggerResult{ProjectID: b.ProjectID, SkipReason: dispatch.SkipBranchMismatch}
	}
	if b.BuildProjectName == "" {
		uc.l.Infof(ctx, "dispatch: project %s skipped: no build definition", b.ProjectID)
		return dispatch.TriggerResult{ProjectID: b.ProjectID, SkipReason: dispatch.SkipNoBuildDefinition}
	}

	if _, err := uc.buildSvc.StartBuild(ctx, b.BuildProjectName, event.PushedBranch); err != nil {
		uc.l.Errorf(ctx, "dispatch: build trigger failed for project %s (definition %s, branch %s): %v",
			b.ProjectID, b.BuildProjectName, event.PushedBranch, err)
		return dispatch.TriggerResult{ProjectID: b.ProjectID, Err: err}
	}

	return dispatch.TriggerResult{ProjectID: b.ProjectID, Triggered: true}
}
