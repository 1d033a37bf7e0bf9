package webhook

import (
	"encoding/json"
	"fmt"
	"strings"

	"buildbridge/internal/model"
)

// GitHubWebhookParser parses GitHub webhook payloads
type GitHubWebhookParser struct{}

func NewGitHubParser() *GitHubWebhookParser {
	return &GitHubWebhookParser{}
}

// ParsePushEvent parses a GitHub push event payload.
func (p *GitHubWebhookParser) ParsePushEvent(payload []byte) (*model.PushEvent, error) {
	var event struct {
		Ref        string `json:"ref"`
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
		Installation struct {
			ID int64 `json:"id"`
		} `json:"installation"`
		HeadCommit struct {
			ID      string `json:"id"`
			Message string `json:"message"`
		} `json:"head_commit"`
		Pusher struct {
			Name string `json:"name"`
		} `json:"pusher"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse push event: %w", err)
	}

	// Extract branch name from ref (refs/heads/main → main). Other ref
	// forms (tags) keep their remainder and simply never match a
	// project's selected branch.
	branch := strings.TrimPrefix(event.Ref, "refs/heads/")

	return &model.PushEvent{
		RepositoryFullName: event.Repository.FullName,
		InstallationID:     event.Installation.ID,
		Ref:                event.Ref,
		PushedBranch:       branch,
		CommitSHA:          event.HeadCommit.ID,
		CommitMessage:      event.HeadCommit.Message,
		PusherName:         event.Pusher.Name,
	}, nil
}
