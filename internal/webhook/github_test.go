package webhook

import "testing"

func TestParsePushEvent(t *testing.T) {
	parser := NewGitHubParser()

	t.Run("full payload", func(t *testing.T) {
		payload := []byte(`{
			"ref": "refs/heads/main",
			"repository": {"full_name": "octocat/api"},
			"installation": {"id": 42},
			"head_commit": {"id": "abc123", "message": "fix things"},
			"pusher": {"name": "octocat"}
		}`)

		event, err := parser.ParsePushEvent(payload)
		if err != nil {
			t.Fatalf("ParsePushEvent: %v", err)
		}

		if event.RepositoryFullName != "octocat/api" {
			t.Errorf("unexpected repo: %q", event.RepositoryFullName)
		}
		if event.InstallationID != 42 {
			t.Errorf("unexpected installation id: %d", event.InstallationID)
		}
		if event.PushedBranch != "main" {
			t.Errorf("unexpected branch: %q", event.PushedBranch)
		}
		if event.CommitSHA != "abc123" || event.PusherName != "octocat" {
			t.Errorf("unexpected commit fields: %+v", event)
		}
	})

	t.Run("tag ref keeps its remainder", func(t *testing.T) {
		payload := []byte(`{"ref": "refs/tags/v1.0.0", "repository": {"full_name": "octocat/api"}}`)

		event, err := parser.ParsePushEvent(payload)
		if err != nil {
			t.Fatalf("ParsePushEvent: %v", err)
		}
		// Not a branch push — the remainder will never match a selected branch
		if event.PushedBranch != "refs/tags/v1.0.0" {
			t.Errorf("unexpected branch for tag push: %q", event.PushedBranch)
		}
	})

	t.Run("malformed JSON errors", func(t *testing.T) {
		if _, err := parser.ParsePushEvent([]byte(`{not json`)); err == nil {
			t.Error("expected parse error")
		}
	})
}
