package main

import (
	"strings"
	"testing"
)

func TestSchemaStatements(t *testing.T) {
	t.Run("all statements are idempotent", func(t *testing.T) {
		for i, stmt := range statements {
			if !strings.Contains(stmt, "IF NOT EXISTS") {
				t.Errorf("statement %d is not idempotent:\n%s", i+1, stmt)
			}
		}
	})

	t.Run("project uniqueness is global per repo and branch", func(t *testing.T) {
		projects := findTable(t, "projects")

		// One repo+branch maps to at most one build definition, no matter
		// which user linked it. A per-user constraint would let two users
		// racing on the same branch both insert past the usecase check.
		if !strings.Contains(projects, "UNIQUE (owner, repo_name, selected_branch)") {
			t.Errorf("projects table missing global repo+branch uniqueness:\n%s", projects)
		}
		if strings.Contains(projects, "UNIQUE (user_id") {
			t.Errorf("projects uniqueness must not be scoped per user:\n%s", projects)
		}
	})

	t.Run("installation upsert key matches the repository conflict target", func(t *testing.T) {
		installations := findTable(t, "installations")

		if !strings.Contains(installations, "UNIQUE (user_id, installation_id)") {
			t.Errorf("installations table missing (user_id, installation_id) uniqueness:\n%s", installations)
		}
	})

	t.Run("push history columns match the repository insert", func(t *testing.T) {
		history := findTable(t, "push_history")

		for _, col := range []string{"project_id", "branch", "commit_sha", "commit_message", "pusher_name"} {
			if !strings.Contains(history, col) {
				t.Errorf("push_history missing column %q:\n%s", col, history)
			}
		}
	})
}

func findTable(t *testing.T, name string) string {
	t.Helper()
	for _, stmt := range statements {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS "+name+" ") {
			return stmt
		}
	}
	t.Fatalf("no CREATE TABLE statement for %s", name)
	return ""
}
