package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"buildbridge/config"
	"buildbridge/pkg/log"
)

// Idempotent DDL — safe to run on every deploy.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS installations (
		id              UUID PRIMARY KEY,
		user_id         TEXT        NOT NULL,
		installation_id BIGINT      NOT NULL,
		account_login   TEXT        NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, installation_id)
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id                 UUID PRIMARY KEY,
		user_id            TEXT        NOT NULL,
		installation_id    BIGINT      NOT NULL,
		owner              TEXT        NOT NULL,
		repo_name          TEXT        NOT NULL,
		selected_branch    TEXT        NOT NULL,
		build_project_name TEXT        NOT NULL DEFAULT '',
		build_status       TEXT        NOT NULL DEFAULT 'PENDING',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (owner, repo_name, selected_branch)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_repo
		ON projects (owner, repo_name, installation_id)`,
	`CREATE TABLE IF NOT EXISTS push_history (
		id             UUID PRIMARY KEY,
		project_id     UUID        NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
		branch         TEXT        NOT NULL,
		commit_sha     TEXT        NOT NULL DEFAULT '',
		commit_message TEXT        NOT NULL DEFAULT '',
		pusher_name    TEXT        NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_push_history_project
		ON push_history (project_id, created_at DESC)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ping postgres: %v", err)
	}

	logger.Info(ctx, "Running migrations...")

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Fatalf(ctx, "Migration %d failed: %v", i+1, err)
		}
	}

	logger.Infof(ctx, "Migrations complete (%d statements)", len(statements))
}
