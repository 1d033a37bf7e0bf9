package postgre

import (
	"context"

	"github.com/google/uuid"

	repo "buildbridge/internal/project/repository"
)

// AppendPushHistory inserts one push record. Callers treat failure as
// non-fatal; this method only reports it.
func (r *implRepository) AppendPushHistory(ctx context.Context, opt repo.AppendPushHistoryOptions) error {
	const query = `
		INSERT INTO push_history (id, project_id, branch, commit_sha, commit_message, pusher_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`

	rec := opt.Record
	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(), rec.ProjectID, rec.Branch, rec.CommitSHA, rec.CommitMessage, rec.PusherName,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendPushHistory"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}
