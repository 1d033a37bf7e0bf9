package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"buildbridge/internal/installation"
	repo "buildbridge/internal/installation/repository"
)

const installationColumns = `id, user_id, installation_id, account_login, created_at, updated_at`

// UpsertInstallation inserts the installation or refreshes the account login
// when the (user_id, installation_id) pair already exists.
func (r *implRepository) UpsertInstallation(ctx context.Context, opt repo.UpsertInstallationOptions) (installation.Installation, error) {
	query := fmt.Sprintf(`
		INSERT INTO installations (%s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, installation_id)
		DO UPDATE SET account_login = EXCLUDED.account_login, updated_at = NOW()
		RETURNING %s`, installationColumns, installationColumns)

	id := uuid.New().String()

	var ins installation.Installation
	err := r.db.QueryRowContext(ctx, query,
		id, opt.UserID, opt.InstallationID, opt.AccountLogin,
	).Scan(scanDest(&ins)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertInstallation"), err)
		return installation.Installation{}, repo.ErrFailedToUpsert
	}
	return ins, nil
}

// GetOneInstallation retrieves a single Installation by the provided filters
// (AND condition). Returns zero-value Installation (ID == "") when not found.
func (r *implRepository) GetOneInstallation(ctx context.Context, opt repo.GetOneInstallationOptions) (installation.Installation, error) {
	var (
		conds []string
		args  []any
	)
	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if opt.InstallationID != 0 {
		args = append(args, opt.InstallationID)
		conds = append(conds, fmt.Sprintf("installation_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		conds = append(conds, "TRUE")
	}

	query := fmt.Sprintf("SELECT %s FROM installations WHERE %s LIMIT 1",
		installationColumns, strings.Join(conds, " AND "))

	var ins installation.Installation
	err := r.db.QueryRowContext(ctx, query, args...).Scan(scanDest(&ins)...)
	if err == sql.ErrNoRows {
		return installation.Installation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneInstallation"), err)
		return installation.Installation{}, repo.ErrFailedToGet
	}
	return ins, nil
}

// ListInstallations returns the installations registered by a user, newest first.
func (r *implRepository) ListInstallations(ctx context.Context, opt repo.ListInstallationsOptions) ([]installation.Installation, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM installations
		WHERE user_id = $1
		ORDER BY created_at DESC`, installationColumns)

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListInstallations"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var installations []installation.Installation
	for rows.Next() {
		var ins installation.Installation
		if err := rows.Scan(scanDest(&ins)...); err != nil {
			return nil, repo.ErrFailedToList
		}
		installations = append(installations, ins)
	}
	return installations, nil
}

// DeleteInstallation removes an Installation by ID.
func (r *implRepository) DeleteInstallation(ctx context.Context, id string) error {
	const query = `DELETE FROM installations WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteInstallation"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// scanDest returns the Scan destinations in installationColumns order.
func scanDest(ins *installation.Installation) []any {
	return []any{
		&ins.ID, &ins.UserID, &ins.InstallationID, &ins.AccountLogin,
		&ins.CreatedAt, &ins.UpdatedAt,
	}
}
