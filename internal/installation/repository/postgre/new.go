package postgre

import (
	"database/sql"
	"fmt"

	"buildbridge/internal/installation/repository"
	"buildbridge/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the installation domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("installation/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("installation/repository/postgre.%s", method)
}
