package pgsql

import (
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewSubmissionAuditRepository returns the Postgres-backed submission audit store.
func NewSubmissionAuditRepository(dbPool *pgxpool.Pool) portsrepo.SubmissionAuditRepository {
	return newPgxSubmissionAuditRepository(dbPool)
}
