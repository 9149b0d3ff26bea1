package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	"github.com/ecomhub/finance_backoffice/internal/models"
	"github.com/ecomhub/finance_backoffice/internal/utils/mapping"
	"github.com/ecomhub/finance_backoffice/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSubmissionAuditRepository stores submission attempts in journal_submission_audit.
type PgxSubmissionAuditRepository struct {
	BaseRepository
}

func newPgxSubmissionAuditRepository(db *pgxpool.Pool) portsrepo.SubmissionAuditRepository {
	return &PgxSubmissionAuditRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const (
	submissionAuditTable = "journal_submission_audit"

	selectSubmissionAuditFields = `
		id, draft_id, user_id, operation, entry_id, entry_number,
		total_debit, total_credit, line_count, succeeded, error_message, created_at
	`

	insertSubmissionAuditQuery = `
		INSERT INTO ` + submissionAuditTable + ` (
			id, draft_id, user_id, operation, entry_id, entry_number,
			total_debit, total_credit, line_count, succeeded, error_message, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	listSubmissionAuditByUserQuery = `
		SELECT ` + selectSubmissionAuditFields + `
		FROM ` + submissionAuditTable + `
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	listSubmissionAuditByUserAfterQuery = `
		SELECT ` + selectSubmissionAuditFields + `
		FROM ` + submissionAuditTable + `
		WHERE user_id = $1 AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4
	`
)

// SaveSubmission persists one submission attempt.
func (r *PgxSubmissionAuditRepository) SaveSubmission(ctx context.Context, record domain.SubmissionRecord) error {
	m := mapping.ToModelSubmissionAudit(record)

	_, err := r.exec(ctx, insertSubmissionAuditQuery,
		m.ID,
		m.DraftID,
		m.UserID,
		m.Operation,
		m.EntryID,
		m.EntryNumber,
		m.TotalDebit,
		m.TotalCredit,
		m.LineCount,
		m.Succeeded,
		m.ErrorMessage,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: submission record %s", apperrors.ErrDuplicate, m.ID)
		}
		return fmt.Errorf("failed to insert submission record: %w", err)
	}
	return nil
}

// ListSubmissionsByUser returns the user's submission attempts, newest first.
func (r *PgxSubmissionAuditRepository) ListSubmissionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.SubmissionRecord, *string, error) {
	if userID == "" {
		return nil, nil, errors.New("user ID cannot be empty")
	}

	// Fetch one extra row to know whether another page exists.
	var (
		rows pgx.Rows
		err  error
	)
	if nextToken != nil && *nextToken != "" {
		createdAt, id, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, decodeErr)
		}
		rows, err = r.query(ctx, listSubmissionAuditByUserAfterQuery, userID, createdAt, id, limit+1)
	} else {
		rows, err = r.query(ctx, listSubmissionAuditByUserQuery, userID, limit+1)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list submission records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SubmissionRecord, 0, limit)
	for rows.Next() {
		m, err := scanSubmissionAudit(rows)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, mapping.ToDomainSubmissionAudit(*m))
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate submission records: %w", err)
	}

	var next *string
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.ID)
		next = &token
	}
	return records, next, nil
}

func scanSubmissionAudit(row pgx.Row) (*models.SubmissionAudit, error) {
	var m models.SubmissionAudit
	err := row.Scan(
		&m.ID,
		&m.DraftID,
		&m.UserID,
		&m.Operation,
		&m.EntryID,
		&m.EntryNumber,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.LineCount,
		&m.Succeeded,
		&m.ErrorMessage,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan submission record: %w", err)
	}
	return &m, nil
}
