package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	"github.com/ecomhub/finance_backoffice/internal/utils/pagination"
)

// SubmissionAuditRepository keeps the most recent submission records in memory. It stands in
// for the Postgres table when no database is configured.
type SubmissionAuditRepository struct {
	mu       sync.RWMutex
	records  []domain.SubmissionRecord
	capacity int
}

// NewSubmissionAuditRepository keeps at most capacity records, dropping the oldest first.
func NewSubmissionAuditRepository(capacity int) portsrepo.SubmissionAuditRepository {
	return &SubmissionAuditRepository{capacity: capacity}
}

// SaveSubmission appends a record.
func (r *SubmissionAuditRepository) SaveSubmission(_ context.Context, record domain.SubmissionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.ID == record.ID {
			return fmt.Errorf("%w: submission record %s", apperrors.ErrDuplicate, record.ID)
		}
	}
	r.records = append(r.records, record)
	if r.capacity > 0 && len(r.records) > r.capacity {
		r.records = r.records[len(r.records)-r.capacity:]
	}
	return nil
}

// ListSubmissionsByUser mirrors the Postgres ordering: created_at DESC, id DESC.
func (r *SubmissionAuditRepository) ListSubmissionsByUser(_ context.Context, userID string, limit int, nextToken *string) ([]domain.SubmissionRecord, *string, error) {
	r.mu.RLock()
	var mine []domain.SubmissionRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			mine = append(mine, rec)
		}
	}
	r.mu.RUnlock()

	sort.Slice(mine, func(i, j int) bool {
		if mine[i].CreatedAt.Equal(mine[j].CreatedAt) {
			return mine[i].ID > mine[j].ID
		}
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})

	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		start := len(mine)
		for i, rec := range mine {
			if rec.CreatedAt.Before(createdAt) || (rec.CreatedAt.Equal(createdAt) && rec.ID < id) {
				start = i
				break
			}
		}
		mine = mine[start:]
	}

	var next *string
	if len(mine) > limit {
		mine = mine[:limit]
		last := mine[len(mine)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.ID)
		next = &token
	}
	return mine, next, nil
}
