package mapping

import (
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/models"
)

// ToModelSubmissionAudit converts a domain submission record to its table row.
func ToModelSubmissionAudit(r domain.SubmissionRecord) models.SubmissionAudit {
	return models.SubmissionAudit{
		ID:           r.ID,
		DraftID:      r.DraftID,
		UserID:       r.UserID,
		Operation:    string(r.Operation),
		EntryID:      r.EntryID,
		EntryNumber:  nullableString(r.EntryNumber),
		TotalDebit:   int64(r.TotalDebit),
		TotalCredit:  int64(r.TotalCredit),
		LineCount:    r.LineCount,
		Succeeded:    r.Succeeded,
		ErrorMessage: nullableString(r.ErrorMessage),
		CreatedAt:    r.CreatedAt,
	}
}

// ToDomainSubmissionAudit converts a table row to a domain submission record.
func ToDomainSubmissionAudit(m models.SubmissionAudit) domain.SubmissionRecord {
	return domain.SubmissionRecord{
		ID:           m.ID,
		DraftID:      m.DraftID,
		UserID:       m.UserID,
		Operation:    domain.SubmissionOperation(m.Operation),
		EntryID:      m.EntryID,
		EntryNumber:  derefString(m.EntryNumber),
		TotalDebit:   domain.Amount(m.TotalDebit),
		TotalCredit:  domain.Amount(m.TotalCredit),
		LineCount:    m.LineCount,
		Succeeded:    m.Succeeded,
		ErrorMessage: derefString(m.ErrorMessage),
		CreatedAt:    m.CreatedAt,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
