package repositories

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entries
type JournalEntryReader interface {
	// ListJournalEntries retrieves a page of entries, optionally filtered by status and fiscal period.
	ListJournalEntries(ctx context.Context, p domain.Principal, params domain.JournalEntryListParams) (*domain.Page[domain.JournalEntry], error)

	// FindJournalEntryByID retrieves an entry with its lines.
	FindJournalEntryByID(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error)
}

// JournalEntryWriter defines write and workflow operations for journal entries
type JournalEntryWriter interface {
	// CreateJournalEntry submits a new entry. The Ledger API assigns the number and draft status.
	CreateJournalEntry(ctx context.Context, p domain.Principal, payload domain.JournalEntryPayload) (*domain.JournalEntry, error)

	// UpdateJournalEntry replaces the header and lines of a draft entry.
	UpdateJournalEntry(ctx context.Context, p domain.Principal, id int64, payload domain.JournalEntryPayload) (*domain.JournalEntry, error)

	DeleteJournalEntry(ctx context.Context, p domain.Principal, id int64) error
	ApproveJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error)
	RejectJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error)
	PostJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error)
}

// JournalEntryRepositoryFacade combines all journal entry repository interfaces
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}

// DraftRepository keeps composer sessions between requests.
type DraftRepository interface {
	SaveDraft(ctx context.Context, session domain.JournalDraftSession) error

	// FindDraftByID returns a snapshot of the session or ErrNotFound.
	FindDraftByID(ctx context.Context, id string) (*domain.JournalDraftSession, error)

	// UpdateDraft applies fn to the stored session while holding the session's lock and
	// returns a snapshot of the result. A failing fn leaves the stored session untouched.
	UpdateDraft(ctx context.Context, id string, fn func(s *domain.JournalDraftSession) error) (*domain.JournalDraftSession, error)

	// ConsumeDraft is UpdateDraft that also deletes the session, under the same lock, when fn
	// succeeds.
	ConsumeDraft(ctx context.Context, id string, fn func(s *domain.JournalDraftSession) error) (*domain.JournalDraftSession, error)

	DeleteDraft(ctx context.Context, id string) error
}

// SubmissionAuditRepository records every submission attempt of a draft.
type SubmissionAuditRepository interface {
	SaveSubmission(ctx context.Context, record domain.SubmissionRecord) error

	// ListSubmissionsByUser returns the newest records first using token-based pagination.
	// It returns the records, a token for the next page, and an error.
	ListSubmissionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.SubmissionRecord, *string, error)
}
