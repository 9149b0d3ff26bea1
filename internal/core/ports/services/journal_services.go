package services

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/dto"
)

// JournalDraftReaderSvc defines read operations on composer drafts
type JournalDraftReaderSvc interface {
	// GetDraft returns the caller's draft. Drafts of other users are reported as not found.
	GetDraft(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalDraftSession, error)

	// ValidateDraft returns the draft and its first validation failure, which is nil when the
	// draft can be submitted.
	ValidateDraft(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalDraftSession, *domain.ValidationError, error)

	// ListSubmissions returns the caller's most recent submission attempts.
	ListSubmissions(ctx context.Context, p domain.Principal, limit int, nextToken *string) ([]domain.SubmissionRecord, *string, error)
}

// JournalDraftWriterSvc defines the editing operations of the journal entry composer
type JournalDraftWriterSvc interface {
	// CreateDraft starts a blank draft, or one seeded from an existing draft-status entry
	// when entryID is set.
	CreateDraft(ctx context.Context, p domain.Principal, entryID *int64) (*domain.JournalDraftSession, error)

	AddLine(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalDraftSession, error)

	// RemoveLine refuses to leave fewer than two lines.
	RemoveLine(ctx context.Context, p domain.Principal, draftID string, index int) (*domain.JournalDraftSession, error)

	// UpdateLine applies account, description, debit and credit in that order. Nil fields are
	// left alone.
	UpdateLine(ctx context.Context, p domain.Principal, draftID string, index int, req dto.UpdateDraftLineRequest) (*domain.JournalDraftSession, error)

	UpdateHeader(ctx context.Context, p domain.Principal, draftID string, header domain.DraftHeader) (*domain.JournalDraftSession, error)

	// SubmitDraft validates the draft and creates or updates the entry on the Ledger API.
	// The draft is discarded only when the Ledger API accepts it.
	SubmitDraft(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalEntry, error)

	DiscardDraft(ctx context.Context, p domain.Principal, draftID string) error
}

// JournalComposerSvcFacade combines all composer service interfaces
type JournalComposerSvcFacade interface {
	JournalDraftReaderSvc
	JournalDraftWriterSvc
}

// JournalEntryReaderSvc defines read operations for stored journal entries
type JournalEntryReaderSvc interface {
	ListJournalEntries(ctx context.Context, p domain.Principal, params domain.JournalEntryListParams) (*domain.Page[domain.JournalEntry], error)
	GetJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error)
}

// JournalEntryWorkflowSvc defines the state changes of stored journal entries. Each call is
// checked against the entry's current status and the caller's role before it is forwarded.
type JournalEntryWorkflowSvc interface {
	DeleteJournalEntry(ctx context.Context, p domain.Principal, id int64) error
	ApproveJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error)
	RejectJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error)
	PostJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error)
}

// JournalEntrySvcFacade combines all journal entry service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	JournalEntryWorkflowSvc
}
