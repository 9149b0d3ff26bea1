package handlers_test

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalComposerService ---
type MockJournalComposerService struct {
	mock.Mock
}

var _ portssvc.JournalComposerSvcFacade = (*MockJournalComposerService)(nil)

func (m *MockJournalComposerService) GetDraft(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalDraftSession, error) {
	return m.sessionResult(m.Called(ctx, p, draftID))
}

func (m *MockJournalComposerService) ValidateDraft(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalDraftSession, *domain.ValidationError, error) {
	args := m.Called(ctx, p, draftID)
	var session *domain.JournalDraftSession
	if v := args.Get(0); v != nil {
		session = v.(*domain.JournalDraftSession)
	}
	var vErr *domain.ValidationError
	if v := args.Get(1); v != nil {
		vErr = v.(*domain.ValidationError)
	}
	return session, vErr, args.Error(2)
}

func (m *MockJournalComposerService) ListSubmissions(ctx context.Context, p domain.Principal, limit int, nextToken *string) ([]domain.SubmissionRecord, *string, error) {
	args := m.Called(ctx, p, limit, nextToken)
	var records []domain.SubmissionRecord
	if v := args.Get(0); v != nil {
		records = v.([]domain.SubmissionRecord)
	}
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	return records, next, args.Error(2)
}

func (m *MockJournalComposerService) CreateDraft(ctx context.Context, p domain.Principal, entryID *int64) (*domain.JournalDraftSession, error) {
	return m.sessionResult(m.Called(ctx, p, entryID))
}

func (m *MockJournalComposerService) AddLine(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalDraftSession, error) {
	return m.sessionResult(m.Called(ctx, p, draftID))
}

func (m *MockJournalComposerService) RemoveLine(ctx context.Context, p domain.Principal, draftID string, index int) (*domain.JournalDraftSession, error) {
	return m.sessionResult(m.Called(ctx, p, draftID, index))
}

func (m *MockJournalComposerService) UpdateLine(ctx context.Context, p domain.Principal, draftID string, index int, req dto.UpdateDraftLineRequest) (*domain.JournalDraftSession, error) {
	return m.sessionResult(m.Called(ctx, p, draftID, index, req))
}

func (m *MockJournalComposerService) UpdateHeader(ctx context.Context, p domain.Principal, draftID string, header domain.DraftHeader) (*domain.JournalDraftSession, error) {
	return m.sessionResult(m.Called(ctx, p, draftID, header))
}

func (m *MockJournalComposerService) SubmitDraft(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, p, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalComposerService) DiscardDraft(ctx context.Context, p domain.Principal, draftID string) error {
	args := m.Called(ctx, p, draftID)
	return args.Error(0)
}

func (m *MockJournalComposerService) sessionResult(args mock.Arguments) (*domain.JournalDraftSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalDraftSession), args.Error(1)
}

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	mock.Mock
}

var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

func (m *MockJournalEntryService) ListJournalEntries(ctx context.Context, p domain.Principal, params domain.JournalEntryListParams) (*domain.Page[domain.JournalEntry], error) {
	args := m.Called(ctx, p, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.JournalEntry]), args.Error(1)
}

func (m *MockJournalEntryService) GetJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, p, id))
}

func (m *MockJournalEntryService) DeleteJournalEntry(ctx context.Context, p domain.Principal, id int64) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *MockJournalEntryService) ApproveJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, p, id))
}

func (m *MockJournalEntryService) RejectJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, p, id))
}

func (m *MockJournalEntryService) PostJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, p, id))
}

func (m *MockJournalEntryService) entryResult(args mock.Arguments) (*domain.JournalEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
