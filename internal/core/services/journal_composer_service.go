package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/google/uuid"
)

// journalComposerService holds journal entry drafts between requests and submits them to the
// Ledger API once they validate.
type journalComposerService struct {
	BaseService
	drafts      portsrepo.DraftRepository
	submissions portsrepo.SubmissionAuditRepository
	entries     portsrepo.JournalEntryRepositoryFacade
	now         func() time.Time
}

// ComposerOption configures the composer service
type ComposerOption func(*journalComposerService)

// WithComposerClock replaces the clock used for submission records.
func WithComposerClock(now func() time.Time) ComposerOption {
	return func(s *journalComposerService) {
		s.now = now
	}
}

// NewJournalComposerService creates the composer. submissions may be nil, in which case
// submission attempts are only logged.
func NewJournalComposerService(
	drafts portsrepo.DraftRepository,
	submissions portsrepo.SubmissionAuditRepository,
	entries portsrepo.JournalEntryRepositoryFacade,
	opts ...ComposerOption,
) portssvc.JournalComposerSvcFacade {
	svc := &journalComposerService{
		drafts:      drafts,
		submissions: submissions,
		entries:     entries,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.JournalComposerSvcFacade = (*journalComposerService)(nil)

func (s *journalComposerService) CreateDraft(ctx context.Context, p domain.Principal, entryID *int64) (*domain.JournalDraftSession, error) {
	session := domain.JournalDraftSession{
		ID:      uuid.NewString(),
		OwnerID: p.UserID,
		Draft:   domain.NewJournalEntryDraft(),
	}

	if entryID != nil {
		entry, err := s.entries.FindJournalEntryByID(ctx, p, *entryID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load journal entry for editing", slog.Int64("entry_id", *entryID))
			return nil, err
		}
		if _, err := domain.JournalEntryTransitions.Authorize(p, entry.Status, domain.ActionEdit, false); err != nil {
			s.LogDebug(ctx, "Refused to edit journal entry",
				slog.Int64("entry_id", entry.ID),
				slog.String("status", string(entry.Status)))
			return nil, err
		}
		id := entry.ID
		session.EntryID = &id
		session.Draft = domain.DraftFromEntry(*entry)
	}

	if err := s.drafts.SaveDraft(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save journal draft")
		return nil, err
	}

	s.LogInfo(ctx, "Journal draft created", slog.String("draft_id", session.ID))
	return s.drafts.FindDraftByID(ctx, session.ID)
}

func (s *journalComposerService) GetDraft(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalDraftSession, error) {
	session, err := s.drafts.FindDraftByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !session.IsOwnedBy(p.UserID) {
		return nil, draftNotFound(draftID)
	}
	return session, nil
}

func (s *journalComposerService) ValidateDraft(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalDraftSession, *domain.ValidationError, error) {
	session, err := s.GetDraft(ctx, p, draftID)
	if err != nil {
		return nil, nil, err
	}
	return session, dto.AsValidationError(session.Draft.Validate()), nil
}

func (s *journalComposerService) AddLine(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalDraftSession, error) {
	return s.edit(ctx, p, draftID, func(d *domain.JournalEntryDraft) error {
		d.AddLine()
		return nil
	})
}

func (s *journalComposerService) RemoveLine(ctx context.Context, p domain.Principal, draftID string, index int) (*domain.JournalDraftSession, error) {
	return s.edit(ctx, p, draftID, func(d *domain.JournalEntryDraft) error {
		return d.RemoveLine(index)
	})
}

func (s *journalComposerService) UpdateLine(ctx context.Context, p domain.Principal, draftID string, index int, req dto.UpdateDraftLineRequest) (*domain.JournalDraftSession, error) {
	return s.edit(ctx, p, draftID, func(d *domain.JournalEntryDraft) error {
		if req.AccountID != nil {
			if err := d.SetLineAccount(index, *req.AccountID); err != nil {
				return err
			}
		}
		if req.Description != nil {
			if err := d.SetLineDescription(index, *req.Description); err != nil {
				return err
			}
		}
		if req.Debit != nil {
			if err := d.SetLineDebit(index, string(*req.Debit)); err != nil {
				return err
			}
		}
		if req.Credit != nil {
			if err := d.SetLineCredit(index, string(*req.Credit)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *journalComposerService) UpdateHeader(ctx context.Context, p domain.Principal, draftID string, header domain.DraftHeader) (*domain.JournalDraftSession, error) {
	return s.edit(ctx, p, draftID, func(d *domain.JournalEntryDraft) error {
		d.SetHeader(header)
		return nil
	})
}

// SubmitDraft holds the draft's lock for the whole remote call and deletes the draft before
// releasing it on success, so a racing second submit of the same draft finds it gone.
func (s *journalComposerService) SubmitDraft(ctx context.Context, p domain.Principal, draftID string) (*domain.JournalEntry, error) {
	var (
		result  *domain.JournalEntry
		record  domain.SubmissionRecord
		attempt bool
	)

	_, err := s.drafts.ConsumeDraft(ctx, draftID, func(session *domain.JournalDraftSession) error {
		if !session.IsOwnedBy(p.UserID) {
			return draftNotFound(draftID)
		}
		if err := session.Draft.Validate(); err != nil {
			return err
		}

		payload := session.Draft.ToSubmissionPayload()
		totals := session.Draft.ComputeTotals()
		record = domain.SubmissionRecord{
			ID:          uuid.NewString(),
			DraftID:     session.ID,
			UserID:      p.UserID,
			Operation:   domain.SubmissionCreate,
			TotalDebit:  totals.TotalDebit,
			TotalCredit: totals.TotalCredit,
			LineCount:   len(payload.Lines),
			CreatedAt:   s.now().UTC(),
		}
		attempt = true

		var (
			entry     *domain.JournalEntry
			remoteErr error
		)
		if session.EntryID != nil {
			record.Operation = domain.SubmissionUpdate
			record.EntryID = session.EntryID
			entry, remoteErr = s.entries.UpdateJournalEntry(ctx, p, *session.EntryID, payload)
		} else {
			entry, remoteErr = s.entries.CreateJournalEntry(ctx, p, payload)
		}
		if remoteErr != nil {
			record.ErrorMessage = remoteErr.Error()
			return remoteErr
		}

		record.Succeeded = true
		if entry != nil {
			id := entry.ID
			record.EntryID = &id
			record.EntryNumber = entry.EntryNumber
		}
		result = entry
		return nil
	})

	if attempt {
		s.recordSubmission(ctx, record)
	}
	if err != nil {
		if attempt {
			s.LogError(ctx, err, "Journal draft submission failed", slog.String("draft_id", draftID))
		} else {
			s.LogDebug(ctx, "Journal draft not submitted", slog.String("draft_id", draftID), slog.String("reason", err.Error()))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal draft submitted",
		slog.String("draft_id", draftID),
		slog.String("operation", string(record.Operation)),
		slog.String("entry_number", record.EntryNumber))
	return result, nil
}

func (s *journalComposerService) DiscardDraft(ctx context.Context, p domain.Principal, draftID string) error {
	if _, err := s.GetDraft(ctx, p, draftID); err != nil {
		return err
	}
	if err := s.drafts.DeleteDraft(ctx, draftID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Journal draft discarded", slog.String("draft_id", draftID))
	return nil
}

func (s *journalComposerService) ListSubmissions(ctx context.Context, p domain.Principal, limit int, nextToken *string) ([]domain.SubmissionRecord, *string, error) {
	if s.submissions == nil {
		return []domain.SubmissionRecord{}, nil, nil
	}
	records, token, err := s.submissions.ListSubmissionsByUser(ctx, p.UserID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal submissions")
		return nil, nil, err
	}
	return records, token, nil
}

// edit applies fn to the caller's draft under the draft's lock.
func (s *journalComposerService) edit(ctx context.Context, p domain.Principal, draftID string, fn func(d *domain.JournalEntryDraft) error) (*domain.JournalDraftSession, error) {
	return s.drafts.UpdateDraft(ctx, draftID, func(session *domain.JournalDraftSession) error {
		if !session.IsOwnedBy(p.UserID) {
			return draftNotFound(draftID)
		}
		return fn(&session.Draft)
	})
}

// recordSubmission logs audit failures instead of returning them.
func (s *journalComposerService) recordSubmission(ctx context.Context, record domain.SubmissionRecord) {
	if s.submissions == nil {
		s.LogInfo(ctx, "Journal submission attempt",
			slog.String("draft_id", record.DraftID),
			slog.Bool("succeeded", record.Succeeded))
		return
	}
	if err := s.submissions.SaveSubmission(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to record journal submission", slog.String("submission_id", record.ID))
	}
}

func draftNotFound(id string) error {
	return fmt.Errorf("%w: journal draft %s", apperrors.ErrNotFound, id)
}
