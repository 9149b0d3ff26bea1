package services

import (
	"context"
	"log/slog"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
)

// journalEntryService forwards journal entry workflow calls to the Ledger API after checking
// them against the entry's last known status.
type journalEntryService struct {
	BaseService
	repo portsrepo.JournalEntryRepositoryFacade
}

// NewJournalEntryService creates a new journal entry service.
func NewJournalEntryService(repo portsrepo.JournalEntryRepositoryFacade) portssvc.JournalEntrySvcFacade {
	return &journalEntryService{repo: repo}
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

func (s *journalEntryService) ListJournalEntries(ctx context.Context, p domain.Principal, params domain.JournalEntryListParams) (*domain.Page[domain.JournalEntry], error) {
	page, err := s.repo.ListJournalEntries(ctx, p, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, err
	}
	return page, nil
}

func (s *journalEntryService) GetJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return s.repo.FindJournalEntryByID(ctx, p, id)
}

func (s *journalEntryService) DeleteJournalEntry(ctx context.Context, p domain.Principal, id int64) error {
	if _, err := s.authorize(ctx, p, id, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.repo.DeleteJournalEntry(ctx, p, id); err != nil {
		s.LogError(ctx, err, "Failed to delete journal entry", slog.Int64("entry_id", id))
		return err
	}
	s.LogInfo(ctx, "Journal entry deleted", slog.Int64("entry_id", id))
	return nil
}

func (s *journalEntryService) ApproveJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return s.transition(ctx, p, id, domain.ActionApprove, s.repo.ApproveJournalEntry)
}

func (s *journalEntryService) RejectJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return s.transition(ctx, p, id, domain.ActionReject, s.repo.RejectJournalEntry)
}

func (s *journalEntryService) PostJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return s.transition(ctx, p, id, domain.ActionPost, s.repo.PostJournalEntry)
}

type journalEntryCall func(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error)

func (s *journalEntryService) transition(ctx context.Context, p domain.Principal, id int64, action domain.Action, call journalEntryCall) (*domain.JournalEntry, error) {
	if _, err := s.authorize(ctx, p, id, action); err != nil {
		return nil, err
	}
	entry, err := call(ctx, p, id)
	if err != nil {
		s.LogError(ctx, err, "Journal entry transition failed",
			slog.Int64("entry_id", id),
			slog.String("action", string(action)))
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry transitioned",
		slog.Int64("entry_id", id),
		slog.String("action", string(action)),
		slog.String("status", string(entry.Status)))
	return entry, nil
}

func (s *journalEntryService) authorize(ctx context.Context, p domain.Principal, id int64, action domain.Action) (*domain.JournalEntry, error) {
	entry, err := s.repo.FindJournalEntryByID(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if _, err := domain.JournalEntryTransitions.Authorize(p, entry.Status, action, false); err != nil {
		s.LogDebug(ctx, "Journal entry action refused",
			slog.Int64("entry_id", id),
			slog.String("status", string(entry.Status)),
			slog.String("action", string(action)))
		return nil, err
	}
	return entry, nil
}
