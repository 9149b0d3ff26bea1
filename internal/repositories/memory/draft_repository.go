package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type draftEntry struct {
	mu      sync.Mutex
	session domain.JournalDraftSession
	deleted bool
}

// DraftRepository keeps composer sessions in a bounded LRU. Sessions expire after the TTL
// and the least recently written session is evicted when the store is full.
type DraftRepository struct {
	cache *expirable.LRU[string, *draftEntry]
	now   func() time.Time
}

// NewDraftRepository creates a draft store holding at most capacity sessions for ttl each.
func NewDraftRepository(capacity int, ttl time.Duration) portsrepo.DraftRepository {
	return newDraftRepository(capacity, ttl, time.Now)
}

func newDraftRepository(capacity int, ttl time.Duration, now func() time.Time) *DraftRepository {
	return &DraftRepository{
		cache: expirable.NewLRU[string, *draftEntry](capacity, nil, ttl),
		now:   now,
	}
}

// SaveDraft stores a new session or replaces an existing one.
func (r *DraftRepository) SaveDraft(_ context.Context, session domain.JournalDraftSession) error {
	if session.ID == "" {
		return fmt.Errorf("%w: draft id cannot be empty", apperrors.ErrValidation)
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = r.now()
	}
	session.UpdatedAt = r.now()

	r.cache.Add(session.ID, &draftEntry{session: session.Clone()})
	return nil
}

// FindDraftByID returns a snapshot of the stored session.
func (r *DraftRepository) FindDraftByID(_ context.Context, id string) (*domain.JournalDraftSession, error) {
	entry, ok := r.cache.Get(id)
	if !ok {
		return nil, draftNotFound(id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.deleted {
		return nil, draftNotFound(id)
	}
	snapshot := entry.session.Clone()
	return &snapshot, nil
}

// UpdateDraft serializes writers of one session. fn works on a copy that only replaces the
// stored session when fn succeeds. Each successful update restarts the session's TTL.
func (r *DraftRepository) UpdateDraft(_ context.Context, id string, fn func(s *domain.JournalDraftSession) error) (*domain.JournalDraftSession, error) {
	return r.apply(id, fn, false)
}

// ConsumeDraft runs fn under the session's lock and removes the session in the same critical
// section when fn succeeds. Writers waiting on the lock then find the session gone.
func (r *DraftRepository) ConsumeDraft(_ context.Context, id string, fn func(s *domain.JournalDraftSession) error) (*domain.JournalDraftSession, error) {
	return r.apply(id, fn, true)
}

func (r *DraftRepository) apply(id string, fn func(s *domain.JournalDraftSession) error, consume bool) (*domain.JournalDraftSession, error) {
	entry, ok := r.cache.Get(id)
	if !ok {
		return nil, draftNotFound(id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.deleted {
		return nil, draftNotFound(id)
	}

	working := entry.session.Clone()
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.ID = entry.session.ID
	working.UpdatedAt = r.now()
	entry.session = working
	if consume {
		entry.deleted = true
		r.cache.Remove(id)
	} else {
		r.cache.Add(id, entry)
	}

	snapshot := working.Clone()
	return &snapshot, nil
}

// DeleteDraft removes the session. Deleting an unknown session reports ErrNotFound.
func (r *DraftRepository) DeleteDraft(_ context.Context, id string) error {
	entry, ok := r.cache.Peek(id)
	if !ok {
		return draftNotFound(id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.deleted {
		return draftNotFound(id)
	}
	entry.deleted = true
	r.cache.Remove(id)
	return nil
}

// Len reports the number of live sessions.
func (r *DraftRepository) Len() int {
	return r.cache.Len()
}

func draftNotFound(id string) error {
	return fmt.Errorf("%w: journal draft %s", apperrors.ErrNotFound, id)
}
