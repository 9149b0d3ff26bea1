package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(id string) domain.JournalDraftSession {
	return domain.JournalDraftSession{ID: id, OwnerID: "7", Draft: domain.NewJournalEntryDraft()}
}

func TestDraftRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := newDraftRepository(10, time.Hour, func() time.Time { return fixed })

	require.NoError(t, repo.SaveDraft(ctx, newSession("a")))

	got, err := repo.FindDraftByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "7", got.OwnerID)
	assert.Equal(t, fixed, got.CreatedAt)
	assert.Len(t, got.Draft.Lines, 2)

	// Snapshots are detached from the stored session.
	got.Draft.Lines[0].Debit = 999
	again, err := repo.FindDraftByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(0), again.Draft.Lines[0].Debit)

	_, err = repo.FindDraftByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repo.SaveDraft(ctx, domain.JournalDraftSession{}), apperrors.ErrValidation)
}

func TestDraftRepository_UpdateDraft(t *testing.T) {
	ctx := context.Background()
	repo := newDraftRepository(10, time.Hour, time.Now)
	require.NoError(t, repo.SaveDraft(ctx, newSession("a")))

	updated, err := repo.UpdateDraft(ctx, "a", func(s *domain.JournalDraftSession) error {
		s.Draft.AddLine()
		return s.Draft.SetLineDebit(0, "1.000")
	})
	require.NoError(t, err)
	assert.Len(t, updated.Draft.Lines, 3)

	_, err = repo.UpdateDraft(ctx, "a", func(s *domain.JournalDraftSession) error {
		s.Draft.AddLine()
		return errors.New("boom")
	})
	require.Error(t, err)

	stored, err := repo.FindDraftByID(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, stored.Draft.Lines, 3, "failed update must not leak")
	assert.Equal(t, domain.Amount(1000), stored.Draft.Lines[0].Debit)
}

func TestDraftRepository_ConcurrentUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	repo := newDraftRepository(10, time.Hour, time.Now)
	require.NoError(t, repo.SaveDraft(ctx, newSession("a")))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateDraft(ctx, "a", func(s *domain.JournalDraftSession) error {
				s.Draft.AddLine()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := repo.FindDraftByID(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, stored.Draft.Lines, 52)
}

func TestDraftRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newDraftRepository(10, time.Hour, time.Now)
	require.NoError(t, repo.SaveDraft(ctx, newSession("a")))

	require.NoError(t, repo.DeleteDraft(ctx, "a"))
	assert.ErrorIs(t, repo.DeleteDraft(ctx, "a"), apperrors.ErrNotFound)

	_, err := repo.UpdateDraft(ctx, "a", func(*domain.JournalDraftSession) error { return nil })
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDraftRepository_ConsumeDraft(t *testing.T) {
	ctx := context.Background()
	repo := newDraftRepository(10, time.Hour, time.Now)
	require.NoError(t, repo.SaveDraft(ctx, newSession("a")))

	refused := errors.New("remote refused")
	_, err := repo.ConsumeDraft(ctx, "a", func(*domain.JournalDraftSession) error { return refused })
	assert.ErrorIs(t, err, refused)
	_, err = repo.FindDraftByID(ctx, "a")
	require.NoError(t, err, "a failing consumer keeps the session")

	consumed, err := repo.ConsumeDraft(ctx, "a", func(s *domain.JournalDraftSession) error {
		s.Draft.Description = "sent"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "sent", consumed.Draft.Description)
	assert.Equal(t, 0, repo.Len())

	_, err = repo.FindDraftByID(ctx, "a")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.UpdateDraft(ctx, "a", func(*domain.JournalDraftSession) error { return nil })
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDraftRepository_CapacityAndTTL(t *testing.T) {
	ctx := context.Background()

	t.Run("evicts least recently written", func(t *testing.T) {
		repo := newDraftRepository(2, time.Hour, time.Now)
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.SaveDraft(ctx, newSession(fmt.Sprintf("d%d", i))))
		}
		assert.Equal(t, 2, repo.Len())
		_, err := repo.FindDraftByID(ctx, "d0")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		repo := newDraftRepository(2, 20*time.Millisecond, time.Now)
		require.NoError(t, repo.SaveDraft(ctx, newSession("short")))

		require.Eventually(t, func() bool {
			_, err := repo.FindDraftByID(ctx, "short")
			return errors.Is(err, apperrors.ErrNotFound)
		}, time.Second, 10*time.Millisecond)
	})
}
