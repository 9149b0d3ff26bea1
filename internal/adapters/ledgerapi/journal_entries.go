package ledgerapi

import (
	"context"
	"net/http"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// JournalEntryGateway implements the journal entry repository against the Ledger API.
type JournalEntryGateway struct {
	client *Client
}

func (g *JournalEntryGateway) ListJournalEntries(ctx context.Context, p domain.Principal, params domain.JournalEntryListParams) (*domain.Page[domain.JournalEntry], error) {
	q := listQuery(params.ListParams)
	setIfNotEmpty(q, "status", string(params.Status))
	setIfPositive(q, "fiscal_period_id", params.FiscalPeriodID)
	return fetchPage[domain.JournalEntry](ctx, g.client, p, "/journal-entries", q)
}

func (g *JournalEntryGateway) FindJournalEntryByID(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return fetch[domain.JournalEntry](ctx, g.client, p, http.MethodGet, idPath("journal-entries", id), nil)
}

func (g *JournalEntryGateway) CreateJournalEntry(ctx context.Context, p domain.Principal, payload domain.JournalEntryPayload) (*domain.JournalEntry, error) {
	return fetch[domain.JournalEntry](ctx, g.client, p, http.MethodPost, "/journal-entries", payload)
}

func (g *JournalEntryGateway) UpdateJournalEntry(ctx context.Context, p domain.Principal, id int64, payload domain.JournalEntryPayload) (*domain.JournalEntry, error) {
	return fetch[domain.JournalEntry](ctx, g.client, p, http.MethodPut, idPath("journal-entries", id), payload)
}

func (g *JournalEntryGateway) DeleteJournalEntry(ctx context.Context, p domain.Principal, id int64) error {
	return g.client.delete(ctx, p, idPath("journal-entries", id))
}

func (g *JournalEntryGateway) ApproveJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return fetch[domain.JournalEntry](ctx, g.client, p, http.MethodPost, idPath("journal-entries", id, "approve"), nil)
}

func (g *JournalEntryGateway) RejectJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return fetch[domain.JournalEntry](ctx, g.client, p, http.MethodPost, idPath("journal-entries", id, "reject"), nil)
}

func (g *JournalEntryGateway) PostJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return fetch[domain.JournalEntry](ctx, g.client, p, http.MethodPost, idPath("journal-entries", id, "post"), nil)
}
