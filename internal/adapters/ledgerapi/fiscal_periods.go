package ledgerapi

import (
	"context"
	"net/http"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// FiscalPeriodGateway implements the fiscal period repository against the Ledger API.
type FiscalPeriodGateway struct {
	client *Client
}

func (g *FiscalPeriodGateway) ListFiscalPeriods(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.FiscalPeriod], error) {
	return fetchPage[domain.FiscalPeriod](ctx, g.client, p, "/fiscal-periods", listQuery(params))
}

func (g *FiscalPeriodGateway) ListAllFiscalPeriods(ctx context.Context, p domain.Principal) ([]domain.FiscalPeriod, error) {
	return fetchList[domain.FiscalPeriod](ctx, g.client, p, "/fiscal-periods/no_page", nil)
}

func (g *FiscalPeriodGateway) FindFiscalPeriodByID(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error) {
	return fetch[domain.FiscalPeriod](ctx, g.client, p, http.MethodGet, idPath("fiscal-periods", id), nil)
}

func (g *FiscalPeriodGateway) CreateFiscalPeriod(ctx context.Context, p domain.Principal, input domain.FiscalPeriodInput) (*domain.FiscalPeriod, error) {
	return fetch[domain.FiscalPeriod](ctx, g.client, p, http.MethodPost, "/fiscal-periods", input)
}

func (g *FiscalPeriodGateway) UpdateFiscalPeriod(ctx context.Context, p domain.Principal, id int64, input domain.FiscalPeriodInput) (*domain.FiscalPeriod, error) {
	return fetch[domain.FiscalPeriod](ctx, g.client, p, http.MethodPut, idPath("fiscal-periods", id), input)
}

func (g *FiscalPeriodGateway) DeleteFiscalPeriod(ctx context.Context, p domain.Principal, id int64) error {
	return g.client.delete(ctx, p, idPath("fiscal-periods", id))
}

// CloseFiscalPeriod locks the period.
func (g *FiscalPeriodGateway) CloseFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error) {
	return fetch[domain.FiscalPeriod](ctx, g.client, p, http.MethodPost, idPath("fiscal-periods", id, "close"), nil)
}

// ReopenFiscalPeriod unlocks a closed period.
func (g *FiscalPeriodGateway) ReopenFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error) {
	return fetch[domain.FiscalPeriod](ctx, g.client, p, http.MethodPost, idPath("fiscal-periods", id, "reopen"), nil)
}
