package ledgerapi

import (
	"context"
	"net/http"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// CapitalInvestorGateway implements the capital investor repository against the Ledger API.
type CapitalInvestorGateway struct {
	client *Client
}

type returnPaidBody struct {
	ReturnPaid domain.Amount `json:"return_paid"`
}

type investorStatusBody struct {
	Status domain.InvestorStatus `json:"status"`
}

func (g *CapitalInvestorGateway) ListInvestors(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.CapitalInvestor], error) {
	return fetchPage[domain.CapitalInvestor](ctx, g.client, p, "/capital-investors", listQuery(params))
}

func (g *CapitalInvestorGateway) ListAllInvestors(ctx context.Context, p domain.Principal) ([]domain.CapitalInvestor, error) {
	return fetchList[domain.CapitalInvestor](ctx, g.client, p, "/capital-investors/no_page", nil)
}

// GetTotalInvestment accepts both the object and the bare-number form of the total.
func (g *CapitalInvestorGateway) GetTotalInvestment(ctx context.Context, p domain.Principal) (*domain.TotalInvestment, error) {
	return fetch[domain.TotalInvestment](ctx, g.client, p, http.MethodGet, "/capital-investors/total", nil)
}

func (g *CapitalInvestorGateway) FindInvestorByID(ctx context.Context, p domain.Principal, id int64) (*domain.CapitalInvestor, error) {
	return fetch[domain.CapitalInvestor](ctx, g.client, p, http.MethodGet, idPath("capital-investors", id), nil)
}

func (g *CapitalInvestorGateway) CreateInvestor(ctx context.Context, p domain.Principal, input domain.CapitalInvestorInput) (*domain.CapitalInvestor, error) {
	return fetch[domain.CapitalInvestor](ctx, g.client, p, http.MethodPost, "/capital-investors", input)
}

func (g *CapitalInvestorGateway) UpdateInvestor(ctx context.Context, p domain.Principal, id int64, input domain.CapitalInvestorInput) (*domain.CapitalInvestor, error) {
	return fetch[domain.CapitalInvestor](ctx, g.client, p, http.MethodPut, idPath("capital-investors", id), input)
}

func (g *CapitalInvestorGateway) UpdateInvestorReturnPaid(ctx context.Context, p domain.Principal, id int64, returnPaid domain.Amount) (*domain.CapitalInvestor, error) {
	return fetch[domain.CapitalInvestor](ctx, g.client, p, http.MethodPatch, idPath("capital-investors", id, "return-paid"), returnPaidBody{ReturnPaid: returnPaid})
}

func (g *CapitalInvestorGateway) UpdateInvestorStatus(ctx context.Context, p domain.Principal, id int64, status domain.InvestorStatus) (*domain.CapitalInvestor, error) {
	return fetch[domain.CapitalInvestor](ctx, g.client, p, http.MethodPatch, idPath("capital-investors", id, "status"), investorStatusBody{Status: status})
}

func (g *CapitalInvestorGateway) DeleteInvestor(ctx context.Context, p domain.Principal, id int64) error {
	return g.client.delete(ctx, p, idPath("capital-investors", id))
}
