package ledgerapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// AdBudgetGateway implements the ad budget repository against the Ledger API.
type AdBudgetGateway struct {
	client *Client
}

func (g *AdBudgetGateway) ListAdBudgets(ctx context.Context, p domain.Principal, params domain.AdBudgetListParams) (*domain.Page[domain.AdBudget], error) {
	q := listQuery(params.ListParams)
	setIfNotEmpty(q, "platform", string(params.Platform))
	setIfNotEmpty(q, "month_year", params.MonthYear)
	return fetchPage[domain.AdBudget](ctx, g.client, p, "/ad-budgets", q)
}

func (g *AdBudgetGateway) ListAdBudgetsByMonth(ctx context.Context, p domain.Principal, monthYear string) ([]domain.AdBudget, error) {
	return fetchList[domain.AdBudget](ctx, g.client, p, "/ad-budgets/month/"+url.PathEscape(monthYear), nil)
}

func (g *AdBudgetGateway) FindAdBudgetByID(ctx context.Context, p domain.Principal, id int64) (*domain.AdBudget, error) {
	return fetch[domain.AdBudget](ctx, g.client, p, http.MethodGet, idPath("ad-budgets", id), nil)
}

func (g *AdBudgetGateway) CreateAdBudget(ctx context.Context, p domain.Principal, input domain.AdBudgetInput) (*domain.AdBudget, error) {
	return fetch[domain.AdBudget](ctx, g.client, p, http.MethodPost, "/ad-budgets", input)
}

func (g *AdBudgetGateway) UpdateAdBudget(ctx context.Context, p domain.Principal, id int64, input domain.AdBudgetInput) (*domain.AdBudget, error) {
	return fetch[domain.AdBudget](ctx, g.client, p, http.MethodPut, idPath("ad-budgets", id), input)
}

func (g *AdBudgetGateway) UpdateAdBudgetSpent(ctx context.Context, p domain.Principal, id int64, spent domain.Amount) (*domain.AdBudget, error) {
	body := domain.AdBudgetSpentInput{SpentAmount: spent}
	return fetch[domain.AdBudget](ctx, g.client, p, http.MethodPatch, idPath("ad-budgets", id, "spent"), body)
}

func (g *AdBudgetGateway) DeleteAdBudget(ctx context.Context, p domain.Principal, id int64) error {
	return g.client.delete(ctx, p, idPath("ad-budgets", id))
}
