package ledgerapi

import (
	"context"
	"net/url"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

const reportsPath = "/reports/dashboard/finance"

// ReportGateway implements the reporting repository against the Ledger API.
type ReportGateway struct {
	client *Client
}

func rangeQuery(filter domain.DateRange) url.Values {
	q := url.Values{}
	setIfPositive(q, "account_id", filter.AccountID)
	setIfNotEmpty(q, "start_date", filter.StartDate)
	setIfNotEmpty(q, "end_date", filter.EndDate)
	return q
}

func (g *ReportGateway) GetCurrentBalance(ctx context.Context, p domain.Principal, filter domain.DateRange) (*domain.CurrentBalance, error) {
	var out domain.CurrentBalance
	if err := g.client.get(ctx, p, reportsPath+"/current-balance", rangeQuery(filter), &out); err != nil {
		return nil, err
	}
	if out.Transactions == nil {
		out.Transactions = []domain.FinanceTransaction{}
	}
	return &out, nil
}

func (g *ReportGateway) ListFinanceTransactions(ctx context.Context, p domain.Principal, filter domain.DateRange) ([]domain.FinanceTransaction, error) {
	return fetchList[domain.FinanceTransaction](ctx, g.client, p, reportsPath+"/transactions", rangeQuery(filter))
}

func (g *ReportGateway) GetAdExpenses(ctx context.Context, p domain.Principal, filter domain.DateRange) (*domain.AdExpenses, error) {
	var out domain.AdExpenses
	if err := g.client.get(ctx, p, reportsPath+"/ad-expenses", rangeQuery(filter), &out); err != nil {
		return nil, err
	}
	if out.Transactions == nil {
		out.Transactions = []domain.AdExpenseTransaction{}
	}
	return &out, nil
}
