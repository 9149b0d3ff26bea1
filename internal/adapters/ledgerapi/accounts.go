package ledgerapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// AccountGateway implements the account repository against the Ledger API.
type AccountGateway struct {
	client *Client
}

func (g *AccountGateway) ListAccounts(ctx context.Context, p domain.Principal, params domain.AccountListParams) (*domain.Page[domain.Account], error) {
	q := listQuery(params.ListParams)
	setIfNotEmpty(q, "account_type", string(params.AccountType))
	return fetchPage[domain.Account](ctx, g.client, p, "/accounts", q)
}

func (g *AccountGateway) ListAllAccounts(ctx context.Context, p domain.Principal) ([]domain.Account, error) {
	return fetchList[domain.Account](ctx, g.client, p, "/accounts/no_page", nil)
}

func (g *AccountGateway) ListAccountsByType(ctx context.Context, p domain.Principal, accountType domain.AccountType) ([]domain.Account, error) {
	return fetchList[domain.Account](ctx, g.client, p, "/accounts/type/"+url.PathEscape(string(accountType)), nil)
}

func (g *AccountGateway) ListChildAccounts(ctx context.Context, p domain.Principal, parentID int64) ([]domain.Account, error) {
	return fetchList[domain.Account](ctx, g.client, p, idPath("accounts/parent", parentID), nil)
}

func (g *AccountGateway) FindAccountByID(ctx context.Context, p domain.Principal, id int64) (*domain.Account, error) {
	return fetch[domain.Account](ctx, g.client, p, http.MethodGet, idPath("accounts", id), nil)
}

func (g *AccountGateway) CreateAccount(ctx context.Context, p domain.Principal, input domain.AccountInput) (*domain.Account, error) {
	return fetch[domain.Account](ctx, g.client, p, http.MethodPost, "/accounts", input)
}

func (g *AccountGateway) UpdateAccount(ctx context.Context, p domain.Principal, id int64, input domain.AccountInput) (*domain.Account, error) {
	return fetch[domain.Account](ctx, g.client, p, http.MethodPut, idPath("accounts", id), input)
}

func (g *AccountGateway) DeleteAccount(ctx context.Context, p domain.Principal, id int64) error {
	return g.client.delete(ctx, p, idPath("accounts", id))
}
