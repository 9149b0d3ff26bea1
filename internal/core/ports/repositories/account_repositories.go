package repositories

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// ListAccounts retrieves a page of accounts, optionally filtered by type.
	ListAccounts(ctx context.Context, p domain.Principal, params domain.AccountListParams) (*domain.Page[domain.Account], error)

	// ListAllAccounts retrieves every account without pagination, for pickers.
	ListAllAccounts(ctx context.Context, p domain.Principal) ([]domain.Account, error)

	// ListAccountsByType retrieves every account of one type.
	ListAccountsByType(ctx context.Context, p domain.Principal, accountType domain.AccountType) ([]domain.Account, error)

	// ListChildAccounts retrieves the direct children of a parent account.
	ListChildAccounts(ctx context.Context, p domain.Principal, parentID int64) ([]domain.Account, error)

	FindAccountByID(ctx context.Context, p domain.Principal, id int64) (*domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts.
type AccountWriter interface {
	CreateAccount(ctx context.Context, p domain.Principal, input domain.AccountInput) (*domain.Account, error)
	UpdateAccount(ctx context.Context, p domain.Principal, id int64, input domain.AccountInput) (*domain.Account, error)
	DeleteAccount(ctx context.Context, p domain.Principal, id int64) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
