package services

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	ListAccounts(ctx context.Context, p domain.Principal, params domain.AccountListParams) (*domain.Page[domain.Account], error)
	ListAllAccounts(ctx context.Context, p domain.Principal) ([]domain.Account, error)

	// ListAccountsByType rejects unknown account types before calling the Ledger API.
	ListAccountsByType(ctx context.Context, p domain.Principal, accountType domain.AccountType) ([]domain.Account, error)
	ListChildAccounts(ctx context.Context, p domain.Principal, parentID int64) ([]domain.Account, error)
	GetAccount(ctx context.Context, p domain.Principal, id int64) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, p domain.Principal, input domain.AccountInput) (*domain.Account, error)
	UpdateAccount(ctx context.Context, p domain.Principal, id int64, input domain.AccountInput) (*domain.Account, error)
	DeleteAccount(ctx context.Context, p domain.Principal, id int64) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// ExpenseCategorySvcFacade defines operations on expense categories
type ExpenseCategorySvcFacade interface {
	ListExpenseCategories(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.ExpenseCategory], error)
	ListAllExpenseCategories(ctx context.Context, p domain.Principal) ([]domain.ExpenseCategory, error)
	GetExpenseCategory(ctx context.Context, p domain.Principal, id int64) (*domain.ExpenseCategory, error)
	CreateExpenseCategory(ctx context.Context, p domain.Principal, input domain.ExpenseCategoryInput) (*domain.ExpenseCategory, error)
	UpdateExpenseCategory(ctx context.Context, p domain.Principal, id int64, input domain.ExpenseCategoryInput) (*domain.ExpenseCategory, error)
	DeleteExpenseCategory(ctx context.Context, p domain.Principal, id int64) error
}
