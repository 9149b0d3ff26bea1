package repositories

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// AdBudgetReader defines read operations for ad budgets.
type AdBudgetReader interface {
	ListAdBudgets(ctx context.Context, p domain.Principal, params domain.AdBudgetListParams) (*domain.Page[domain.AdBudget], error)

	// ListAdBudgetsByMonth retrieves every platform's budget for one YYYY-MM month.
	ListAdBudgetsByMonth(ctx context.Context, p domain.Principal, monthYear string) ([]domain.AdBudget, error)

	FindAdBudgetByID(ctx context.Context, p domain.Principal, id int64) (*domain.AdBudget, error)
}

// AdBudgetWriter defines write operations for ad budgets.
type AdBudgetWriter interface {
	CreateAdBudget(ctx context.Context, p domain.Principal, input domain.AdBudgetInput) (*domain.AdBudget, error)
	UpdateAdBudget(ctx context.Context, p domain.Principal, id int64, input domain.AdBudgetInput) (*domain.AdBudget, error)
	UpdateAdBudgetSpent(ctx context.Context, p domain.Principal, id int64, spent domain.Amount) (*domain.AdBudget, error)
	DeleteAdBudget(ctx context.Context, p domain.Principal, id int64) error
}

// AdBudgetRepositoryFacade combines all ad budget repository interfaces
type AdBudgetRepositoryFacade interface {
	AdBudgetReader
	AdBudgetWriter
}
