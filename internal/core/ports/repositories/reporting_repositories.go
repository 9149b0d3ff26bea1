package repositories

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// ReportingRepository defines the read-only report queries of the Ledger API.
type ReportingRepository interface {
	GetCurrentBalance(ctx context.Context, p domain.Principal, filter domain.DateRange) (*domain.CurrentBalance, error)
	ListFinanceTransactions(ctx context.Context, p domain.Principal, filter domain.DateRange) ([]domain.FinanceTransaction, error)
	GetAdExpenses(ctx context.Context, p domain.Principal, filter domain.DateRange) (*domain.AdExpenses, error)
}
