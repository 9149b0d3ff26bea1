package repositories

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// FiscalPeriodReader defines read operations for fiscal periods.
type FiscalPeriodReader interface {
	ListFiscalPeriods(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.FiscalPeriod], error)
	ListAllFiscalPeriods(ctx context.Context, p domain.Principal) ([]domain.FiscalPeriod, error)
	FindFiscalPeriodByID(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error)
}

// FiscalPeriodWriter defines write and lifecycle operations for fiscal periods.
type FiscalPeriodWriter interface {
	CreateFiscalPeriod(ctx context.Context, p domain.Principal, input domain.FiscalPeriodInput) (*domain.FiscalPeriod, error)
	UpdateFiscalPeriod(ctx context.Context, p domain.Principal, id int64, input domain.FiscalPeriodInput) (*domain.FiscalPeriod, error)
	DeleteFiscalPeriod(ctx context.Context, p domain.Principal, id int64) error

	// CloseFiscalPeriod locks the period against further postings.
	CloseFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error)

	// ReopenFiscalPeriod unlocks a closed period.
	ReopenFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error)
}

// FiscalPeriodRepositoryFacade combines all fiscal-period repository interfaces
type FiscalPeriodRepositoryFacade interface {
	FiscalPeriodReader
	FiscalPeriodWriter
}
