package repositories

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// CapitalInvestorReader defines read operations for capital investors.
type CapitalInvestorReader interface {
	ListInvestors(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.CapitalInvestor], error)
	ListAllInvestors(ctx context.Context, p domain.Principal) ([]domain.CapitalInvestor, error)
	GetTotalInvestment(ctx context.Context, p domain.Principal) (*domain.TotalInvestment, error)
	FindInvestorByID(ctx context.Context, p domain.Principal, id int64) (*domain.CapitalInvestor, error)
}

// CapitalInvestorWriter defines write operations for capital investors.
type CapitalInvestorWriter interface {
	CreateInvestor(ctx context.Context, p domain.Principal, input domain.CapitalInvestorInput) (*domain.CapitalInvestor, error)
	UpdateInvestor(ctx context.Context, p domain.Principal, id int64, input domain.CapitalInvestorInput) (*domain.CapitalInvestor, error)
	UpdateInvestorReturnPaid(ctx context.Context, p domain.Principal, id int64, returnPaid domain.Amount) (*domain.CapitalInvestor, error)
	UpdateInvestorStatus(ctx context.Context, p domain.Principal, id int64, status domain.InvestorStatus) (*domain.CapitalInvestor, error)
	DeleteInvestor(ctx context.Context, p domain.Principal, id int64) error
}

// CapitalInvestorRepositoryFacade combines all investor repository interfaces
type CapitalInvestorRepositoryFacade interface {
	CapitalInvestorReader
	CapitalInvestorWriter
}
