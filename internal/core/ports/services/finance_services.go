package services

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// FiscalPeriodSvcFacade defines operations on fiscal periods
type FiscalPeriodSvcFacade interface {
	ListFiscalPeriods(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.FiscalPeriod], error)
	ListAllFiscalPeriods(ctx context.Context, p domain.Principal) ([]domain.FiscalPeriod, error)
	GetFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error)
	CreateFiscalPeriod(ctx context.Context, p domain.Principal, input domain.FiscalPeriodInput) (*domain.FiscalPeriod, error)

	// UpdateFiscalPeriod and DeleteFiscalPeriod are refused once the period is closed.
	UpdateFiscalPeriod(ctx context.Context, p domain.Principal, id int64, input domain.FiscalPeriodInput) (*domain.FiscalPeriod, error)
	DeleteFiscalPeriod(ctx context.Context, p domain.Principal, id int64) error

	// CloseFiscalPeriod requires admin, ReopenFiscalPeriod requires superadmin.
	CloseFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error)
	ReopenFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error)
}

// OperationalExpenseReaderSvc defines read operations for operational expenses
type OperationalExpenseReaderSvc interface {
	ListExpenses(ctx context.Context, p domain.Principal, params domain.ExpenseListParams) (*domain.Page[domain.OperationalExpense], error)
	GetExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error)
}

// OperationalExpenseWriterSvc defines write and approval operations for operational expenses
type OperationalExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, p domain.Principal, input domain.OperationalExpenseInput) (*domain.OperationalExpense, error)

	// UpdateExpense and DeleteExpense are limited to pending expenses of the caller, or any
	// pending expense for admins.
	UpdateExpense(ctx context.Context, p domain.Principal, id int64, input domain.OperationalExpenseInput) (*domain.OperationalExpense, error)
	DeleteExpense(ctx context.Context, p domain.Principal, id int64) error
	ApproveExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error)
	RejectExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error)
	PayExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error)
}

// OperationalExpenseSvcFacade combines all expense service interfaces
type OperationalExpenseSvcFacade interface {
	OperationalExpenseReaderSvc
	OperationalExpenseWriterSvc
}

// AdBudgetSvcFacade defines operations on ad budgets. Writes require admin.
type AdBudgetSvcFacade interface {
	ListAdBudgets(ctx context.Context, p domain.Principal, params domain.AdBudgetListParams) (*domain.Page[domain.AdBudget], error)
	ListAdBudgetsByMonth(ctx context.Context, p domain.Principal, monthYear string) ([]domain.AdBudget, error)
	GetAdBudget(ctx context.Context, p domain.Principal, id int64) (*domain.AdBudget, error)
	CreateAdBudget(ctx context.Context, p domain.Principal, input domain.AdBudgetInput) (*domain.AdBudget, error)
	UpdateAdBudget(ctx context.Context, p domain.Principal, id int64, input domain.AdBudgetInput) (*domain.AdBudget, error)
	UpdateAdBudgetSpent(ctx context.Context, p domain.Principal, id int64, spent domain.Amount) (*domain.AdBudget, error)
	DeleteAdBudget(ctx context.Context, p domain.Principal, id int64) error
}

// CapitalInvestorSvcFacade defines operations on capital investors
type CapitalInvestorSvcFacade interface {
	ListInvestors(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.CapitalInvestor], error)
	ListAllInvestors(ctx context.Context, p domain.Principal) ([]domain.CapitalInvestor, error)
	GetTotalInvestment(ctx context.Context, p domain.Principal) (*domain.TotalInvestment, error)
	GetInvestor(ctx context.Context, p domain.Principal, id int64) (*domain.CapitalInvestor, error)
	CreateInvestor(ctx context.Context, p domain.Principal, input domain.CapitalInvestorInput) (*domain.CapitalInvestor, error)
	UpdateInvestor(ctx context.Context, p domain.Principal, id int64, input domain.CapitalInvestorInput) (*domain.CapitalInvestor, error)
	UpdateInvestorReturnPaid(ctx context.Context, p domain.Principal, id int64, returnPaid domain.Amount) (*domain.CapitalInvestor, error)

	// UpdateInvestorStatus and DeleteInvestor require admin.
	UpdateInvestorStatus(ctx context.Context, p domain.Principal, id int64, status domain.InvestorStatus) (*domain.CapitalInvestor, error)
	DeleteInvestor(ctx context.Context, p domain.Principal, id int64) error
}

// ReportingService defines the dashboard report queries
type ReportingService interface {
	GetCurrentBalance(ctx context.Context, p domain.Principal, filter domain.DateRange) (*domain.CurrentBalance, error)
	ListFinanceTransactions(ctx context.Context, p domain.Principal, filter domain.DateRange) ([]domain.FinanceTransaction, error)
	GetAdExpenses(ctx context.Context, p domain.Principal, filter domain.DateRange) (*domain.AdExpenses, error)
}
