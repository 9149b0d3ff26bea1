package services_test

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalEntryRepository ---
type MockJournalEntryRepository struct {
	mock.Mock
}

var _ portsrepo.JournalEntryRepositoryFacade = (*MockJournalEntryRepository)(nil)

func (m *MockJournalEntryRepository) ListJournalEntries(ctx context.Context, p domain.Principal, params domain.JournalEntryListParams) (*domain.Page[domain.JournalEntry], error) {
	args := m.Called(ctx, p, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.JournalEntry]), args.Error(1)
}

func (m *MockJournalEntryRepository) FindJournalEntryByID(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, p, id))
}

func (m *MockJournalEntryRepository) CreateJournalEntry(ctx context.Context, p domain.Principal, payload domain.JournalEntryPayload) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, p, payload))
}

func (m *MockJournalEntryRepository) UpdateJournalEntry(ctx context.Context, p domain.Principal, id int64, payload domain.JournalEntryPayload) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, p, id, payload))
}

func (m *MockJournalEntryRepository) DeleteJournalEntry(ctx context.Context, p domain.Principal, id int64) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *MockJournalEntryRepository) ApproveJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, p, id))
}

func (m *MockJournalEntryRepository) RejectJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, p, id))
}

func (m *MockJournalEntryRepository) PostJournalEntry(ctx context.Context, p domain.Principal, id int64) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, p, id))
}

func (m *MockJournalEntryRepository) entryResult(args mock.Arguments) (*domain.JournalEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock OperationalExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.OperationalExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, p domain.Principal, params domain.ExpenseListParams) (*domain.Page[domain.OperationalExpense], error) {
	args := m.Called(ctx, p, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.OperationalExpense]), args.Error(1)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return m.expenseResult(m.Called(ctx, p, id))
}

func (m *MockExpenseRepository) CreateExpense(ctx context.Context, p domain.Principal, input domain.OperationalExpenseInput) (*domain.OperationalExpense, error) {
	return m.expenseResult(m.Called(ctx, p, input))
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, p domain.Principal, id int64, input domain.OperationalExpenseInput) (*domain.OperationalExpense, error) {
	return m.expenseResult(m.Called(ctx, p, id, input))
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, p domain.Principal, id int64) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) ApproveExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return m.expenseResult(m.Called(ctx, p, id))
}

func (m *MockExpenseRepository) RejectExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return m.expenseResult(m.Called(ctx, p, id))
}

func (m *MockExpenseRepository) PayExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return m.expenseResult(m.Called(ctx, p, id))
}

func (m *MockExpenseRepository) expenseResult(args mock.Arguments) (*domain.OperationalExpense, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationalExpense), args.Error(1)
}

// --- Mock FiscalPeriodRepository ---
type MockFiscalPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.FiscalPeriodRepositoryFacade = (*MockFiscalPeriodRepository)(nil)

func (m *MockFiscalPeriodRepository) ListFiscalPeriods(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.FiscalPeriod], error) {
	args := m.Called(ctx, p, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.FiscalPeriod]), args.Error(1)
}

func (m *MockFiscalPeriodRepository) ListAllFiscalPeriods(ctx context.Context, p domain.Principal) ([]domain.FiscalPeriod, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodRepository) FindFiscalPeriodByID(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error) {
	return m.periodResult(m.Called(ctx, p, id))
}

func (m *MockFiscalPeriodRepository) CreateFiscalPeriod(ctx context.Context, p domain.Principal, input domain.FiscalPeriodInput) (*domain.FiscalPeriod, error) {
	return m.periodResult(m.Called(ctx, p, input))
}

func (m *MockFiscalPeriodRepository) UpdateFiscalPeriod(ctx context.Context, p domain.Principal, id int64, input domain.FiscalPeriodInput) (*domain.FiscalPeriod, error) {
	return m.periodResult(m.Called(ctx, p, id, input))
}

func (m *MockFiscalPeriodRepository) DeleteFiscalPeriod(ctx context.Context, p domain.Principal, id int64) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *MockFiscalPeriodRepository) CloseFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error) {
	return m.periodResult(m.Called(ctx, p, id))
}

func (m *MockFiscalPeriodRepository) ReopenFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error) {
	return m.periodResult(m.Called(ctx, p, id))
}

func (m *MockFiscalPeriodRepository) periodResult(args mock.Arguments) (*domain.FiscalPeriod, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

// --- Mock AdBudgetRepository ---
type MockAdBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.AdBudgetRepositoryFacade = (*MockAdBudgetRepository)(nil)

func (m *MockAdBudgetRepository) ListAdBudgets(ctx context.Context, p domain.Principal, params domain.AdBudgetListParams) (*domain.Page[domain.AdBudget], error) {
	args := m.Called(ctx, p, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.AdBudget]), args.Error(1)
}

func (m *MockAdBudgetRepository) ListAdBudgetsByMonth(ctx context.Context, p domain.Principal, monthYear string) ([]domain.AdBudget, error) {
	args := m.Called(ctx, p, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdBudget), args.Error(1)
}

func (m *MockAdBudgetRepository) FindAdBudgetByID(ctx context.Context, p domain.Principal, id int64) (*domain.AdBudget, error) {
	return m.budgetResult(m.Called(ctx, p, id))
}

func (m *MockAdBudgetRepository) CreateAdBudget(ctx context.Context, p domain.Principal, input domain.AdBudgetInput) (*domain.AdBudget, error) {
	return m.budgetResult(m.Called(ctx, p, input))
}

func (m *MockAdBudgetRepository) UpdateAdBudget(ctx context.Context, p domain.Principal, id int64, input domain.AdBudgetInput) (*domain.AdBudget, error) {
	return m.budgetResult(m.Called(ctx, p, id, input))
}

func (m *MockAdBudgetRepository) UpdateAdBudgetSpent(ctx context.Context, p domain.Principal, id int64, spent domain.Amount) (*domain.AdBudget, error) {
	return m.budgetResult(m.Called(ctx, p, id, spent))
}

func (m *MockAdBudgetRepository) DeleteAdBudget(ctx context.Context, p domain.Principal, id int64) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *MockAdBudgetRepository) budgetResult(args mock.Arguments) (*domain.AdBudget, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdBudget), args.Error(1)
}
