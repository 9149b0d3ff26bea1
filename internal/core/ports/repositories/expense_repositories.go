package repositories

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// ExpenseCategoryRepositoryFacade defines operations on expense categories.
type ExpenseCategoryRepositoryFacade interface {
	ListExpenseCategories(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.ExpenseCategory], error)
	ListAllExpenseCategories(ctx context.Context, p domain.Principal) ([]domain.ExpenseCategory, error)
	FindExpenseCategoryByID(ctx context.Context, p domain.Principal, id int64) (*domain.ExpenseCategory, error)
	CreateExpenseCategory(ctx context.Context, p domain.Principal, input domain.ExpenseCategoryInput) (*domain.ExpenseCategory, error)
	UpdateExpenseCategory(ctx context.Context, p domain.Principal, id int64, input domain.ExpenseCategoryInput) (*domain.ExpenseCategory, error)
	DeleteExpenseCategory(ctx context.Context, p domain.Principal, id int64) error
}

// OperationalExpenseReader defines read operations for operational expenses.
type OperationalExpenseReader interface {
	ListExpenses(ctx context.Context, p domain.Principal, params domain.ExpenseListParams) (*domain.Page[domain.OperationalExpense], error)
	FindExpenseByID(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error)
}

// OperationalExpenseWriter defines write and workflow operations for operational expenses.
type OperationalExpenseWriter interface {
	CreateExpense(ctx context.Context, p domain.Principal, input domain.OperationalExpenseInput) (*domain.OperationalExpense, error)
	UpdateExpense(ctx context.Context, p domain.Principal, id int64, input domain.OperationalExpenseInput) (*domain.OperationalExpense, error)
	DeleteExpense(ctx context.Context, p domain.Principal, id int64) error
	ApproveExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error)
	RejectExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error)
	PayExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error)
}

// OperationalExpenseRepositoryFacade combines all expense repository interfaces
type OperationalExpenseRepositoryFacade interface {
	OperationalExpenseReader
	OperationalExpenseWriter
}
