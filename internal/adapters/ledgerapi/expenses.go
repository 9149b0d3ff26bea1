package ledgerapi

import (
	"context"
	"net/http"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
)

// ExpenseCategoryGateway implements the expense category repository against the Ledger API.
type ExpenseCategoryGateway struct {
	client *Client
}

func (g *ExpenseCategoryGateway) ListExpenseCategories(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.ExpenseCategory], error) {
	return fetchPage[domain.ExpenseCategory](ctx, g.client, p, "/expense-categories", listQuery(params))
}

func (g *ExpenseCategoryGateway) ListAllExpenseCategories(ctx context.Context, p domain.Principal) ([]domain.ExpenseCategory, error) {
	return fetchList[domain.ExpenseCategory](ctx, g.client, p, "/expense-categories/no_page", nil)
}

func (g *ExpenseCategoryGateway) FindExpenseCategoryByID(ctx context.Context, p domain.Principal, id int64) (*domain.ExpenseCategory, error) {
	return fetch[domain.ExpenseCategory](ctx, g.client, p, http.MethodGet, idPath("expense-categories", id), nil)
}

func (g *ExpenseCategoryGateway) CreateExpenseCategory(ctx context.Context, p domain.Principal, input domain.ExpenseCategoryInput) (*domain.ExpenseCategory, error) {
	return fetch[domain.ExpenseCategory](ctx, g.client, p, http.MethodPost, "/expense-categories", input)
}

func (g *ExpenseCategoryGateway) UpdateExpenseCategory(ctx context.Context, p domain.Principal, id int64, input domain.ExpenseCategoryInput) (*domain.ExpenseCategory, error) {
	return fetch[domain.ExpenseCategory](ctx, g.client, p, http.MethodPut, idPath("expense-categories", id), input)
}

func (g *ExpenseCategoryGateway) DeleteExpenseCategory(ctx context.Context, p domain.Principal, id int64) error {
	return g.client.delete(ctx, p, idPath("expense-categories", id))
}

// OperationalExpenseGateway implements the operational expense repository against the Ledger API.
type OperationalExpenseGateway struct {
	client *Client
}

func (g *OperationalExpenseGateway) ListExpenses(ctx context.Context, p domain.Principal, params domain.ExpenseListParams) (*domain.Page[domain.OperationalExpense], error) {
	q := listQuery(params.ListParams)
	setIfNotEmpty(q, "status", string(params.Status))
	setIfPositive(q, "category_id", params.CategoryID)
	return fetchPage[domain.OperationalExpense](ctx, g.client, p, "/operational-expenses", q)
}

func (g *OperationalExpenseGateway) FindExpenseByID(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return fetch[domain.OperationalExpense](ctx, g.client, p, http.MethodGet, idPath("operational-expenses", id), nil)
}

func (g *OperationalExpenseGateway) CreateExpense(ctx context.Context, p domain.Principal, input domain.OperationalExpenseInput) (*domain.OperationalExpense, error) {
	return fetch[domain.OperationalExpense](ctx, g.client, p, http.MethodPost, "/operational-expenses", input)
}

func (g *OperationalExpenseGateway) UpdateExpense(ctx context.Context, p domain.Principal, id int64, input domain.OperationalExpenseInput) (*domain.OperationalExpense, error) {
	return fetch[domain.OperationalExpense](ctx, g.client, p, http.MethodPut, idPath("operational-expenses", id), input)
}

func (g *OperationalExpenseGateway) DeleteExpense(ctx context.Context, p domain.Principal, id int64) error {
	return g.client.delete(ctx, p, idPath("operational-expenses", id))
}

func (g *OperationalExpenseGateway) ApproveExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return fetch[domain.OperationalExpense](ctx, g.client, p, http.MethodPost, idPath("operational-expenses", id, "approve"), nil)
}

func (g *OperationalExpenseGateway) RejectExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return fetch[domain.OperationalExpense](ctx, g.client, p, http.MethodPost, idPath("operational-expenses", id, "reject"), nil)
}

func (g *OperationalExpenseGateway) PayExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return fetch[domain.OperationalExpense](ctx, g.client, p, http.MethodPost, idPath("operational-expenses", id, "pay"), nil)
}
