package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
)

type expenseService struct {
	BaseService
	repo portsrepo.OperationalExpenseRepositoryFacade
}

// NewExpenseService creates a new operational expense service.
func NewExpenseService(repo portsrepo.OperationalExpenseRepositoryFacade) portssvc.OperationalExpenseSvcFacade {
	return &expenseService{repo: repo}
}

var _ portssvc.OperationalExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) ListExpenses(ctx context.Context, p domain.Principal, params domain.ExpenseListParams) (*domain.Page[domain.OperationalExpense], error) {
	page, err := s.repo.ListExpenses(ctx, p, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list operational expenses")
		return nil, err
	}
	return page, nil
}

func (s *expenseService) GetExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return s.repo.FindExpenseByID(ctx, p, id)
}

func (s *expenseService) CreateExpense(ctx context.Context, p domain.Principal, input domain.OperationalExpenseInput) (*domain.OperationalExpense, error) {
	if err := validateExpense(input); err != nil {
		return nil, err
	}
	expense, err := s.repo.CreateExpense(ctx, p, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to create operational expense")
		return nil, err
	}
	s.LogInfo(ctx, "Operational expense created",
		slog.Int64("expense_id", expense.ID),
		slog.String("expense_number", expense.ExpenseNumber))
	return expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, p domain.Principal, id int64, input domain.OperationalExpenseInput) (*domain.OperationalExpense, error) {
	if err := validateExpense(input); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, p, id, domain.ActionEdit); err != nil {
		return nil, err
	}
	expense, err := s.repo.UpdateExpense(ctx, p, id, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to update operational expense", slog.Int64("expense_id", id))
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, p domain.Principal, id int64) error {
	if err := s.authorize(ctx, p, id, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.repo.DeleteExpense(ctx, p, id); err != nil {
		s.LogError(ctx, err, "Failed to delete operational expense", slog.Int64("expense_id", id))
		return err
	}
	s.LogInfo(ctx, "Operational expense deleted", slog.Int64("expense_id", id))
	return nil
}

func (s *expenseService) ApproveExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return s.transition(ctx, p, id, domain.ActionApprove, s.repo.ApproveExpense)
}

func (s *expenseService) RejectExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return s.transition(ctx, p, id, domain.ActionReject, s.repo.RejectExpense)
}

func (s *expenseService) PayExpense(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error) {
	return s.transition(ctx, p, id, domain.ActionPay, s.repo.PayExpense)
}

type expenseCall func(ctx context.Context, p domain.Principal, id int64) (*domain.OperationalExpense, error)

func (s *expenseService) transition(ctx context.Context, p domain.Principal, id int64, action domain.Action, call expenseCall) (*domain.OperationalExpense, error) {
	if err := s.authorize(ctx, p, id, action); err != nil {
		return nil, err
	}
	expense, err := call(ctx, p, id)
	if err != nil {
		s.LogError(ctx, err, "Operational expense transition failed",
			slog.Int64("expense_id", id),
			slog.String("action", string(action)))
		return nil, err
	}
	s.LogInfo(ctx, "Operational expense transitioned",
		slog.Int64("expense_id", id),
		slog.String("action", string(action)),
		slog.String("status", string(expense.Status)))
	return expense, nil
}

func (s *expenseService) authorize(ctx context.Context, p domain.Principal, id int64, action domain.Action) error {
	expense, err := s.repo.FindExpenseByID(ctx, p, id)
	if err != nil {
		return err
	}
	if _, err := domain.ExpenseTransitions.Authorize(p, expense.Status, action, isCreator(p, expense.CreatedBy)); err != nil {
		s.LogDebug(ctx, "Operational expense action refused",
			slog.Int64("expense_id", id),
			slog.String("status", string(expense.Status)),
			slog.String("action", string(action)))
		return err
	}
	return nil
}

// isCreator compares the Ledger API's numeric creator id with the caller's user id.
func isCreator(p domain.Principal, createdBy *int64) bool {
	return createdBy != nil && p.UserID != "" && strconv.FormatInt(*createdBy, 10) == p.UserID
}

func validateExpense(input domain.OperationalExpenseInput) error {
	switch {
	case strings.TrimSpace(input.ExpenseDate) == "":
		return invalid("Expense date is required")
	case input.ExpenseCategoryID == 0:
		return invalid("Expense category is required")
	case input.AccountID == 0:
		return invalid("Account is required")
	case !input.Amount.IsPositive():
		return invalid("Amount must be greater than 0")
	}
	return nil
}
