package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context, p domain.Principal, params domain.AccountListParams) (*domain.Page[domain.Account], error) {
	if params.AccountType != "" && !params.AccountType.IsValid() {
		return nil, invalid("Invalid account type")
	}
	page, err := s.accountRepo.ListAccounts(ctx, p, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return page, nil
}

func (s *accountService) ListAllAccounts(ctx context.Context, p domain.Principal) ([]domain.Account, error) {
	return s.accountRepo.ListAllAccounts(ctx, p)
}

func (s *accountService) ListAccountsByType(ctx context.Context, p domain.Principal, accountType domain.AccountType) ([]domain.Account, error) {
	if !accountType.IsValid() {
		return nil, invalid("Invalid account type")
	}
	return s.accountRepo.ListAccountsByType(ctx, p, accountType)
}

func (s *accountService) ListChildAccounts(ctx context.Context, p domain.Principal, parentID int64) ([]domain.Account, error) {
	return s.accountRepo.ListChildAccounts(ctx, p, parentID)
}

func (s *accountService) GetAccount(ctx context.Context, p domain.Principal, id int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, p, id)
}

func (s *accountService) CreateAccount(ctx context.Context, p domain.Principal, input domain.AccountInput) (*domain.Account, error) {
	if err := validateAccount(input); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.CreateAccount(ctx, p, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("account_code", input.AccountCode))
		return nil, err
	}
	s.LogInfo(ctx, "Account created successfully",
		slog.Int64("account_id", account.ID),
		slog.String("account_code", account.AccountCode))
	return account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, p domain.Principal, id int64, input domain.AccountInput) (*domain.Account, error) {
	if err := validateAccount(input); err != nil {
		return nil, err
	}
	if input.ParentAccountID != nil && *input.ParentAccountID == id {
		return nil, invalid("Account cannot be its own parent")
	}
	account, err := s.accountRepo.UpdateAccount(ctx, p, id, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", id))
		return nil, err
	}
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, p domain.Principal, id int64) error {
	if err := s.accountRepo.DeleteAccount(ctx, p, id); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", id))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.Int64("account_id", id))
	return nil
}

func validateAccount(input domain.AccountInput) error {
	name := strings.TrimSpace(input.AccountName)
	switch {
	case strings.TrimSpace(input.AccountCode) == "":
		return invalid("Account code is required")
	case name == "":
		return invalid("Account name is required")
	case len([]rune(name)) < 3:
		return invalid("Account name must be at least 3 characters")
	case input.AccountType != "" && !input.AccountType.IsValid():
		return invalid("Invalid account type")
	}
	return nil
}

type expenseCategoryService struct {
	BaseService
	repo portsrepo.ExpenseCategoryRepositoryFacade
}

// NewExpenseCategoryService creates a new expense category service.
func NewExpenseCategoryService(repo portsrepo.ExpenseCategoryRepositoryFacade) portssvc.ExpenseCategorySvcFacade {
	return &expenseCategoryService{repo: repo}
}

var _ portssvc.ExpenseCategorySvcFacade = (*expenseCategoryService)(nil)

func (s *expenseCategoryService) ListExpenseCategories(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.ExpenseCategory], error) {
	return s.repo.ListExpenseCategories(ctx, p, params)
}

func (s *expenseCategoryService) ListAllExpenseCategories(ctx context.Context, p domain.Principal) ([]domain.ExpenseCategory, error) {
	return s.repo.ListAllExpenseCategories(ctx, p)
}

func (s *expenseCategoryService) GetExpenseCategory(ctx context.Context, p domain.Principal, id int64) (*domain.ExpenseCategory, error) {
	return s.repo.FindExpenseCategoryByID(ctx, p, id)
}

func (s *expenseCategoryService) CreateExpenseCategory(ctx context.Context, p domain.Principal, input domain.ExpenseCategoryInput) (*domain.ExpenseCategory, error) {
	if err := validateExpenseCategory(input); err != nil {
		return nil, err
	}
	category, err := s.repo.CreateExpenseCategory(ctx, p, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to create expense category")
		return nil, err
	}
	s.LogInfo(ctx, "Expense category created", slog.Int64("category_id", category.ID))
	return category, nil
}

func (s *expenseCategoryService) UpdateExpenseCategory(ctx context.Context, p domain.Principal, id int64, input domain.ExpenseCategoryInput) (*domain.ExpenseCategory, error) {
	if err := validateExpenseCategory(input); err != nil {
		return nil, err
	}
	category, err := s.repo.UpdateExpenseCategory(ctx, p, id, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to update expense category", slog.Int64("category_id", id))
		return nil, err
	}
	return category, nil
}

func (s *expenseCategoryService) DeleteExpenseCategory(ctx context.Context, p domain.Principal, id int64) error {
	if err := s.repo.DeleteExpenseCategory(ctx, p, id); err != nil {
		s.LogError(ctx, err, "Failed to delete expense category", slog.Int64("category_id", id))
		return err
	}
	return nil
}

func validateExpenseCategory(input domain.ExpenseCategoryInput) error {
	name := strings.TrimSpace(input.CategoryName)
	switch {
	case name == "":
		return invalid("Category name is required")
	case len([]rune(name)) < 3:
		return invalid("Category name must be at least 3 characters")
	}
	return nil
}
