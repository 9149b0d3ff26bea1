package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
)

const adBudgetSubject = "ad budgets"

type adBudgetService struct {
	BaseService
	repo portsrepo.AdBudgetRepositoryFacade
}

// NewAdBudgetService creates a new ad budget service.
func NewAdBudgetService(repo portsrepo.AdBudgetRepositoryFacade) portssvc.AdBudgetSvcFacade {
	return &adBudgetService{repo: repo}
}

var _ portssvc.AdBudgetSvcFacade = (*adBudgetService)(nil)

func (s *adBudgetService) ListAdBudgets(ctx context.Context, p domain.Principal, params domain.AdBudgetListParams) (*domain.Page[domain.AdBudget], error) {
	page, err := s.repo.ListAdBudgets(ctx, p, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ad budgets")
		return nil, err
	}
	return page, nil
}

func (s *adBudgetService) ListAdBudgetsByMonth(ctx context.Context, p domain.Principal, monthYear string) ([]domain.AdBudget, error) {
	if strings.TrimSpace(monthYear) == "" {
		return nil, invalid("Month is required")
	}
	return s.repo.ListAdBudgetsByMonth(ctx, p, strings.TrimSpace(monthYear))
}

func (s *adBudgetService) GetAdBudget(ctx context.Context, p domain.Principal, id int64) (*domain.AdBudget, error) {
	return s.repo.FindAdBudgetByID(ctx, p, id)
}

func (s *adBudgetService) CreateAdBudget(ctx context.Context, p domain.Principal, input domain.AdBudgetInput) (*domain.AdBudget, error) {
	if err := s.RequireRole(ctx, p, domain.RoleAdmin, domain.ActionCreate, adBudgetSubject); err != nil {
		return nil, err
	}
	if err := validateAdBudget(input); err != nil {
		return nil, err
	}
	budget, err := s.repo.CreateAdBudget(ctx, p, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to create ad budget", slog.String("platform", string(input.Platform)))
		return nil, err
	}
	s.LogInfo(ctx, "Ad budget created",
		slog.Int64("ad_budget_id", budget.ID),
		slog.String("platform", string(budget.Platform)),
		slog.String("month_year", budget.MonthYear))
	return budget, nil
}

func (s *adBudgetService) UpdateAdBudget(ctx context.Context, p domain.Principal, id int64, input domain.AdBudgetInput) (*domain.AdBudget, error) {
	if err := s.RequireRole(ctx, p, domain.RoleAdmin, domain.ActionEdit, adBudgetSubject); err != nil {
		return nil, err
	}
	if err := validateAdBudget(input); err != nil {
		return nil, err
	}
	budget, err := s.repo.UpdateAdBudget(ctx, p, id, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to update ad budget", slog.Int64("ad_budget_id", id))
		return nil, err
	}
	return budget, nil
}

// UpdateAdBudgetSpent checks the new spend against the stored budget amount.
func (s *adBudgetService) UpdateAdBudgetSpent(ctx context.Context, p domain.Principal, id int64, spent domain.Amount) (*domain.AdBudget, error) {
	if err := s.RequireRole(ctx, p, domain.RoleAdmin, domain.ActionEdit, adBudgetSubject); err != nil {
		return nil, err
	}
	if spent < 0 {
		return nil, invalid("Spent amount cannot be negative")
	}
	current, err := s.repo.FindAdBudgetByID(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if spent > current.BudgetAmount {
		return nil, invalid("Spent amount cannot exceed budget amount")
	}
	budget, err := s.repo.UpdateAdBudgetSpent(ctx, p, id, spent)
	if err != nil {
		s.LogError(ctx, err, "Failed to update ad budget spend", slog.Int64("ad_budget_id", id))
		return nil, err
	}
	return budget, nil
}

func (s *adBudgetService) DeleteAdBudget(ctx context.Context, p domain.Principal, id int64) error {
	if err := s.RequireRole(ctx, p, domain.RoleAdmin, domain.ActionDelete, adBudgetSubject); err != nil {
		return err
	}
	if err := s.repo.DeleteAdBudget(ctx, p, id); err != nil {
		s.LogError(ctx, err, "Failed to delete ad budget", slog.Int64("ad_budget_id", id))
		return err
	}
	return nil
}

func validateAdBudget(input domain.AdBudgetInput) error {
	switch {
	case strings.TrimSpace(string(input.Platform)) == "":
		return invalid("Platform is required")
	case strings.TrimSpace(input.MonthYear) == "":
		return invalid("Month is required")
	case !input.BudgetAmount.IsPositive():
		return invalid("Budget amount must be greater than 0")
	case input.SpentAmount < 0:
		return invalid("Spent amount cannot be negative")
	case input.SpentAmount > input.BudgetAmount:
		return invalid("Spent amount cannot exceed budget amount")
	}
	return nil
}
