package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	repo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{repo: repo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) GetCurrentBalance(ctx context.Context, p domain.Principal, filter domain.DateRange) (*domain.CurrentBalance, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	balance, err := s.repo.GetCurrentBalance(ctx, p, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to get current balance", slog.Int64("account_id", filter.AccountID))
		return nil, err
	}
	return balance, nil
}

func (s *reportingService) ListFinanceTransactions(ctx context.Context, p domain.Principal, filter domain.DateRange) ([]domain.FinanceTransaction, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	txns, err := s.repo.ListFinanceTransactions(ctx, p, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list finance transactions", slog.Int64("account_id", filter.AccountID))
		return nil, err
	}
	return txns, nil
}

func (s *reportingService) GetAdExpenses(ctx context.Context, p domain.Principal, filter domain.DateRange) (*domain.AdExpenses, error) {
	if err := validateRange(filter); err != nil {
		return nil, err
	}
	expenses, err := s.repo.GetAdExpenses(ctx, p, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to get ad expenses")
		return nil, err
	}
	return expenses, nil
}

// validateRange only checks ordering when both ends are given.
func validateRange(filter domain.DateRange) error {
	if filter.StartDate == "" || filter.EndDate == "" {
		return nil
	}
	start, err := time.Parse(dateLayout, filter.StartDate)
	if err != nil {
		return invalid("Start date must be a valid date (YYYY-MM-DD)")
	}
	end, err := time.Parse(dateLayout, filter.EndDate)
	if err != nil {
		return invalid("End date must be a valid date (YYYY-MM-DD)")
	}
	if end.Before(start) {
		return invalid("End date cannot be before start date")
	}
	return nil
}
