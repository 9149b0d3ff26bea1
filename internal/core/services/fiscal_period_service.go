package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
)

const dateLayout = "2006-01-02"

type fiscalPeriodService struct {
	BaseService
	repo portsrepo.FiscalPeriodRepositoryFacade
}

// NewFiscalPeriodService creates a new fiscal period service.
func NewFiscalPeriodService(repo portsrepo.FiscalPeriodRepositoryFacade) portssvc.FiscalPeriodSvcFacade {
	return &fiscalPeriodService{repo: repo}
}

var _ portssvc.FiscalPeriodSvcFacade = (*fiscalPeriodService)(nil)

func (s *fiscalPeriodService) ListFiscalPeriods(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.FiscalPeriod], error) {
	page, err := s.repo.ListFiscalPeriods(ctx, p, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal periods")
		return nil, err
	}
	return page, nil
}

func (s *fiscalPeriodService) ListAllFiscalPeriods(ctx context.Context, p domain.Principal) ([]domain.FiscalPeriod, error) {
	return s.repo.ListAllFiscalPeriods(ctx, p)
}

func (s *fiscalPeriodService) GetFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error) {
	return s.repo.FindFiscalPeriodByID(ctx, p, id)
}

func (s *fiscalPeriodService) CreateFiscalPeriod(ctx context.Context, p domain.Principal, input domain.FiscalPeriodInput) (*domain.FiscalPeriod, error) {
	if err := validateFiscalPeriod(input); err != nil {
		return nil, err
	}
	period, err := s.repo.CreateFiscalPeriod(ctx, p, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to create fiscal period")
		return nil, err
	}
	s.LogInfo(ctx, "Fiscal period created", slog.Int64("fiscal_period_id", period.ID))
	return period, nil
}

func (s *fiscalPeriodService) UpdateFiscalPeriod(ctx context.Context, p domain.Principal, id int64, input domain.FiscalPeriodInput) (*domain.FiscalPeriod, error) {
	if err := s.authorize(ctx, p, id, domain.ActionEdit); err != nil {
		return nil, err
	}
	if err := validateFiscalPeriod(input); err != nil {
		return nil, err
	}
	period, err := s.repo.UpdateFiscalPeriod(ctx, p, id, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to update fiscal period", slog.Int64("fiscal_period_id", id))
		return nil, err
	}
	return period, nil
}

func (s *fiscalPeriodService) DeleteFiscalPeriod(ctx context.Context, p domain.Principal, id int64) error {
	if err := s.authorize(ctx, p, id, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.repo.DeleteFiscalPeriod(ctx, p, id); err != nil {
		s.LogError(ctx, err, "Failed to delete fiscal period", slog.Int64("fiscal_period_id", id))
		return err
	}
	s.LogInfo(ctx, "Fiscal period deleted", slog.Int64("fiscal_period_id", id))
	return nil
}

func (s *fiscalPeriodService) CloseFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error) {
	if err := s.authorize(ctx, p, id, domain.ActionClose); err != nil {
		return nil, err
	}
	period, err := s.repo.CloseFiscalPeriod(ctx, p, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to close fiscal period", slog.Int64("fiscal_period_id", id))
		return nil, err
	}
	s.LogInfo(ctx, "Fiscal period closed", slog.Int64("fiscal_period_id", id))
	return period, nil
}

func (s *fiscalPeriodService) ReopenFiscalPeriod(ctx context.Context, p domain.Principal, id int64) (*domain.FiscalPeriod, error) {
	if err := s.authorize(ctx, p, id, domain.ActionReopen); err != nil {
		return nil, err
	}
	period, err := s.repo.ReopenFiscalPeriod(ctx, p, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to reopen fiscal period", slog.Int64("fiscal_period_id", id))
		return nil, err
	}
	s.LogInfo(ctx, "Fiscal period reopened", slog.Int64("fiscal_period_id", id))
	return period, nil
}

func (s *fiscalPeriodService) authorize(ctx context.Context, p domain.Principal, id int64, action domain.Action) error {
	period, err := s.repo.FindFiscalPeriodByID(ctx, p, id)
	if err != nil {
		return err
	}
	if _, err := domain.FiscalPeriodTransitions.Authorize(p, period.Status(), action, false); err != nil {
		s.LogDebug(ctx, "Fiscal period action refused",
			slog.Int64("fiscal_period_id", id),
			slog.String("status", string(period.Status())),
			slog.String("action", string(action)))
		return err
	}
	return nil
}

func validateFiscalPeriod(input domain.FiscalPeriodInput) error {
	name := strings.TrimSpace(input.PeriodName)
	switch {
	case name == "":
		return invalid("Period name is required")
	case len([]rune(name)) < 3:
		return invalid("Period name must be at least 3 characters")
	case strings.TrimSpace(input.PeriodStart) == "" || strings.TrimSpace(input.PeriodEnd) == "":
		return invalid("Start and end dates are required")
	}

	start, err := time.Parse(dateLayout, strings.TrimSpace(input.PeriodStart))
	if err != nil {
		return invalid("Start date must be a valid date (YYYY-MM-DD)")
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(input.PeriodEnd))
	if err != nil {
		return invalid("End date must be a valid date (YYYY-MM-DD)")
	}
	if !end.After(start) {
		return invalid("End date must be after start date")
	}
	return nil
}
