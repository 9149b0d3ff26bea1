package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
)

const investorSubject = "investors"

type capitalInvestorService struct {
	BaseService
	repo portsrepo.CapitalInvestorRepositoryFacade
}

// NewCapitalInvestorService creates a new capital investor service.
func NewCapitalInvestorService(repo portsrepo.CapitalInvestorRepositoryFacade) portssvc.CapitalInvestorSvcFacade {
	return &capitalInvestorService{repo: repo}
}

var _ portssvc.CapitalInvestorSvcFacade = (*capitalInvestorService)(nil)

func (s *capitalInvestorService) ListInvestors(ctx context.Context, p domain.Principal, params domain.ListParams) (*domain.Page[domain.CapitalInvestor], error) {
	page, err := s.repo.ListInvestors(ctx, p, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list capital investors")
		return nil, err
	}
	return page, nil
}

func (s *capitalInvestorService) ListAllInvestors(ctx context.Context, p domain.Principal) ([]domain.CapitalInvestor, error) {
	return s.repo.ListAllInvestors(ctx, p)
}

func (s *capitalInvestorService) GetTotalInvestment(ctx context.Context, p domain.Principal) (*domain.TotalInvestment, error) {
	total, err := s.repo.GetTotalInvestment(ctx, p)
	if err != nil {
		s.LogError(ctx, err, "Failed to get total investment")
		return nil, err
	}
	return total, nil
}

func (s *capitalInvestorService) GetInvestor(ctx context.Context, p domain.Principal, id int64) (*domain.CapitalInvestor, error) {
	return s.repo.FindInvestorByID(ctx, p, id)
}

func (s *capitalInvestorService) CreateInvestor(ctx context.Context, p domain.Principal, input domain.CapitalInvestorInput) (*domain.CapitalInvestor, error) {
	if err := validateInvestor(input); err != nil {
		return nil, err
	}
	investor, err := s.repo.CreateInvestor(ctx, p, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to create capital investor")
		return nil, err
	}
	s.LogInfo(ctx, "Capital investor created", slog.Int64("investor_id", investor.ID))
	return investor, nil
}

func (s *capitalInvestorService) UpdateInvestor(ctx context.Context, p domain.Principal, id int64, input domain.CapitalInvestorInput) (*domain.CapitalInvestor, error) {
	if err := validateInvestor(input); err != nil {
		return nil, err
	}
	investor, err := s.repo.UpdateInvestor(ctx, p, id, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to update capital investor", slog.Int64("investor_id", id))
		return nil, err
	}
	return investor, nil
}

func (s *capitalInvestorService) UpdateInvestorReturnPaid(ctx context.Context, p domain.Principal, id int64, returnPaid domain.Amount) (*domain.CapitalInvestor, error) {
	if returnPaid < 0 {
		return nil, invalid("Return paid cannot be negative")
	}
	investor, err := s.repo.UpdateInvestorReturnPaid(ctx, p, id, returnPaid)
	if err != nil {
		s.LogError(ctx, err, "Failed to update investor return", slog.Int64("investor_id", id))
		return nil, err
	}
	return investor, nil
}

func (s *capitalInvestorService) UpdateInvestorStatus(ctx context.Context, p domain.Principal, id int64, status domain.InvestorStatus) (*domain.CapitalInvestor, error) {
	if err := s.RequireRole(ctx, p, domain.RoleAdmin, domain.ActionEdit, investorSubject); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, invalid("Invalid investor status")
	}
	investor, err := s.repo.UpdateInvestorStatus(ctx, p, id, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to update investor status", slog.Int64("investor_id", id))
		return nil, err
	}
	s.LogInfo(ctx, "Investor status updated",
		slog.Int64("investor_id", id),
		slog.String("status", string(status)))
	return investor, nil
}

func (s *capitalInvestorService) DeleteInvestor(ctx context.Context, p domain.Principal, id int64) error {
	if err := s.RequireRole(ctx, p, domain.RoleAdmin, domain.ActionDelete, investorSubject); err != nil {
		return err
	}
	if err := s.repo.DeleteInvestor(ctx, p, id); err != nil {
		s.LogError(ctx, err, "Failed to delete capital investor", slog.Int64("investor_id", id))
		return err
	}
	return nil
}

func validateInvestor(input domain.CapitalInvestorInput) error {
	switch {
	case strings.TrimSpace(input.InvestorName) == "":
		return invalid("Investor name is required")
	case !input.Amount.IsPositive():
		return invalid("Amount must be greater than 0")
	case strings.TrimSpace(input.InvestmentDate) == "":
		return invalid("Investment date is required")
	}
	return nil
}
