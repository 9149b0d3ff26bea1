package ledgerapi

import (
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
)

var (
	_ portsrepo.AccountRepositoryFacade            = (*AccountGateway)(nil)
	_ portsrepo.FiscalPeriodRepositoryFacade       = (*FiscalPeriodGateway)(nil)
	_ portsrepo.ExpenseCategoryRepositoryFacade    = (*ExpenseCategoryGateway)(nil)
	_ portsrepo.OperationalExpenseRepositoryFacade = (*OperationalExpenseGateway)(nil)
	_ portsrepo.AdBudgetRepositoryFacade           = (*AdBudgetGateway)(nil)
	_ portsrepo.CapitalInvestorRepositoryFacade    = (*CapitalInvestorGateway)(nil)
	_ portsrepo.JournalEntryRepositoryFacade       = (*JournalEntryGateway)(nil)
	_ portsrepo.ReportingRepository                = (*ReportGateway)(nil)
)

// NewRepositoryProvider wires every Ledger API backed repository. Draft and submission
// storage are local to this service and supplied by the caller.
func NewRepositoryProvider(c *Client, drafts portsrepo.DraftRepository, submissions portsrepo.SubmissionAuditRepository) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:         &AccountGateway{client: c},
		FiscalPeriodRepo:    &FiscalPeriodGateway{client: c},
		ExpenseCategoryRepo: &ExpenseCategoryGateway{client: c},
		ExpenseRepo:         &OperationalExpenseGateway{client: c},
		AdBudgetRepo:        &AdBudgetGateway{client: c},
		InvestorRepo:        &CapitalInvestorGateway{client: c},
		JournalEntryRepo:    &JournalEntryGateway{client: c},
		ReportingRepo:       &ReportGateway{client: c},
		DraftRepo:           drafts,
		SubmissionRepo:      submissions,
	}
}
