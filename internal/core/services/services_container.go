package services

import (
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		JournalComposer: NewJournalComposerService(repos.DraftRepo, repos.SubmissionRepo, repos.JournalEntryRepo),
		JournalEntry:    NewJournalEntryService(repos.JournalEntryRepo),
		Account:         NewAccountService(repos.AccountRepo),
		FiscalPeriod:    NewFiscalPeriodService(repos.FiscalPeriodRepo),
		ExpenseCategory: NewExpenseCategoryService(repos.ExpenseCategoryRepo),
		Expense:         NewExpenseService(repos.ExpenseRepo),
		AdBudget:        NewAdBudgetService(repos.AdBudgetRepo),
		CapitalInvestor: NewCapitalInvestorService(repos.InvestorRepo),
		Reporting:       NewReportingService(repos.ReportingRepo),
	}
}
