package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo         AccountRepositoryFacade
	FiscalPeriodRepo    FiscalPeriodRepositoryFacade
	ExpenseCategoryRepo ExpenseCategoryRepositoryFacade
	ExpenseRepo         OperationalExpenseRepositoryFacade
	AdBudgetRepo        AdBudgetRepositoryFacade
	InvestorRepo        CapitalInvestorRepositoryFacade
	JournalEntryRepo    JournalEntryRepositoryFacade
	ReportingRepo       ReportingRepository
	DraftRepo           DraftRepository
	SubmissionRepo      SubmissionAuditRepository
}
