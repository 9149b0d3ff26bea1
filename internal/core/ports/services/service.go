package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	JournalComposer JournalComposerSvcFacade
	JournalEntry    JournalEntrySvcFacade
	Account         AccountSvcFacade
	FiscalPeriod    FiscalPeriodSvcFacade
	ExpenseCategory ExpenseCategorySvcFacade
	Expense         OperationalExpenseSvcFacade
	AdBudget        AdBudgetSvcFacade
	CapitalInvestor CapitalInvestorSvcFacade
	Reporting       ReportingService
}
