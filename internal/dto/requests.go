package dto

import (
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/utils/pagination"
)

// ListParams defines the query parameters shared by every paginated list endpoint.
type ListParams struct {
	Page   int    `form:"page,default=1" binding:"min=0"`
	Limit  int    `form:"limit,default=10" binding:"min=0,max=100"`
	Search string `form:"search"`
}

// ToDomain clamps the values to what the Ledger API accepts.
func (p ListParams) ToDomain() domain.ListParams {
	page, limit := pagination.Normalize(p.Page, p.Limit)
	return domain.ListParams{Page: page, Limit: limit, Search: p.Search}
}

// ListAccountsParams filters the account list by type.
type ListAccountsParams struct {
	ListParams
	AccountType string `form:"account_type" binding:"omitempty,oneof=asset liability equity revenue expense contra_asset contra_liability"`
}

func (p ListAccountsParams) ToDomain() domain.AccountListParams {
	return domain.AccountListParams{ListParams: p.ListParams.ToDomain(), AccountType: domain.AccountType(p.AccountType)}
}

// ListExpensesParams filters operational expenses by status and category.
type ListExpensesParams struct {
	ListParams
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected paid"`
	CategoryID int64  `form:"category_id" binding:"min=0"`
}

func (p ListExpensesParams) ToDomain() domain.ExpenseListParams {
	return domain.ExpenseListParams{
		ListParams: p.ListParams.ToDomain(),
		Status:     domain.ExpenseStatus(p.Status),
		CategoryID: p.CategoryID,
	}
}

// ListAdBudgetsParams filters ad budgets by platform and month.
type ListAdBudgetsParams struct {
	ListParams
	Platform  string `form:"platform" binding:"omitempty,oneof=meta_ads google_ads tiktok_ads shopee_ads lazada_ads blibli_ads"`
	MonthYear string `form:"month_year" binding:"omitempty,datetime=2006-01"`
}

func (p ListAdBudgetsParams) ToDomain() domain.AdBudgetListParams {
	return domain.AdBudgetListParams{
		ListParams: p.ListParams.ToDomain(),
		Platform:   domain.AdPlatform(p.Platform),
		MonthYear:  p.MonthYear,
	}
}

// ListJournalEntriesParams filters journal entries by status and fiscal period.
type ListJournalEntriesParams struct {
	ListParams
	Status         string `form:"status" binding:"omitempty,oneof=draft approved rejected posted"`
	FiscalPeriodID int64  `form:"fiscal_period_id" binding:"min=0"`
}

func (p ListJournalEntriesParams) ToDomain() domain.JournalEntryListParams {
	return domain.JournalEntryListParams{
		ListParams:     p.ListParams.ToDomain(),
		Status:         domain.JournalEntryStatus(p.Status),
		FiscalPeriodID: p.FiscalPeriodID,
	}
}

// ReportParams are the query parameters of the dashboard reports.
type ReportParams struct {
	AccountID int64  `form:"account_id" binding:"min=0"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

func (p ReportParams) ToDomain() domain.DateRange {
	return domain.DateRange{AccountID: p.AccountID, StartDate: p.StartDate, EndDate: p.EndDate}
}

// AccountRequest is the create and update body of an account. Required fields are checked by
// the service so that its messages reach the user.
type AccountRequest struct {
	AccountCode     string `json:"account_code" binding:"max=20"`
	AccountName     string `json:"account_name" binding:"max=100"`
	AccountType     string `json:"account_type" binding:"omitempty,oneof=asset liability equity revenue expense contra_asset contra_liability"`
	ParentAccountID *int64 `json:"parent_account_id" binding:"omitempty,gt=0"`
	IsActive        *bool  `json:"is_active"`
}

func (r AccountRequest) ToInput() domain.AccountInput {
	return domain.AccountInput{
		AccountCode:     r.AccountCode,
		AccountName:     r.AccountName,
		AccountType:     domain.AccountType(r.AccountType),
		ParentAccountID: r.ParentAccountID,
		IsActive:        r.IsActive,
	}
}

// ExpenseCategoryRequest is the create and update body of an expense category.
type ExpenseCategoryRequest struct {
	CategoryName string `json:"category_name"`
	Description  string `json:"description" binding:"max=500"`
}

func (r ExpenseCategoryRequest) ToInput() domain.ExpenseCategoryInput {
	return domain.ExpenseCategoryInput{CategoryName: r.CategoryName, Description: r.Description}
}

// FiscalPeriodRequest is the create and update body of a fiscal period.
type FiscalPeriodRequest struct {
	PeriodName  string `json:"period_name" binding:"max=100"`
	PeriodStart string `json:"period_start" binding:"omitempty,datetime=2006-01-02"`
	PeriodEnd   string `json:"period_end" binding:"omitempty,datetime=2006-01-02"`
}

func (r FiscalPeriodRequest) ToInput() domain.FiscalPeriodInput {
	return domain.FiscalPeriodInput{PeriodName: r.PeriodName, PeriodStart: r.PeriodStart, PeriodEnd: r.PeriodEnd}
}

// OperationalExpenseRequest is the create and update body of an operational expense.
type OperationalExpenseRequest struct {
	ExpenseDate       string        `json:"expense_date" binding:"omitempty,datetime=2006-01-02"`
	ExpenseCategoryID int64         `json:"expense_category_id" binding:"min=0"`
	AccountID         int64         `json:"account_id" binding:"min=0"`
	Amount            domain.Amount `json:"amount"`
	Description       string        `json:"description" binding:"max=500"`
	ReceiptImageURL   string        `json:"receipt_image_url" binding:"omitempty,url"`
}

func (r OperationalExpenseRequest) ToInput() domain.OperationalExpenseInput {
	return domain.OperationalExpenseInput{
		ExpenseDate:       r.ExpenseDate,
		ExpenseCategoryID: r.ExpenseCategoryID,
		AccountID:         r.AccountID,
		Amount:            r.Amount,
		Description:       r.Description,
		ReceiptImageURL:   r.ReceiptImageURL,
	}
}

// AdBudgetRequest is the create and update body of an ad budget.
type AdBudgetRequest struct {
	Platform     string        `json:"platform" binding:"omitempty,oneof=meta_ads google_ads tiktok_ads shopee_ads lazada_ads blibli_ads"`
	MonthYear    string        `json:"month_year" binding:"omitempty,datetime=2006-01"`
	BudgetAmount domain.Amount `json:"budget_amount"`
	SpentAmount  domain.Amount `json:"spent_amount"`
	Notes        string        `json:"notes" binding:"max=500"`
}

func (r AdBudgetRequest) ToInput() domain.AdBudgetInput {
	return domain.AdBudgetInput{
		Platform:     domain.AdPlatform(r.Platform),
		MonthYear:    r.MonthYear,
		BudgetAmount: r.BudgetAmount,
		SpentAmount:  r.SpentAmount,
		Notes:        r.Notes,
	}
}

// UpdateSpentRequest updates the spent amount of an ad budget.
type UpdateSpentRequest struct {
	SpentAmount domain.Amount `json:"spent_amount"`
}

// CapitalInvestorRequest is the create and update body of a capital investor.
type CapitalInvestorRequest struct {
	InvestorName        string        `json:"investor_name" binding:"max=200"`
	InvestmentType      string        `json:"investment_type" binding:"omitempty,oneof=equity debt convertible_note grant"`
	Amount              domain.Amount `json:"amount"`
	InvestmentDate      string        `json:"investment_date" binding:"omitempty,datetime=2006-01-02"`
	ReturnPercentage    *float64      `json:"return_percentage" binding:"omitempty,min=0,max=100"`
	MaturityDate        string        `json:"maturity_date" binding:"omitempty,datetime=2006-01-02"`
	ContractDocumentURL string        `json:"contract_document_url" binding:"omitempty,url"`
	Notes               string        `json:"notes" binding:"max=1000"`
}

func (r CapitalInvestorRequest) ToInput() domain.CapitalInvestorInput {
	return domain.CapitalInvestorInput{
		InvestorName:        r.InvestorName,
		InvestmentType:      domain.InvestmentType(r.InvestmentType),
		Amount:              r.Amount,
		InvestmentDate:      r.InvestmentDate,
		ReturnPercentage:    r.ReturnPercentage,
		MaturityDate:        r.MaturityDate,
		ContractDocumentURL: r.ContractDocumentURL,
		Notes:               r.Notes,
	}
}

// UpdateReturnPaidRequest records the repaid amount of an investment.
type UpdateReturnPaidRequest struct {
	ReturnPaid domain.Amount `json:"return_paid"`
}

// UpdateInvestorStatusRequest changes the repayment state of an investment.
type UpdateInvestorStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active fully_paid defaulted cancelled"`
}

// MessageResponse is the body of calls that return nothing but a confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
