package domain

import "time"

// ExpenseStatus is the approval state of an operational expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
	ExpensePaid     ExpenseStatus = "paid"
)

// ExpenseCategory groups operational expenses.
type ExpenseCategory struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"category_name"`
	Description  string `json:"description,omitempty"`
	AuditFields
}

// ExpenseCategoryInput is the create/update body for an expense category.
type ExpenseCategoryInput struct {
	CategoryName string `json:"category_name"`
	Description  string `json:"description,omitempty"`
}

// OperationalExpense is a single expense; the number (EXP-YYYY-NNNN) is assigned by the Ledger API.
type OperationalExpense struct {
	ID                int64            `json:"id"`
	ExpenseNumber     string           `json:"expense_number"`
	ExpenseDate       string           `json:"expense_date"`
	ExpenseCategoryID int64            `json:"expense_category_id"`
	AccountID         int64            `json:"account_id"`
	Amount            Amount           `json:"amount"`
	Description       string           `json:"description,omitempty"`
	ReceiptImageURL   string           `json:"receipt_image_url,omitempty"`
	Status            ExpenseStatus    `json:"status"`
	ApprovedBy        *int64           `json:"approved_by,omitempty"`
	ApprovedAt        *time.Time       `json:"approved_at,omitempty"`
	PaidBy            *int64           `json:"paid_by,omitempty"`
	PaidAt            *time.Time       `json:"paid_at,omitempty"`
	ExpenseCategory   *ExpenseCategory `json:"expense_category,omitempty"`
	Account           *Account         `json:"account,omitempty"`
	AuditFields
}

// OperationalExpenseInput is the create/update body for an operational expense.
type OperationalExpenseInput struct {
	ExpenseDate       string `json:"expense_date"`
	ExpenseCategoryID int64  `json:"expense_category_id"`
	AccountID         int64  `json:"account_id"`
	Amount            Amount `json:"amount"`
	Description       string `json:"description,omitempty"`
	ReceiptImageURL   string `json:"receipt_image_url,omitempty"`
}

// ExpenseListParams filters the operational expense list.
type ExpenseListParams struct {
	ListParams
	Status     ExpenseStatus
	CategoryID int64
}
