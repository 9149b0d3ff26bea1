package domain

// AccountType defines the fundamental accounting type of an account in the chart of accounts.
type AccountType string

const (
	Asset           AccountType = "asset"
	Liability       AccountType = "liability"
	Equity          AccountType = "equity"
	Revenue         AccountType = "revenue"
	Expense         AccountType = "expense"
	ContraAsset     AccountType = "contra_asset"
	ContraLiability AccountType = "contra_liability"
)

// AccountTypes lists every valid account type in display order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense, ContraAsset, ContraLiability}

var accountTypeLabels = map[AccountType]string{
	Asset:           "Asset",
	Liability:       "Liability",
	Equity:          "Equity",
	Revenue:         "Revenue",
	Expense:         "Expense",
	ContraAsset:     "Contra Asset",
	ContraLiability: "Contra Liability",
}

// Label returns the human readable name of the account type.
func (t AccountType) Label() string {
	if l, ok := accountTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	_, ok := accountTypeLabels[t]
	return ok
}

// Account is an entry in the chart of accounts, owned by the Ledger API.
type Account struct {
	ID              int64       `json:"id"`
	AccountCode     string      `json:"account_code"`
	AccountName     string      `json:"account_name"`
	AccountType     AccountType `json:"account_type"`
	ParentAccountID *int64      `json:"parent_account_id,omitempty"`
	IsActive        bool        `json:"is_active"`
	AuditFields
}

// AccountInput is the create/update body for an account.
type AccountInput struct {
	AccountCode     string      `json:"account_code"`
	AccountName     string      `json:"account_name"`
	AccountType     AccountType `json:"account_type"`
	ParentAccountID *int64      `json:"parent_account_id,omitempty"`
	IsActive        *bool       `json:"is_active,omitempty"`
}

// AccountListParams filters the paginated account list.
type AccountListParams struct {
	ListParams
	AccountType AccountType
}
