package domain

// FinanceTransaction is one neobank-side movement in the current balance report.
type FinanceTransaction struct {
	EntryDate          string `json:"entry_date"`
	EntryNumber        string `json:"entry_number"`
	EntryDescription   string `json:"entry_description"`
	LineDescription    string `json:"line_description"`
	ReferenceNumber    string `json:"reference_number,omitempty"`
	NeobankDebit       Amount `json:"neobank_debit"`
	NeobankCredit      Amount `json:"neobank_credit"`
	PartnerAccountCode string `json:"partner_account_code"`
	PartnerAccountName string `json:"partner_account_name"`
	PartnerAccountType string `json:"partner_account_type"`
}

// CurrentBalance is the dashboard's cash position report.
type CurrentBalance struct {
	TotalDebit     Amount               `json:"total_debit"`
	TotalCredit    Amount               `json:"total_credit"`
	CurrentBalance Amount               `json:"current_balance"`
	Transactions   []FinanceTransaction `json:"transactions"`
}

// AdExpenseTransaction is one posted line booked against an advertising expense account.
type AdExpenseTransaction struct {
	EntryDate        string `json:"entry_date"`
	EntryNumber      string `json:"entry_number"`
	EntryDescription string `json:"entry_description"`
	AccountCode      string `json:"account_code"`
	AccountName      string `json:"account_name"`
	AccountDebit     Amount `json:"account_debit"`
	NetAmount        Amount `json:"net_amount"`
	PartnerAccounts  string `json:"partner_accounts"`
	Status           string `json:"status"`
}

// AdExpenses is the advertising spend report.
type AdExpenses struct {
	TotalAdExpense    Amount                 `json:"total_ad_expense"`
	TotalTransactions int                    `json:"total_transactions"`
	Transactions      []AdExpenseTransaction `json:"transactions"`
}
