package domain

import "time"

// JournalEntryStatus is the workflow state of a journal entry on the Ledger API.
type JournalEntryStatus string

const (
	JournalDraft    JournalEntryStatus = "draft"
	JournalApproved JournalEntryStatus = "approved"
	JournalRejected JournalEntryStatus = "rejected"
	JournalPosted   JournalEntryStatus = "posted"
)

// JournalEntryLine is one account-tagged debit or credit of a stored entry.
type JournalEntryLine struct {
	ID          int64    `json:"id,omitempty"`
	AccountID   int64    `json:"account_id"`
	Description string   `json:"description"`
	Debit       Amount   `json:"debit"`
	Credit      Amount   `json:"credit"`
	Account     *Account `json:"account,omitempty"`
}

// JournalEntry is the authoritative entry owned by the Ledger API. EntryNumber (JE-YYYY-NNNN)
// and Status are server assigned.
type JournalEntry struct {
	ID              int64              `json:"id"`
	EntryNumber     string             `json:"entry_number"`
	EntryDate       string             `json:"entry_date"`
	FiscalPeriodID  int64              `json:"fiscal_period_id"`
	Description     string             `json:"description"`
	ReferenceNumber string             `json:"reference_number,omitempty"`
	Status          JournalEntryStatus `json:"status"`
	TotalDebit      Amount             `json:"total_debit"`
	TotalCredit     Amount             `json:"total_credit"`
	ApprovedBy      *int64             `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time         `json:"approved_at,omitempty"`
	PostedBy        *int64             `json:"posted_by,omitempty"`
	PostedAt        *time.Time         `json:"posted_at,omitempty"`
	Lines           []JournalEntryLine `json:"lines"`
	FiscalPeriod    *FiscalPeriod      `json:"fiscal_period,omitempty"`
	AuditFields
}

// JournalEntryListParams filters the journal entry list.
type JournalEntryListParams struct {
	ListParams
	Status         JournalEntryStatus
	FiscalPeriodID int64
}
