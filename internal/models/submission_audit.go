package models

import "time"

// SubmissionAudit is a row of the journal_submission_audit table.
type SubmissionAudit struct {
	ID           string    `db:"id"`
	DraftID      string    `db:"draft_id"`
	UserID       string    `db:"user_id"`
	Operation    string    `db:"operation"`
	EntryID      *int64    `db:"entry_id"`
	EntryNumber  *string   `db:"entry_number"`
	TotalDebit   int64     `db:"total_debit"`
	TotalCredit  int64     `db:"total_credit"`
	LineCount    int       `db:"line_count"`
	Succeeded    bool      `db:"succeeded"`
	ErrorMessage *string   `db:"error_message"`
	CreatedAt    time.Time `db:"created_at"`
}

// TableName returns the backing table name.
func (SubmissionAudit) TableName() string {
	return "journal_submission_audit"
}
