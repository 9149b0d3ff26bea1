package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
)

// MinJournalLines is the smallest number of lines a journal entry can have: one debit side and
// one credit side.
const MinJournalLines = 2

const msgMinLines = "Journal entry must have at least 2 lines"

// ValidationError is a single, user-facing composer failure. Line is the 0-based index of the
// offending line, or -1 when the failure concerns the header or the totals.
type ValidationError struct {
	Message string
	Line    int
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return apperrors.ErrValidation }

// NewValidationError builds a ValidationError that is not tied to a line.
func NewValidationError(msg string) *ValidationError {
	return headerError(msg)
}

func headerError(msg string) *ValidationError {
	return &ValidationError{Message: msg, Line: -1}
}

func lineError(index int, format string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("Line %d: %s", index+1, format), Line: index}
}

// JournalLineDraft is one unsaved line of a journal entry.
type JournalLineDraft struct {
	AccountID   int64  `json:"account_id"`
	Description string `json:"description"`
	Debit       Amount `json:"debit"`
	Credit      Amount `json:"credit"`
}

// JournalEntryDraft is the unsaved, locally edited form of a journal entry.
type JournalEntryDraft struct {
	EntryDate       string             `json:"entry_date"`
	FiscalPeriodID  int64              `json:"fiscal_period_id"`
	Description     string             `json:"description"`
	ReferenceNumber string             `json:"reference_number,omitempty"`
	Lines           []JournalLineDraft `json:"lines"`
}

// DraftHeader holds the header fields of a draft.
type DraftHeader struct {
	EntryDate       string
	FiscalPeriodID  int64
	Description     string
	ReferenceNumber string
}

// Totals are always computed from the current lines, never stored.
type Totals struct {
	TotalDebit  Amount `json:"total_debit"`
	TotalCredit Amount `json:"total_credit"`
	IsBalanced  bool   `json:"is_balanced"`
}

// NewJournalEntryDraft returns an empty draft with two blank lines.
func NewJournalEntryDraft() JournalEntryDraft {
	return JournalEntryDraft{Lines: make([]JournalLineDraft, MinJournalLines)}
}

// DraftFromEntry seeds a draft with the values of an existing entry so it can be edited.
func DraftFromEntry(entry JournalEntry) JournalEntryDraft {
	d := JournalEntryDraft{
		EntryDate:       entry.EntryDate,
		FiscalPeriodID:  entry.FiscalPeriodID,
		Description:     entry.Description,
		ReferenceNumber: entry.ReferenceNumber,
		Lines:           make([]JournalLineDraft, 0, len(entry.Lines)),
	}
	for _, l := range entry.Lines {
		d.Lines = append(d.Lines, JournalLineDraft{
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	for len(d.Lines) < MinJournalLines {
		d.Lines = append(d.Lines, JournalLineDraft{})
	}
	return d
}

// Clone returns a deep copy so callers can hand out snapshots of a shared draft.
func (d JournalEntryDraft) Clone() JournalEntryDraft {
	out := d
	out.Lines = append([]JournalLineDraft(nil), d.Lines...)
	return out
}

// SetHeader replaces the header fields.
func (d *JournalEntryDraft) SetHeader(h DraftHeader) {
	d.EntryDate = h.EntryDate
	d.FiscalPeriodID = h.FiscalPeriodID
	d.Description = h.Description
	d.ReferenceNumber = h.ReferenceNumber
}

// AddLine appends a blank line.
func (d *JournalEntryDraft) AddLine() {
	d.Lines = append(d.Lines, JournalLineDraft{})
}

// RemoveLine deletes the line at index. It leaves the draft untouched and returns an error
// when that would leave fewer than two lines.
func (d *JournalEntryDraft) RemoveLine(index int) error {
	if len(d.Lines) <= MinJournalLines {
		return headerError(msgMinLines)
	}
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	return nil
}

// SetLineAccount sets the account of a line.
func (d *JournalEntryDraft) SetLineAccount(index int, accountID int64) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.Lines[index].AccountID = accountID
	return nil
}

// SetLineDescription sets the description of a line.
func (d *JournalEntryDraft) SetLineDescription(index int, description string) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.Lines[index].Description = description
	return nil
}

// SetLineDebit parses raw and stores it as the line's debit. A positive debit clears the
// credit; a zero debit leaves the credit alone.
func (d *JournalEntryDraft) SetLineDebit(index int, raw string) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	amount := ParseAmount(raw)
	d.Lines[index].Debit = amount
	if amount.IsPositive() {
		d.Lines[index].Credit = 0
	}
	return nil
}

// SetLineCredit is the mirror of SetLineDebit.
func (d *JournalEntryDraft) SetLineCredit(index int, raw string) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	amount := ParseAmount(raw)
	d.Lines[index].Credit = amount
	if amount.IsPositive() {
		d.Lines[index].Debit = 0
	}
	return nil
}

func (d *JournalEntryDraft) checkIndex(index int) error {
	if index < 0 || index >= len(d.Lines) {
		return &ValidationError{Message: fmt.Sprintf("Line %d does not exist", index+1), Line: index}
	}
	return nil
}

// ComputeTotals sums the current lines. A side whose sum would leave the int64 range sticks
// at the largest amount and the draft never counts as balanced.
func (d JournalEntryDraft) ComputeTotals() Totals {
	var (
		t        Totals
		overflow bool
	)
	for _, l := range d.Lines {
		var debitOK, creditOK bool
		t.TotalDebit, debitOK = addAmounts(t.TotalDebit, l.Debit)
		t.TotalCredit, creditOK = addAmounts(t.TotalCredit, l.Credit)
		overflow = overflow || !debitOK || !creditOK
	}
	t.IsBalanced = !overflow && t.TotalDebit == t.TotalCredit
	return t
}

func addAmounts(a, b Amount) (Amount, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64, false
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64, false
	}
	return a + b, true
}

// Validate returns the first failing rule, or nil when the draft can be submitted.
func (d JournalEntryDraft) Validate() error {
	if strings.TrimSpace(d.EntryDate) == "" {
		return headerError("Entry date is required")
	}
	if d.FiscalPeriodID == 0 {
		return headerError("Fiscal period is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return headerError("Description is required")
	}
	if len(d.Lines) < MinJournalLines {
		return headerError(msgMinLines)
	}

	for i, l := range d.Lines {
		switch {
		case l.AccountID == 0:
			return lineError(i, "Account is required")
		case strings.TrimSpace(l.Description) == "":
			return lineError(i, "Description is required")
		case l.Debit < 0 || l.Credit < 0:
			return lineError(i, "Amounts cannot be negative")
		case l.Debit > MaxAmount || l.Credit > MaxAmount:
			return lineError(i, fmt.Sprintf("Amount cannot exceed %s", MaxAmount))
		case l.Debit == 0 && l.Credit == 0:
			return lineError(i, "Either debit or credit must be greater than 0")
		case l.Debit > 0 && l.Credit > 0:
			return lineError(i, "Cannot have both debit and credit")
		}
	}

	if t := d.ComputeTotals(); !t.IsBalanced {
		return headerError(fmt.Sprintf("Total debit (%s) must equal total credit (%s)", t.TotalDebit, t.TotalCredit))
	}
	return nil
}

// JournalLinePayload is a line as the Ledger API accepts it.
type JournalLinePayload struct {
	AccountID   int64  `json:"account_id"`
	Description string `json:"description"`
	Debit       Amount `json:"debit"`
	Credit      Amount `json:"credit"`
}

// JournalEntryPayload is the body of the Ledger API's create and update journal entry calls.
type JournalEntryPayload struct {
	EntryDate       string               `json:"entry_date"`
	FiscalPeriodID  int64                `json:"fiscal_period_id"`
	Description     string               `json:"description"`
	ReferenceNumber string               `json:"reference_number,omitempty"`
	Lines           []JournalLinePayload `json:"lines"`
}

// ToSubmissionPayload trims every string and drops an empty reference number.
func (d JournalEntryDraft) ToSubmissionPayload() JournalEntryPayload {
	p := JournalEntryPayload{
		EntryDate:       strings.TrimSpace(d.EntryDate),
		FiscalPeriodID:  d.FiscalPeriodID,
		Description:     strings.TrimSpace(d.Description),
		ReferenceNumber: strings.TrimSpace(d.ReferenceNumber),
		Lines:           make([]JournalLinePayload, 0, len(d.Lines)),
	}
	for _, l := range d.Lines {
		p.Lines = append(p.Lines, JournalLinePayload{
			AccountID:   l.AccountID,
			Description: strings.TrimSpace(l.Description),
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	return p
}

// JournalDraftSession is a draft held by the server on behalf of one user.
type JournalDraftSession struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	// EntryID is set when the draft edits an existing entry instead of creating one.
	EntryID   *int64            `json:"entry_id,omitempty"`
	Draft     JournalEntryDraft `json:"draft"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// IsOwnedBy reports whether userID owns the session.
func (s JournalDraftSession) IsOwnedBy(userID string) bool {
	return s.OwnerID == userID
}

// Clone returns a deep copy of the session.
func (s JournalDraftSession) Clone() JournalDraftSession {
	out := s
	out.Draft = s.Draft.Clone()
	if s.EntryID != nil {
		id := *s.EntryID
		out.EntryID = &id
	}
	return out
}

// SubmissionOperation tells whether a submission created or updated an entry.
type SubmissionOperation string

const (
	SubmissionCreate SubmissionOperation = "create"
	SubmissionUpdate SubmissionOperation = "update"
)

// SubmissionRecord is the audit trail of one submission attempt.
type SubmissionRecord struct {
	ID           string              `json:"id"`
	DraftID      string              `json:"draft_id"`
	UserID       string              `json:"user_id"`
	Operation    SubmissionOperation `json:"operation"`
	EntryID      *int64              `json:"entry_id,omitempty"`
	EntryNumber  string              `json:"entry_number,omitempty"`
	TotalDebit   Amount              `json:"total_debit"`
	TotalCredit  Amount              `json:"total_credit"`
	LineCount    int                 `json:"line_count"`
	Succeeded    bool                `json:"succeeded"`
	ErrorMessage string              `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}
