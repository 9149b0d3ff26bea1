package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalDraftRequest starts a composer session. EntryID seeds the draft from an
// existing draft-status entry; omit it for a new entry.
type CreateJournalDraftRequest struct {
	EntryID *int64 `json:"entry_id" binding:"omitempty,gt=0"`
}

// UpdateDraftHeaderRequest replaces the header of a draft. Fields may be incomplete while the
// user is still typing; completeness is reported by validation, not by binding.
type UpdateDraftHeaderRequest struct {
	EntryDate       string `json:"entry_date" binding:"omitempty,datetime=2006-01-02"`
	FiscalPeriodID  int64  `json:"fiscal_period_id" binding:"gte=0"`
	Description     string `json:"description" binding:"max=500"`
	ReferenceNumber string `json:"reference_number" binding:"max=100"`
}

// ToDraftHeader converts the request to the domain header.
func (r UpdateDraftHeaderRequest) ToDraftHeader() domain.DraftHeader {
	return domain.DraftHeader{
		EntryDate:       r.EntryDate,
		FiscalPeriodID:  r.FiscalPeriodID,
		Description:     r.Description,
		ReferenceNumber: r.ReferenceNumber,
	}
}

// RawAmount is an amount exactly as the user typed it. It accepts a JSON string or a JSON
// number so that both "1.500.000" and 1500000 reach the composer's parser.
type RawAmount string

// UnmarshalJSON keeps the content of strings for the id-ID parser, where "." groups
// thousands. JSON numbers use "." as the decimal point, so they are truncated to whole
// digits here instead.
func (r *RawAmount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*r = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*r = RawAmount(s)
		return nil
	}
	d, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", trimmed, err)
	}
	*r = RawAmount(d.Truncate(0).String())
	return nil
}

// UpdateDraftLineRequest edits one line. Only the fields present are applied.
type UpdateDraftLineRequest struct {
	AccountID   *int64     `json:"account_id" binding:"omitempty,gte=0"`
	Description *string    `json:"description" binding:"omitempty,max=500"`
	Debit       *RawAmount `json:"debit"`
	Credit      *RawAmount `json:"credit"`
}

// JournalDraftLineResponse is one line of a draft as the dashboard renders it.
type JournalDraftLineResponse struct {
	Index       int           `json:"index"`
	AccountID   int64         `json:"account_id"`
	Description string        `json:"description"`
	Debit       domain.Amount `json:"debit"`
	Credit      domain.Amount `json:"credit"`
}

// JournalDraftResponse is a draft with its recomputed totals and first validation failure.
type JournalDraftResponse struct {
	ID              string                     `json:"id"`
	EntryID         *int64                     `json:"entry_id,omitempty"`
	EntryDate       string                     `json:"entry_date"`
	FiscalPeriodID  int64                      `json:"fiscal_period_id"`
	Description     string                     `json:"description"`
	ReferenceNumber string                     `json:"reference_number"`
	Lines           []JournalDraftLineResponse `json:"lines"`
	TotalDebit      domain.Amount              `json:"total_debit"`
	TotalCredit     domain.Amount              `json:"total_credit"`
	TotalDebitText  string                     `json:"total_debit_formatted"`
	TotalCreditText string                     `json:"total_credit_formatted"`
	IsBalanced      bool                       `json:"is_balanced"`
	IsValid         bool                       `json:"is_valid"`
	ValidationError string                     `json:"validation_error,omitempty"`
	ValidationLine  *int                       `json:"validation_line,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

// ToJournalDraftResponse converts a draft session, computing totals and validation on the fly.
func ToJournalDraftResponse(s *domain.JournalDraftSession) JournalDraftResponse {
	d := s.Draft
	totals := d.ComputeTotals()
	res := JournalDraftResponse{
		ID:              s.ID,
		EntryID:         s.EntryID,
		EntryDate:       d.EntryDate,
		FiscalPeriodID:  d.FiscalPeriodID,
		Description:     d.Description,
		ReferenceNumber: d.ReferenceNumber,
		Lines:           make([]JournalDraftLineResponse, len(d.Lines)),
		TotalDebit:      totals.TotalDebit,
		TotalCredit:     totals.TotalCredit,
		TotalDebitText:  totals.TotalDebit.String(),
		TotalCreditText: totals.TotalCredit.String(),
		IsBalanced:      totals.IsBalanced,
		IsValid:         true,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	for i, l := range d.Lines {
		res.Lines[i] = JournalDraftLineResponse{
			Index:       i,
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}

	if vErr := AsValidationError(d.Validate()); vErr != nil {
		res.IsValid = false
		res.ValidationError = vErr.Message
		if vErr.Line >= 0 {
			line := vErr.Line
			res.ValidationLine = &line
		}
	}
	return res
}

// AsValidationError returns err as a *domain.ValidationError, or nil.
func AsValidationError(err error) *domain.ValidationError {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}
	return nil
}

// ListSubmissionsParams defines query parameters for listing submission attempts.
type ListSubmissionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListSubmissionsResponse wraps a page of submission records and the token for the next one.
type ListSubmissionsResponse struct {
	Submissions []domain.SubmissionRecord `json:"submissions"`
	NextToken   *string                   `json:"nextToken,omitempty"`
}

// SubmitDraftResponse is returned when the Ledger API accepted a draft.
type SubmitDraftResponse struct {
	Entry   *domain.JournalEntry `json:"entry"`
	Message string               `json:"message"`
}
