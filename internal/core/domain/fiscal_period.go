package domain

import "time"

// FiscalPeriodStatus is derived from the Ledger API's is_closed flag.
type FiscalPeriodStatus string

const (
	FiscalPeriodOpen   FiscalPeriodStatus = "open"
	FiscalPeriodClosed FiscalPeriodStatus = "closed"
)

// FiscalPeriod is an accounting date range that is either open (editable) or closed.
type FiscalPeriod struct {
	ID          int64      `json:"id"`
	PeriodName  string     `json:"period_name"`
	PeriodStart string     `json:"period_start"`
	PeriodEnd   string     `json:"period_end"`
	IsClosed    bool       `json:"is_closed"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	ClosedBy    *int64     `json:"closed_by,omitempty"`
	AuditFields
}

// Status maps the closed flag onto the workflow state.
func (p FiscalPeriod) Status() FiscalPeriodStatus {
	if p.IsClosed {
		return FiscalPeriodClosed
	}
	return FiscalPeriodOpen
}

// FiscalPeriodInput is the create/update body for a fiscal period. Dates are YYYY-MM-DD.
type FiscalPeriodInput struct {
	PeriodName  string `json:"period_name"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}
