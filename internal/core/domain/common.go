package domain

import "time"

// AuditFields holds the audit columns the Ledger API returns on every entity.
// User references are numeric ids on the Ledger side.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy *int64    `json:"created_by,omitempty"`
	UpdatedBy *int64    `json:"updated_by,omitempty"`
}

// Page is the paginated list envelope used by every list endpoint of the Ledger API.
type Page[T any] struct {
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	TotalResults int `json:"total_results"`
	TotalPages   int `json:"total_pages"`
	Results      []T `json:"results"`
}

// ListParams are the query parameters shared by all paginated list calls.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// DateRange filters report queries. Dates are YYYY-MM-DD; empty means unbounded.
type DateRange struct {
	AccountID int64
	StartDate string
	EndDate   string
}
