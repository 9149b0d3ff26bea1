package domain

import (
	"bytes"
	"encoding/json"
)

// InvestmentType classifies how capital was provided.
type InvestmentType string

const (
	InvestmentEquity          InvestmentType = "equity"
	InvestmentDebt            InvestmentType = "debt"
	InvestmentConvertibleNote InvestmentType = "convertible_note"
	InvestmentGrant           InvestmentType = "grant"
)

// InvestorStatus is the repayment state of an investment.
type InvestorStatus string

const (
	InvestorActive    InvestorStatus = "active"
	InvestorFullyPaid InvestorStatus = "fully_paid"
	InvestorDefaulted InvestorStatus = "defaulted"
	InvestorCancelled InvestorStatus = "cancelled"
)

// IsValid reports whether s is a known investor status.
func (s InvestorStatus) IsValid() bool {
	switch s {
	case InvestorActive, InvestorFullyPaid, InvestorDefaulted, InvestorCancelled:
		return true
	}
	return false
}

// CapitalInvestor is a single capital contribution and its repayment progress.
type CapitalInvestor struct {
	ID                  int64          `json:"id"`
	InvestorName        string         `json:"investor_name"`
	InvestmentType      InvestmentType `json:"investment_type"`
	Amount              Amount         `json:"amount"`
	InvestmentDate      string         `json:"investment_date"`
	ReturnPercentage    *float64       `json:"return_percentage,omitempty"`
	MaturityDate        string         `json:"maturity_date,omitempty"`
	ContractDocumentURL string         `json:"contract_document_url,omitempty"`
	Notes               string         `json:"notes,omitempty"`
	ReturnPaid          Amount         `json:"return_paid"`
	Status              InvestorStatus `json:"status"`
	AuditFields
}

// CapitalInvestorInput is the create/update body for a capital investor.
type CapitalInvestorInput struct {
	InvestorName        string         `json:"investor_name"`
	InvestmentType      InvestmentType `json:"investment_type"`
	Amount              Amount         `json:"amount"`
	InvestmentDate      string         `json:"investment_date"`
	ReturnPercentage    *float64       `json:"return_percentage,omitempty"`
	MaturityDate        string         `json:"maturity_date,omitempty"`
	ContractDocumentURL string         `json:"contract_document_url,omitempty"`
	Notes               string         `json:"notes,omitempty"`
}

// TotalInvestment aggregates every investor's contribution.
type TotalInvestment struct {
	TotalAmount     Amount `json:"total_amount"`
	TotalReturnPaid Amount `json:"total_return_paid"`
	TotalRemaining  Amount `json:"total_remaining"`
}

// UnmarshalJSON accepts either the object form or a bare number, which some deployments
// return for the total endpoint.
func (t *TotalInvestment) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] != '{' {
		var total Amount
		if err := total.UnmarshalJSON(trimmed); err != nil {
			return err
		}
		*t = TotalInvestment{TotalAmount: total, TotalRemaining: total}
		return nil
	}

	type plain TotalInvestment
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*t = TotalInvestment(p)
	return nil
}
