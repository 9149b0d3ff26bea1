package domain

// AdPlatform identifies the advertising platform a budget is allocated to.
type AdPlatform string

const (
	MetaAds   AdPlatform = "meta_ads"
	GoogleAds AdPlatform = "google_ads"
	TikTokAds AdPlatform = "tiktok_ads"
	ShopeeAds AdPlatform = "shopee_ads"
	LazadaAds AdPlatform = "lazada_ads"
	BlibliAds AdPlatform = "blibli_ads"
)

// AdBudget is a monthly spend allowance for one ad platform.
type AdBudget struct {
	ID           int64      `json:"id"`
	Platform     AdPlatform `json:"platform"`
	MonthYear    string     `json:"month_year"`
	BudgetAmount Amount     `json:"budget_amount"`
	SpentAmount  Amount     `json:"spent_amount"`
	Notes        string     `json:"notes,omitempty"`
	AuditFields
}

// Remaining is the unspent part of the budget; negative when overspent.
func (b AdBudget) Remaining() Amount {
	return b.BudgetAmount - b.SpentAmount
}

// AdBudgetInput is the create/update body for an ad budget. MonthYear is YYYY-MM.
type AdBudgetInput struct {
	Platform     AdPlatform `json:"platform"`
	MonthYear    string     `json:"month_year"`
	BudgetAmount Amount     `json:"budget_amount"`
	SpentAmount  Amount     `json:"spent_amount"`
	Notes        string     `json:"notes,omitempty"`
}

// AdBudgetSpentInput updates only the spent amount.
type AdBudgetSpentInput struct {
	SpentAmount Amount `json:"spent_amount"`
}

// AdBudgetListParams filters the ad budget list.
type AdBudgetListParams struct {
	ListParams
	Platform  AdPlatform
	MonthYear string
}
