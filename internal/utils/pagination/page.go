package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Normalize clamps page/limit query values to what the Ledger API accepts.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	switch {
	case limit < 1:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return page, limit
}

// TotalPages computes the page count for total results at the given page size.
func TotalPages(totalResults, limit int) int {
	if limit <= 0 || totalResults <= 0 {
		return 0
	}
	return (totalResults + limit - 1) / limit
}
