package domain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/ecomhub/finance_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

// Amount is a whole-rupiah monetary value. IDR has no subunit in practice, so amounts are
// integers and compared exactly.
type Amount int64

// MaxAmount is the largest amount a journal line accepts.
const MaxAmount = Amount(utils.MaxWholeAmount)

var (
	maxInt64Decimal = decimal.NewFromInt(math.MaxInt64)
	minInt64Decimal = decimal.NewFromInt(math.MinInt64)
)

// ParseAmount parses user-typed, possibly thousand-separated input. Invalid, empty or
// negative input yields 0.
func ParseAmount(raw string) Amount {
	return Amount(utils.ParseFormattedNumber(raw))
}

// IsPositive reports whether the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a > 0
}

// String renders the amount as the dashboard does, e.g. "Rp 100.000".
func (a Amount) String() string {
	return utils.FormatRupiah(int64(a))
}

// UnmarshalJSON accepts JSON numbers (integral or not) and numeric strings. Fractions are
// truncated.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid amount %s: %w", data, err)
		}
		data = []byte(unquoted)
	}
	if len(data) == 0 {
		*a = 0
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", data, err)
	}
	whole := d.Truncate(0)
	if whole.GreaterThan(maxInt64Decimal) || whole.LessThan(minInt64Decimal) {
		return fmt.Errorf("amount %s is out of range", data)
	}
	*a = Amount(utils.DecimalToWhole(whole))
	return nil
}
