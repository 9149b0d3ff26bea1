package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxWholeAmount is the largest amount user input may carry, just under one quadrillion
// rupiah. Thousands of such lines still sum without overflowing int64.
const MaxWholeAmount int64 = 999_999_999_999_999

var maxWholeDecimal = decimal.NewFromInt(MaxWholeAmount)

// FormatThousands renders n with "." as the thousands separator, e.g. 1500000 -> "1.500.000".
func FormatThousands(n int64) string {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = -u
	}
	digits := strconv.FormatUint(u, 10)

	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatRupiah formats a whole-rupiah amount the way the dashboard displays it.
// Example: 100000 returns "Rp 100.000", -2500 returns "-Rp 2.500".
func FormatRupiah(amount int64) string {
	if amount < 0 {
		return "-Rp " + FormatThousands(amount)[1:]
	}
	return "Rp " + FormatThousands(amount)
}

// ParseFormattedNumber turns user-typed, id-ID formatted input ("Rp 1.500.000", "250000",
// "1.000,75") into a non-negative whole amount. Anything unparseable, negative or above
// MaxWholeAmount yields 0; fractions are truncated because rupiah has no subunit.
func ParseFormattedNumber(raw string) int64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "Rp")
	s = strings.TrimPrefix(s, "IDR")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || d.GreaterThan(maxWholeDecimal) {
		return 0
	}
	return d.IntPart()
}

// DecimalToWhole truncates a decimal amount coming back from the Ledger API to whole rupiah.
func DecimalToWhole(d decimal.Decimal) int64 {
	return d.Truncate(0).IntPart()
}
