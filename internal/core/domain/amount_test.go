package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Amount
	}{
		{in: `150000`, want: 150000},
		{in: `"150000.00"`, want: 150000},
		{in: `1500.75`, want: 1500},
		{in: `null`, want: 0},
		{in: `""`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var a domain.Amount
			require.NoError(t, json.Unmarshal([]byte(tt.in), &a))
			assert.Equal(t, tt.want, a)
		})
	}

	var a domain.Amount
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`9223372036854775808`), &a))
	assert.Error(t, json.Unmarshal([]byte(`"-9223372036854775809"`), &a))
	require.NoError(t, json.Unmarshal([]byte(`9223372036854775807.9`), &a))
	assert.Equal(t, domain.Amount(math.MaxInt64), a)
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "Rp 100.000", domain.Amount(100000).String())
	assert.Equal(t, "Rp 0", domain.Amount(0).String())
	assert.Equal(t, domain.Amount(1500000), domain.ParseAmount("1.500.000"))
}

func TestTotalInvestment_UnmarshalJSON(t *testing.T) {
	var fromNumber domain.TotalInvestment
	require.NoError(t, json.Unmarshal([]byte(`500000000`), &fromNumber))
	assert.Equal(t, domain.Amount(500000000), fromNumber.TotalAmount)

	var fromObject domain.TotalInvestment
	require.NoError(t, json.Unmarshal([]byte(`{"total_amount":"900","total_return_paid":100,"total_remaining":800}`), &fromObject))
	assert.Equal(t, domain.TotalInvestment{TotalAmount: 900, TotalReturnPaid: 100, TotalRemaining: 800}, fromObject)
}
