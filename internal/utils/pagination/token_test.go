package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2025, 12, 28, 14, 30, 45, 123456789, time.UTC)
	id := "8b0f7d1e-3a7c-4f55-9d8e-2f4b7c1d9a10"

	token := EncodeCursor(createdAt, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	gotTime, gotID, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime), "created_at should survive the round trip")
	assert.Equal(t, id, gotID)
}

func TestEncodeCursor_NormalizesToUTC(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	local := time.Date(2025, 1, 2, 8, 0, 0, 0, jakarta)

	gotTime, _, err := DecodeCursor(EncodeCursor(local, "x"))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, gotTime.Location())
	assert.True(t, local.Equal(gotTime))
}

func TestDecodeCursor_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%"},
		{"missing separator", encodeRaw("2025-01-01T00:00:00Z")},
		{"empty id", encodeRaw("2025-01-01T00:00:00Z|")},
		{"bad time", encodeRaw("yesterday|abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeCursor(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name              string
		page, limit       int
		wantPage, wantLim int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 25, 1, 25},
		{"limit capped", 2, 500, 2, 100},
		{"untouched", 4, 50, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := Normalize(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLim, limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func encodeRaw(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}
