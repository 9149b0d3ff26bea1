package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckSecret(t *testing.T) {
	hash, err := HashSecret("svc-key-123")
	require.NoError(t, err)

	assert.True(t, CheckSecretHash("svc-key-123", hash))
	assert.False(t, CheckSecretHash("svc-key-124", hash))
	assert.False(t, CheckSecretHash("svc-key-123", ""))
}
