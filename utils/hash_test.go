package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("lelo-1980")
	require.NoError(t, err)

	assert.NotEqual(t, "lelo-1980", hash)
	assert.True(t, CheckPassword(hash, "lelo-1980"))
	assert.False(t, CheckPassword(hash, "lelo-1981"))
	assert.False(t, CheckPassword("not-a-hash", "lelo-1980"))
}
