package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hasher := NewHasher(4)

	hashed, err := hasher.HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hashed)

	assert.NoError(t, hasher.VerifyPassword([]byte(hashed), []byte("secret")))
	assert.Error(t, hasher.VerifyPassword([]byte(hashed), []byte("wrong")))
}
