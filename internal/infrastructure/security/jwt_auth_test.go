package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

func newTestJwtAuth(accessTTL, refreshTTL time.Duration) *JwtAuth {
	return NewJwtAuth("test-secret", "farmer-ordering-system", accessTTL, refreshTTL)
}

func testIdentity() domain.Identity {
	return domain.Identity{
		UserID:   "64f1b2a9c3d4e5f601234567",
		Name:     "Fred",
		Email:    "f@x.com",
		Category: domain.CategoryFarmer,
	}
}

func TestCreateAndVerifyAccessToken(t *testing.T) {
	auth := newTestJwtAuth(time.Hour, 24*time.Hour)

	token, err := auth.CreateAccessToken(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2a9c3d4e5f601234567", identity.UserID)
	assert.Equal(t, "f@x.com", identity.Email)
	assert.Equal(t, domain.CategoryFarmer, identity.Category)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	auth := newTestJwtAuth(time.Hour, 24*time.Hour)
	other := NewJwtAuth("other-secret", "farmer-ordering-system", time.Hour, 24*time.Hour)

	token, err := auth.CreateAccessToken(testIdentity())
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidJWTToken)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	auth := newTestJwtAuth(-time.Minute, 24*time.Hour)

	token, err := auth.CreateAccessToken(testIdentity())
	require.NoError(t, err)

	_, err = auth.VerifyToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidJWTToken)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	auth := newTestJwtAuth(time.Hour, 24*time.Hour)

	_, err := auth.VerifyToken("not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidJWTToken)
}

func TestVerifyTokenRejectsWrongIssuer(t *testing.T) {
	other := NewJwtAuth("test-secret", "someone-else", time.Hour, 24*time.Hour)
	auth := newTestJwtAuth(time.Hour, 24*time.Hour)

	token, err := other.CreateAccessToken(testIdentity())
	require.NoError(t, err)

	_, err = auth.VerifyToken(token)
	require.Error(t, err)
}

func TestRemainingTTL(t *testing.T) {
	auth := newTestJwtAuth(time.Hour, 24*time.Hour)

	token, err := auth.CreateAccessToken(testIdentity())
	require.NoError(t, err)

	remaining, err := auth.RemainingTTL(token)
	require.NoError(t, err)
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestRefreshTokenUsesItsOwnTTL(t *testing.T) {
	auth := newTestJwtAuth(time.Hour, 24*time.Hour)

	token, err := auth.CreateRefreshToken(testIdentity())
	require.NoError(t, err)

	remaining, err := auth.RemainingTTL(token)
	require.NoError(t, err)
	assert.Greater(t, remaining, 23*time.Hour)
}
