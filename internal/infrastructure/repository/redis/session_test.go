package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/infrastructure/security"
)

func newTestStores(t *testing.T) (*miniredis.Miniredis, *SessionStore, *RevocationStore, *security.JwtAuth) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	auth := security.NewJwtAuth("test-secret", "farmer-ordering-system", time.Hour, 24*time.Hour)
	return mr, NewSessionStore(client, auth), NewRevocationStore(client), auth
}

func issueToken(t *testing.T, auth *security.JwtAuth, userID string) string {
	t.Helper()
	token, err := auth.CreateAccessToken(domain.Identity{
		UserID:   userID,
		Name:     "Fred",
		Email:    "f@x.com",
		Category: domain.CategoryFarmer,
	})
	require.NoError(t, err)
	return token
}

func TestSessionPutAndGet(t *testing.T) {
	mr, sessions, _, auth := newTestStores(t)
	ctx := context.Background()

	token := issueToken(t, auth, "u1")
	require.NoError(t, sessions.Put(ctx, "u1", token))

	record, err := sessions.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "u1", record.UserID)
	assert.Equal(t, token, record.Token)

	ttl := mr.TTL("session:u1")
	assert.Equal(t, 9000*time.Second, ttl)
}

func TestSessionGetMissingReturnsNil(t *testing.T) {
	_, sessions, _, _ := newTestStores(t)

	record, err := sessions.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestSessionPutOverwritesPrevious(t *testing.T) {
	// Two concurrent logins race on the same key; the last write wins and
	// only one session survives.
	_, sessions, _, auth := newTestStores(t)
	ctx := context.Background()

	first := issueToken(t, auth, "u1")
	second := issueToken(t, auth, "u1")

	require.NoError(t, sessions.Put(ctx, "u1", first))
	require.NoError(t, sessions.Put(ctx, "u1", second))

	record, err := sessions.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second, record.Token)
}

func TestSessionRemoveBlacklistsToken(t *testing.T) {
	mr, sessions, revocations, auth := newTestStores(t)
	ctx := context.Background()

	token := issueToken(t, auth, "u1")
	require.NoError(t, sessions.Put(ctx, "u1", token))
	require.NoError(t, sessions.Remove(ctx, "u1"))

	record, err := sessions.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, record)

	blacklisted, err := revocations.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// the blacklist entry must not outlive the token itself
	ttl := mr.TTL("jwt:blacklist:" + token)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestSessionRemoveMissingIsNoop(t *testing.T) {
	_, sessions, _, _ := newTestStores(t)

	assert.NoError(t, sessions.Remove(context.Background(), "nobody"))
}

func TestSessionRemoveExpiredTokenSkipsBlacklist(t *testing.T) {
	mr, sessions, revocations, _ := newTestStores(t)
	ctx := context.Background()

	expired := security.NewJwtAuth("test-secret", "farmer-ordering-system", -time.Minute, time.Hour)
	token, err := expired.CreateAccessToken(domain.Identity{UserID: "u1"})
	require.NoError(t, err)

	require.NoError(t, sessions.Put(ctx, "u1", token))
	require.NoError(t, sessions.Remove(ctx, "u1"))

	blacklisted, err := revocations.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, blacklisted)
	assert.False(t, mr.Exists("jwt:blacklist:"+token))
}
