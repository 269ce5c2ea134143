package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Revoked tokens live under one expiring key each instead of a shared set,
// so Redis expires stale entries on its own.
func TestBlacklistTokenExpires(t *testing.T) {
	mr, _, revocations, _ := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, revocations.Blacklist(ctx, "some-token", time.Minute))

	blacklisted, err := revocations.IsBlacklisted(ctx, "some-token")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	mr.FastForward(2 * time.Minute)

	blacklisted, err = revocations.IsBlacklisted(ctx, "some-token")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestBlacklistNonPositiveTTLWritesNothing(t *testing.T) {
	mr, _, revocations, _ := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, revocations.Blacklist(ctx, "dead-token", 0))
	require.NoError(t, revocations.Blacklist(ctx, "deader-token", -time.Minute))

	assert.False(t, mr.Exists("jwt:blacklist:dead-token"))
	assert.False(t, mr.Exists("jwt:blacklist:deader-token"))
}

func TestPasswordChangedFlag(t *testing.T) {
	_, _, revocations, _ := newTestStores(t)
	ctx := context.Background()

	flagged, err := revocations.IsPasswordChanged(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, flagged)

	require.NoError(t, revocations.FlagPasswordChanged(ctx, "u1"))

	flagged, err = revocations.IsPasswordChanged(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, flagged)

	require.NoError(t, revocations.ClearPasswordChanged(ctx, "u1"))

	flagged, err = revocations.IsPasswordChanged(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, flagged)
}

func TestDeactivatedFlag(t *testing.T) {
	_, _, revocations, _ := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, revocations.FlagDeactivated(ctx, "u1"))

	deactivated, err := revocations.IsDeactivated(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, deactivated)

	deactivated, err = revocations.IsDeactivated(ctx, "u2")
	require.NoError(t, err)
	assert.False(t, deactivated)

	require.NoError(t, revocations.ClearDeactivated(ctx, "u1"))

	deactivated, err = revocations.IsDeactivated(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, deactivated)
}
