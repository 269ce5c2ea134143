package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

const (
	blacklistKeyPrefix     = "jwt:blacklist:"
	passwordChangedSetKey  = "user-password-changed-ids"
	deactivatedUsersSetKey = "user-deactivated-ids"
)

// RevocationStore tracks revoked tokens and per-user revocation flags.
// Blacklisted tokens live under individual keys with their own expiry
// matching the token's remaining lifetime, so stale entries fall out of
// Redis on their own instead of accumulating in a shared set.
type RevocationStore struct {
	client *redis.Client
}

func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

var _ domain.RevocationRepository = (*RevocationStore)(nil)

func blacklistKey(token string) string {
	return blacklistKeyPrefix + token
}

// Blacklist marks a token as revoked until it would have expired anyway.
// A non-positive ttl means the token is already dead and needs no entry.
func (r *RevocationStore) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, blacklistKey(token), "1", ttl).Err(); err != nil {
		return domain.NewDomainError(domain.ErrCodePersisting, "failed to blacklist the token", err)
	}
	return nil
}

func (r *RevocationStore) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	count, err := r.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, domain.NewDomainError(domain.ErrCodePersisting, "failed to check the token blacklist", err)
	}
	return count > 0, nil
}

func (r *RevocationStore) FlagPasswordChanged(ctx context.Context, userID string) error {
	if err := r.client.SAdd(ctx, passwordChangedSetKey, userID).Err(); err != nil {
		return domain.NewDomainError(domain.ErrCodePersisting, "failed to flag the password change", err)
	}
	return nil
}

func (r *RevocationStore) ClearPasswordChanged(ctx context.Context, userID string) error {
	if err := r.client.SRem(ctx, passwordChangedSetKey, userID).Err(); err != nil {
		return domain.NewDomainError(domain.ErrCodePersisting, "failed to clear the password change flag", err)
	}
	return nil
}

func (r *RevocationStore) IsPasswordChanged(ctx context.Context, userID string) (bool, error) {
	member, err := r.client.SIsMember(ctx, passwordChangedSetKey, userID).Result()
	if err != nil {
		return false, domain.NewDomainError(domain.ErrCodePersisting, "failed to check the password change flag", err)
	}
	return member, nil
}

func (r *RevocationStore) FlagDeactivated(ctx context.Context, userID string) error {
	if err := r.client.SAdd(ctx, deactivatedUsersSetKey, userID).Err(); err != nil {
		return domain.NewDomainError(domain.ErrCodePersisting, "failed to flag the deactivation", err)
	}
	return nil
}

func (r *RevocationStore) ClearDeactivated(ctx context.Context, userID string) error {
	if err := r.client.SRem(ctx, deactivatedUsersSetKey, userID).Err(); err != nil {
		return domain.NewDomainError(domain.ErrCodePersisting, "failed to clear the deactivation flag", err)
	}
	return nil
}

func (r *RevocationStore) IsDeactivated(ctx context.Context, userID string) (bool, error) {
	member, err := r.client.SIsMember(ctx, deactivatedUsersSetKey, userID).Result()
	if err != nil {
		return false, domain.NewDomainError(domain.ErrCodePersisting, "failed to check the deactivation flag", err)
	}
	return member, nil
}
