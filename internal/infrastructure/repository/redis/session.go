package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 9000 * time.Second
)

// SessionStore keeps at most one live session per user under
// "session:<userId>". Replacing or removing a session also blacklists the
// token it contained, so a logged-out token cannot be replayed.
type SessionStore struct {
	client *redis.Client
	tokens domain.JwtTokenRepository
}

func NewSessionStore(client *redis.Client, tokens domain.JwtTokenRepository) *SessionStore {
	return &SessionStore{client: client, tokens: tokens}
}

var _ domain.SessionRepository = (*SessionStore)(nil)

func sessionKey(userID string) string {
	return sessionKeyPrefix + userID
}

func (s *SessionStore) Put(ctx context.Context, userID, token string) error {
	record := domain.SessionRecord{UserID: userID, Token: token}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal the session record: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(userID), payload, sessionTTL).Err(); err != nil {
		return domain.NewDomainError(domain.ErrCodePersisting, "failed to store the session", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, userID string) (*domain.SessionRecord, error) {
	payload, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to read the session", err)
	}
	var record domain.SessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the session record: %w", err)
	}
	return &record, nil
}

// Remove deletes the user's session and blacklists the token it held for
// its remaining lifetime. An expired or already-absent session is not an
// error. The delete and the blacklist write travel in one pipeline so a
// session never disappears without its token being revoked.
func (s *SessionStore) Remove(ctx context.Context, userID string) error {
	record, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if record == nil {
		return nil
	}

	var remaining time.Duration
	if ttl, err := s.tokens.RemainingTTL(record.Token); err == nil {
		remaining = ttl
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKey(userID))
	if remaining > 0 {
		pipe.Set(ctx, blacklistKey(record.Token), "1", remaining)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return domain.NewDomainError(domain.ErrCodePersisting, "failed to remove the session", err)
	}
	return nil
}
