package domain

import (
	"context"
	"time"
)

// Identity is the signed payload carried inside every token.
type Identity struct {
	UserID   string   `json:"userId"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Category Category `json:"category"`
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SessionRecord is the single live access token recorded per user.
type SessionRecord struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

type JwtTokenRepository interface {
	CreateAccessToken(identity Identity) (string, error)
	CreateRefreshToken(identity Identity) (string, error)
	VerifyToken(tokenString string) (*Identity, error)
	// RemainingTTL reports how long the token is still valid for,
	// computed from its embedded expiry claim.
	RemainingTTL(tokenString string) (time.Duration, error)
}

type SessionRepository interface {
	Put(ctx context.Context, userID, token string) error
	Get(ctx context.Context, userID string) (*SessionRecord, error)
	Remove(ctx context.Context, userID string) error
}

type RevocationRepository interface {
	Blacklist(ctx context.Context, token string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
	FlagPasswordChanged(ctx context.Context, userID string) error
	ClearPasswordChanged(ctx context.Context, userID string) error
	IsPasswordChanged(ctx context.Context, userID string) (bool, error)
	FlagDeactivated(ctx context.Context, userID string) error
	ClearDeactivated(ctx context.Context, userID string) error
	IsDeactivated(ctx context.Context, userID string) (bool, error)
}
