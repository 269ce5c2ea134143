package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

const (
	accessTokenSubject  = "access-token"
	refreshTokenSubject = "refresh-token"
)

// IdentityClaims carries the authenticated user inside the token payload
// under a "user" key so that verification can hand the identity straight
// back to the request context without a database round trip.
type IdentityClaims struct {
	User domain.Identity `json:"user"`
	jwt.RegisteredClaims
}

type JwtAuth struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewJwtAuth(secret, issuer string, accessTTL, refreshTTL time.Duration) *JwtAuth {
	return &JwtAuth{
		Secret:     []byte(secret),
		Issuer:     issuer,
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}
}

var _ domain.JwtTokenRepository = (*JwtAuth)(nil)

func (j *JwtAuth) CreateAccessToken(identity domain.Identity) (string, error) {
	return j.createToken(identity, accessTokenSubject, j.AccessTTL)
}

func (j *JwtAuth) CreateRefreshToken(identity domain.Identity) (string, error) {
	return j.createToken(identity, refreshTokenSubject, j.RefreshTTL)
}

func (j *JwtAuth) createToken(identity domain.Identity, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			// Tokens are revoked individually, so every one needs a
			// distinct signature even within the same second.
			ID:        uuid.NewString(),
			Issuer:    j.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.Secret)
	if err != nil {
		return "", domain.ErrInvalidJWTToken.Wrap(err)
	}
	return signed, nil
}

// VerifyToken parses and validates a signed token and returns the identity
// embedded in its claims. Every failure mode collapses to the same opaque
// error so callers cannot distinguish expired from forged tokens.
func (j *JwtAuth) VerifyToken(tokenString string) (*domain.Identity, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}
	return &claims.User, nil
}

// RemainingTTL reports how long a token stays valid from now. Tokens at or
// past their expiry report a zero duration.
func (j *JwtAuth) RemainingTTL(tokenString string) (time.Duration, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return 0, err
	}
	if claims.ExpiresAt == nil {
		return 0, domain.ErrInvalidJWTToken
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (j *JwtAuth) parse(tokenString string) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidJWTToken
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer))
	if err != nil {
		return nil, domain.ErrInvalidJWTToken.Wrap(err)
	}
	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidJWTToken
	}
	return claims, nil
}
