package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/observability"
)

type AuthLoginResponse struct {
	Success               bool       `json:"success"`
	Message               string     `json:"message"`
	Token                 string     `json:"token"`
	RefreshToken          string     `json:"refreshToken"`
	PasswordExpiryMessage string     `json:"passwordExpiryMessage,omitempty"`
	PasswordExpiresAt     *time.Time `json:"passwordExpiresAt,omitempty"`
}

type AuthLogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AuthRefreshResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type AuthService struct {
	Users       domain.UserRepository
	Sessions    domain.SessionRepository
	Revocations domain.RevocationRepository
	Tokens      domain.JwtTokenRepository
	Hasher      domain.Password
	Logger      domain.LoggingRepository
}

func NewAuthService(
	users domain.UserRepository,
	sessions domain.SessionRepository,
	revocations domain.RevocationRepository,
	tokens domain.JwtTokenRepository,
	hasher domain.Password,
	logger domain.LoggingRepository,
) *AuthService {
	return &AuthService{
		Users:       users,
		Sessions:    sessions,
		Revocations: revocations,
		Tokens:      tokens,
		Hasher:      hasher,
		Logger:      logger,
	}
}

// passwordExpiryAdvisory turns the stored expiry date into the message a
// logging-in user should see. An expiry more than three days away, or no
// expiry at all, produces no advisory.
func passwordExpiryAdvisory(expiresAt *time.Time, now time.Time) string {
	if expiresAt == nil {
		return ""
	}
	daysLeft := int(math.Round(expiresAt.Sub(now).Hours() / 24))
	switch {
	case daysLeft <= 0:
		return "Password is already expired. You must change your password now."
	case daysLeft <= 3:
		return fmt.Sprintf("You have %d day(s) left until your password expires.", daysLeft)
	default:
		return ""
	}
}

func (s *AuthService) Login(ctx context.Context, req domain.LoginUser) (*AuthLoginResponse, error) {
	reqID := observability.GetRequestID(ctx)
	log := s.Logger.With("service.name", "login", "http.request.id", reqID, "event.category", []string{"authentication"})
	log.Info("user login started", "event.type", []string{"start"})

	user, err := s.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Error(
			"failed to find user by email",
			"event.action", "get_user_by_email",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}
	if user == nil {
		log.Warn(
			"login attempted with unknown email",
			"event.action", "get_user_by_email",
			"event.type", []string{"error", "denied"},
			"event.outcome", "failed")
		return nil, domain.ErrInvalidCredentials
	}

	advisory := passwordExpiryAdvisory(user.PasswordExpiresAt, time.Now())

	if err := s.Hasher.VerifyPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn(
			"failed to verify user password",
			"user.id", user.ID,
			"event.action", "verify_user_password",
			"event.type", []string{"error", "denied"},
			"event.outcome", "failed")
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.Revocations.ClearPasswordChanged(ctx, user.ID); err != nil {
		log.Error(
			"failed to clear password changed flag",
			"user.id", user.ID,
			"event.action", "clear_password_changed",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	identity := domain.Identity{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Category: user.Category,
	}

	accessToken, err := s.Tokens.CreateAccessToken(identity)
	if err != nil {
		log.Error(
			"failed to create access token",
			"user.id", user.ID,
			"event.action", "create_access_token",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}
	refreshToken, err := s.Tokens.CreateRefreshToken(identity)
	if err != nil {
		log.Error(
			"failed to create refresh token",
			"user.id", user.ID,
			"event.action", "create_refresh_token",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	// Removing the previous session blacklists its token, so a second
	// login invalidates the first device's access token.
	if err := s.Sessions.Remove(ctx, user.ID); err != nil {
		log.Error(
			"failed to remove the previous session",
			"user.id", user.ID,
			"event.action", "remove_previous_session",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}
	if err := s.Sessions.Put(ctx, user.ID, accessToken); err != nil {
		log.Error(
			"failed to store the session",
			"user.id", user.ID,
			"event.action", "store_session",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	if err := s.Users.SetLoggedIn(ctx, user.ID, true); err != nil {
		log.Error(
			"failed to mark user as logged in",
			"user.id", user.ID,
			"event.action", "set_logged_in",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	log.Info(
		"user successfully logged in",
		"user.id", user.ID,
		"event.type", []string{"end", "allowed"},
		"event.outcome", "success")

	return &AuthLoginResponse{
		Success:               true,
		Message:               "Login successful",
		Token:                 accessToken,
		RefreshToken:          refreshToken,
		PasswordExpiryMessage: advisory,
		PasswordExpiresAt:     user.PasswordExpiresAt,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, accessToken string) (*AuthLogoutResponse, error) {
	reqID := observability.GetRequestID(ctx)
	log := s.Logger.With("service.name", "logout", "http.request.id", reqID, "event.category", []string{"authentication"})
	log.Info("user logout started", "event.type", []string{"start"})

	identity, err := s.Tokens.VerifyToken(accessToken)
	if err != nil {
		log.Warn(
			"failed to verify access token",
			"event.action", "verify_access_token",
			"event.type", []string{"error", "denied"},
			"event.outcome", "failed")
		return nil, domain.ErrInvalidJWTToken
	}

	// Session removal carries the blacklist write, so the token dies with
	// the session.
	if err := s.Sessions.Remove(ctx, identity.UserID); err != nil {
		log.Error(
			"failed to remove the session",
			"user.id", identity.UserID,
			"event.action", "remove_session",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	if err := s.Users.SetLoggedIn(ctx, identity.UserID, false); err != nil {
		log.Error(
			"failed to mark user as logged out",
			"user.id", identity.UserID,
			"event.action", "set_logged_out",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	log.Info(
		"user successfully logged out",
		"user.id", identity.UserID,
		"event.type", []string{"end"},
		"event.outcome", "success")

	return &AuthLogoutResponse{Success: true, Message: "Logout successful"}, nil
}

// Refresh exchanges a valid refresh token plus the current access token for
// a fresh access token. The old access token is blacklisted for whatever
// lifetime it had left and the session is replaced in place.
func (s *AuthService) Refresh(ctx context.Context, refreshToken, accessToken string) (*AuthRefreshResponse, error) {
	reqID := observability.GetRequestID(ctx)
	log := s.Logger.With("service.name", "jwt-refresh", "http.request.id", reqID, "event.category", []string{"authentication"})
	log.Info("token refresh started", "event.type", []string{"start"})

	if _, err := s.Tokens.VerifyToken(refreshToken); err != nil {
		log.Warn(
			"failed to verify refresh token",
			"event.action", "verify_refresh_token",
			"event.type", []string{"error", "denied"},
			"event.outcome", "failed")
		return nil, domain.ErrInvalidRefreshToken
	}

	identity, err := s.Tokens.VerifyToken(accessToken)
	if err != nil {
		log.Warn(
			"failed to verify access token",
			"event.action", "verify_access_token",
			"event.type", []string{"error", "denied"},
			"event.outcome", "failed")
		return nil, domain.ErrInvalidRefreshToken
	}

	remaining, err := s.Tokens.RemainingTTL(accessToken)
	if err != nil {
		log.Warn(
			"failed to read access token expiry",
			"event.action", "remaining_ttl",
			"event.type", []string{"error", "denied"},
			"event.outcome", "failed")
		return nil, domain.ErrInvalidRefreshToken
	}
	if err := s.Revocations.Blacklist(ctx, accessToken, remaining); err != nil {
		log.Error(
			"failed to blacklist the old access token",
			"user.id", identity.UserID,
			"event.action", "blacklist_access_token",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	newToken, err := s.Tokens.CreateAccessToken(*identity)
	if err != nil {
		log.Error(
			"failed to create access token",
			"user.id", identity.UserID,
			"event.action", "create_access_token",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	if err := s.Sessions.Put(ctx, identity.UserID, newToken); err != nil {
		log.Error(
			"failed to replace the session",
			"user.id", identity.UserID,
			"event.action", "store_session",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	log.Info(
		"token successfully refreshed",
		"user.id", identity.UserID,
		"event.type", []string{"end", "creation"},
		"event.outcome", "success")

	return &AuthRefreshResponse{Success: true, Token: newToken}, nil
}
