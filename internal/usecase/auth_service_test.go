package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
	redisrepo "github.com/rwagatenga/FarmerOrderingSystemBackend/internal/infrastructure/repository/redis"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/infrastructure/security"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (n nopLogger) With(args ...any) domain.LoggingRepository {
	return n
}

type mockUserRepo struct {
	getByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	getByIDFunc     func(ctx context.Context, id string) (*domain.User, error)
	getByPhoneFunc  func(ctx context.Context, phone string) (*domain.User, error)
	createFunc      func(ctx context.Context, u *domain.User) (*domain.User, error)
	updateFunc      func(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error)
	setLoggedInFunc func(ctx context.Context, id string, loggedIn bool) error
	listFunc        func(ctx context.Context, category domain.Category, page, perPage int) ([]domain.User, int64, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return u, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.getByPhoneFunc != nil {
		return m.getByPhoneFunc(ctx, phone)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, upd)
	}
	return nil, nil
}

func (m *mockUserRepo) SetLoggedIn(ctx context.Context, id string, loggedIn bool) error {
	if m.setLoggedInFunc != nil {
		return m.setLoggedInFunc(ctx, id, loggedIn)
	}
	return nil
}

func (m *mockUserRepo) ListByCategory(ctx context.Context, category domain.Category, page, perPage int) ([]domain.User, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, category, page, perPage)
	}
	return nil, 0, nil
}

type authFixture struct {
	svc         *AuthService
	users       *mockUserRepo
	sessions    domain.SessionRepository
	revocations domain.RevocationRepository
	tokens      *security.JwtAuth
	hasher      *security.Hasher
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	tokens := security.NewJwtAuth("test-secret", "farmer-ordering-system", time.Hour, 24*time.Hour)
	sessions := redisrepo.NewSessionStore(client, tokens)
	revocations := redisrepo.NewRevocationStore(client)
	hasher := security.NewHasher(4)
	users := &mockUserRepo{}

	return &authFixture{
		svc:         NewAuthService(users, sessions, revocations, tokens, hasher, nopLogger{}),
		users:       users,
		sessions:    sessions,
		revocations: revocations,
		tokens:      tokens,
		hasher:      hasher,
	}
}

func (f *authFixture) seedUser(t *testing.T, expiresAt *time.Time) *domain.User {
	t.Helper()
	hashed, err := f.hasher.HashPassword("secret")
	require.NoError(t, err)
	return &domain.User{
		ID:                "64f1b2a9c3d4e5f601234567",
		Name:              "Fred",
		Email:             "f@x.com",
		Category:          domain.CategoryFarmer,
		Password:          hashed,
		PasswordExpiresAt: expiresAt,
	}
}

func TestLoginSuccess(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user := f.seedUser(t, nil)
	f.users.getByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		if email == "f@x.com" {
			return user, nil
		}
		return nil, nil
	}
	var loggedIn *bool
	f.users.setLoggedInFunc = func(ctx context.Context, id string, v bool) error {
		loggedIn = &v
		return nil
	}

	resp, err := f.svc.Login(ctx, domain.LoginUser{Email: "f@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Empty(t, resp.PasswordExpiryMessage)

	require.NotNil(t, loggedIn)
	assert.True(t, *loggedIn)

	record, err := f.sessions.Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, resp.Token, record.Token)

	identity, err := f.tokens.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), domain.LoginUser{Email: "nobody@x.com", Password: "secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	user := f.seedUser(t, nil)
	f.users.getByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return user, nil
	}

	_, err := f.svc.Login(context.Background(), domain.LoginUser{Email: "f@x.com", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginClearsPasswordChangedFlag(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user := f.seedUser(t, nil)
	f.users.getByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return user, nil
	}
	require.NoError(t, f.revocations.FlagPasswordChanged(ctx, user.ID))

	_, err := f.svc.Login(ctx, domain.LoginUser{Email: "f@x.com", Password: "secret"})
	require.NoError(t, err)

	flagged, err := f.revocations.IsPasswordChanged(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, flagged)
}

func TestSecondLoginInvalidatesFirstToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user := f.seedUser(t, nil)
	f.users.getByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return user, nil
	}

	first, err := f.svc.Login(ctx, domain.LoginUser{Email: "f@x.com", Password: "secret"})
	require.NoError(t, err)
	second, err := f.svc.Login(ctx, domain.LoginUser{Email: "f@x.com", Password: "secret"})
	require.NoError(t, err)

	blacklisted, err := f.revocations.IsBlacklisted(ctx, first.Token)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	blacklisted, err = f.revocations.IsBlacklisted(ctx, second.Token)
	require.NoError(t, err)
	assert.False(t, blacklisted)

	record, err := f.sessions.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, second.Token, record.Token)
}

func TestPasswordExpiryAdvisory(t *testing.T) {
	now := time.Now()

	t.Run("no expiry date means no advisory", func(t *testing.T) {
		assert.Empty(t, passwordExpiryAdvisory(nil, now))
	})

	t.Run("far away expiry means no advisory", func(t *testing.T) {
		at := now.Add(30 * 24 * time.Hour)
		assert.Empty(t, passwordExpiryAdvisory(&at, now))
	})

	t.Run("two days left", func(t *testing.T) {
		at := now.Add(48 * time.Hour)
		assert.Equal(t, "You have 2 day(s) left until your password expires.", passwordExpiryAdvisory(&at, now))
	})

	t.Run("one day left", func(t *testing.T) {
		at := now.Add(26 * time.Hour)
		assert.Equal(t, "You have 1 day(s) left until your password expires.", passwordExpiryAdvisory(&at, now))
	})

	t.Run("already expired", func(t *testing.T) {
		at := now.Add(-time.Hour)
		assert.Equal(t, "Password is already expired. You must change your password now.", passwordExpiryAdvisory(&at, now))
	})
}

func TestLoginCarriesExpiryAdvisory(t *testing.T) {
	f := newAuthFixture(t)

	expiresAt := time.Now().Add(48 * time.Hour)
	user := f.seedUser(t, &expiresAt)
	f.users.getByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return user, nil
	}

	resp, err := f.svc.Login(context.Background(), domain.LoginUser{Email: "f@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "You have 2 day(s) left until your password expires.", resp.PasswordExpiryMessage)
	require.NotNil(t, resp.PasswordExpiresAt)
}

func TestLogoutRemovesSessionAndBlacklistsToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user := f.seedUser(t, nil)
	f.users.getByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return user, nil
	}
	var loggedIn *bool
	f.users.setLoggedInFunc = func(ctx context.Context, id string, v bool) error {
		loggedIn = &v
		return nil
	}

	login, err := f.svc.Login(ctx, domain.LoginUser{Email: "f@x.com", Password: "secret"})
	require.NoError(t, err)

	resp, err := f.svc.Logout(ctx, login.Token)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	record, err := f.sessions.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, record)

	blacklisted, err := f.revocations.IsBlacklisted(ctx, login.Token)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	require.NotNil(t, loggedIn)
	assert.False(t, *loggedIn)
}

func TestLogoutRejectsGarbageToken(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Logout(context.Background(), "garbage")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidJWTToken)
}

func TestRefreshReplacesAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user := f.seedUser(t, nil)
	f.users.getByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return user, nil
	}

	login, err := f.svc.Login(ctx, domain.LoginUser{Email: "f@x.com", Password: "secret"})
	require.NoError(t, err)

	resp, err := f.svc.Refresh(ctx, login.RefreshToken, login.Token)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.NotEqual(t, login.Token, resp.Token)

	// the old access token dies with the refresh
	blacklisted, err := f.revocations.IsBlacklisted(ctx, login.Token)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	record, err := f.sessions.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Token, record.Token)

	identity, err := f.tokens.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
}

func TestRefreshRejectsInvalidRefreshToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user := f.seedUser(t, nil)
	f.users.getByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return user, nil
	}
	login, err := f.svc.Login(ctx, domain.LoginUser{Email: "f@x.com", Password: "secret"})
	require.NoError(t, err)

	_, err = f.svc.Refresh(ctx, "garbage", login.Token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
}

func TestRefreshRejectsInvalidAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user := f.seedUser(t, nil)
	f.users.getByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return user, nil
	}
	login, err := f.svc.Login(ctx, domain.LoginUser{Email: "f@x.com", Password: "secret"})
	require.NoError(t, err)

	_, err = f.svc.Refresh(ctx, login.RefreshToken, "garbage")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
}
