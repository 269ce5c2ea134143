package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
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

type captureRecorder struct {
	records []domain.ErrorRecord
}

func (r *captureRecorder) Record(rec domain.ErrorRecord) {
	r.records = append(r.records, rec)
}

type gateFixture struct {
	router      *gin.Engine
	tokens      *security.JwtAuth
	revocations *redisrepo.RevocationStore
	recorder    *captureRecorder
	mr          *miniredis.Miniredis
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	tokens := security.NewJwtAuth("test-secret", "farmer-ordering-system", time.Hour, 24*time.Hour)
	revocations := redisrepo.NewRevocationStore(client)
	recorder := &captureRecorder{}

	router := gin.New()
	router.Use(Authenticate(tokens, revocations, nopLogger{}, recorder))
	router.GET("/protected", func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": identity.Email})
	})

	return &gateFixture{router: router, tokens: tokens, revocations: revocations, recorder: recorder, mr: mr}
}

func (f *gateFixture) request(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func issueToken(t *testing.T, tokens *security.JwtAuth) string {
	t.Helper()
	token, err := tokens.CreateAccessToken(domain.Identity{
		UserID:   "u1",
		Name:     "Fred",
		Email:    "f@x.com",
		Category: domain.CategoryFarmer,
	})
	require.NoError(t, err)
	return token
}

func TestAuthGateMissingHeader(t *testing.T) {
	f := newGateFixture(t)

	rec := f.request(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization header missing", decodeMessage(t, rec))
}

func TestAuthGateEmptyBearer(t *testing.T) {
	f := newGateFixture(t)

	for _, header := range []string{"Bearer", "Bearer ", "Basic abc"} {
		rec := f.request(t, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "No token provided", decodeMessage(t, rec))
	}
}

func TestAuthGateGarbageToken(t *testing.T) {
	f := newGateFixture(t)

	rec := f.request(t, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeMessage(t, rec))
}

func TestAuthGateBlacklistedToken(t *testing.T) {
	f := newGateFixture(t)
	token := issueToken(t, f.tokens)
	require.NoError(t, f.revocations.Blacklist(context.Background(), token, time.Hour))

	rec := f.request(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeMessage(t, rec))
}

func TestAuthGateDeactivatedUser(t *testing.T) {
	f := newGateFixture(t)
	token := issueToken(t, f.tokens)
	require.NoError(t, f.revocations.FlagDeactivated(context.Background(), "u1"))

	rec := f.request(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeMessage(t, rec))
}

func TestAuthGatePasswordChanged(t *testing.T) {
	f := newGateFixture(t)
	token := issueToken(t, f.tokens)
	require.NoError(t, f.revocations.FlagPasswordChanged(context.Background(), "u1"))

	rec := f.request(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeMessage(t, rec))
}

func TestAuthGateCacheFailureIsServerError(t *testing.T) {
	// A failing revocation lookup must not masquerade as a rejection. It
	// comes back as 500 and lands in the audit recorder.
	f := newGateFixture(t)
	token := issueToken(t, f.tokens)
	f.mr.SetError("connection lost")

	rec := f.request(t, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to check the token blacklist", decodeMessage(t, rec))

	require.Len(t, f.recorder.records, 1)
	assert.Equal(t, http.StatusInternalServerError, f.recorder.records[0].Code)
}

func TestAuthGateAdmitsValidToken(t *testing.T) {
	f := newGateFixture(t)
	token := issueToken(t, f.tokens)

	rec := f.request(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "f@x.com", body.Email)
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Bearer  abc", "abc"},
		{"Basic abc", ""},
		{"abc", ""},
		{"", ""},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}
		assert.Equal(t, tc.want, BearerToken(c), "header %q", tc.header)
	}
}
