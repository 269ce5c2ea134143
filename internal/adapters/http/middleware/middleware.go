package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/utils"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/observability"
)

const identityKey = "identity"

var bodyValidator = newBodyValidator()

func newBodyValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("password_strength", utils.PasswordValidator); err != nil {
		panic(err)
	}
	return v
}

// GetIdentity returns the authenticated caller attached by the auth gate.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}

// BearerToken extracts the token from the Authorization header without
// judging it. The auth gate and the logout handler both need the raw value.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authenticate gates every protected route. A request is admitted only
// when it carries a bearer token that is not blacklisted, verifies, and
// belongs to a user who has neither been deactivated nor changed their
// password since the token was issued. All token-level rejections answer
// with the same message so callers cannot probe which check rejected
// them. A failing revocation lookup is a server fault, not a rejection,
// and surfaces as 500 through the audit recorder.
func Authenticate(tokens domain.JwtTokenRepository, revocations domain.RevocationRepository, logger domain.LoggingRepository, recorder domain.ErrorRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.With("service.name", "auth_gate", "http.request.id", c.GetString("RequestID"))

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpErr := utils.HttpError{Message: "Authorization header missing", Code: domain.ErrCodeUnauthorized, StatusCode: http.StatusUnauthorized}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}

		tokenString := BearerToken(c)
		if tokenString == "" {
			httpErr := utils.HttpError{Message: "No token provided", Code: domain.ErrCodeUnauthorized, StatusCode: http.StatusUnauthorized}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}

		denied := func(reason string) {
			log.Warn("request denied", "event.action", reason, "event.outcome", "failed")
			httpErr := utils.HttpError{Message: "Invalid token", Code: domain.ErrCodeUnauthorized, StatusCode: http.StatusUnauthorized}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
		}

		blacklisted, err := revocations.IsBlacklisted(c.Request.Context(), tokenString)
		if err != nil {
			log.Error("failed to check the token blacklist", "error.message", err.Error())
			utils.AbortWithError(c, recorder, err)
			return
		}
		if blacklisted {
			denied("token_blacklisted")
			return
		}

		identity, err := tokens.VerifyToken(tokenString)
		if err != nil {
			denied("token_verification")
			return
		}

		deactivated, err := revocations.IsDeactivated(c.Request.Context(), identity.UserID)
		if err != nil {
			log.Error("failed to check the deactivation flag", "error.message", err.Error())
			utils.AbortWithError(c, recorder, err)
			return
		}
		if deactivated {
			denied("user_deactivated")
			return
		}

		passwordChanged, err := revocations.IsPasswordChanged(c.Request.Context(), identity.UserID)
		if err != nil {
			log.Error("failed to check the password change flag", "error.message", err.Error())
			utils.AbortWithError(c, recorder, err)
			return
		}
		if passwordChanged {
			denied("password_changed")
			return
		}

		c.Set(identityKey, *identity)
		c.Next()
	}
}

func AddRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Set("RequestID", requestID)

		ctx := observability.WithRequestID(c.Request.Context(), requestID)
		ctx = observability.WithRequestStartTime(ctx)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func CheckContentType() gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")

		parts := strings.Split(contentType, ";")
		if len(parts) == 0 || strings.TrimSpace(strings.ToLower(parts[0])) != "application/json" {
			httpErr := utils.HttpError{Message: "invalid content type, expected application/json", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}
		c.Next()
	}
}

func CheckContentBody[T any](maxsize int) gin.HandlerFunc {
	return func(c *gin.Context) {

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(maxsize))

		var u T

		err := c.ShouldBindJSON(&u)

		if err != nil {
			var syntaxErr *json.SyntaxError
			var unmarshalTypeErr *json.UnmarshalTypeError
			var invalidUnmarshalErr *json.InvalidUnmarshalError

			switch {

			case errors.Is(err, io.EOF):
				httpErr := utils.HttpError{Message: "body must not be empty", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
				return

			case errors.Is(err, io.ErrUnexpectedEOF):
				httpErr := utils.HttpError{Message: "body contains badly-formed json", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
				return

			case err.Error() == "http: request body too large":
				httpErr := utils.HttpError{Message: fmt.Sprintf("body must not be larger than %d bytes", maxsize), Code: domain.ErrCodeValidation, StatusCode: http.StatusRequestEntityTooLarge}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
				return

			case errors.As(err, &syntaxErr):
				httpErr := utils.HttpError{Message: fmt.Sprintf("body contains badly-formed json at character %d", syntaxErr.Offset), Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
				return

			case errors.As(err, &unmarshalTypeErr):
				httpErr := utils.HttpError{Message: fmt.Sprintf("body contains incorrect json type for %q at %d", unmarshalTypeErr.Field, unmarshalTypeErr.Offset), Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
				return

			case strings.HasPrefix(err.Error(), "json: unknown field"):
				fieldname := strings.TrimPrefix(err.Error(), "json: unknown field")
				httpErr := utils.HttpError{Message: fmt.Sprintf("body contains unknown key %s", fieldname), Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
				return

			case errors.As(err, &invalidUnmarshalErr):
				httpErr := utils.HttpError{Message: fmt.Sprintf("error unmarshaling json: %s", invalidUnmarshalErr.Error()), Code: domain.ErrCodeValidation, StatusCode: http.StatusInternalServerError}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
				return

			default:
				httpErr := utils.HttpError{Message: fmt.Sprintf("error happened: %s", err.Error()), Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
				return

			}
		}

		dec := json.NewDecoder(c.Request.Body)
		dec.DisallowUnknownFields()
		err = dec.Decode(&struct{}{})
		if err != io.EOF {
			httpErr := utils.HttpError{Message: "body must contain only one json value", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}

		err = bodyValidator.Struct(u)
		if err != nil {
			httpErr := utils.HttpError{Message: err.Error(), Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}
		c.Set("payload", u)
		c.Next()

	}
}

func RateLimiterMiddleware(limiter *RedisRateLimiter, logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		log := logger.With("service", "rate_limiter", "request_id", c.GetString("RequestID"))
		if ip == "" {
			log.Warn("extract_user_ip", "reason", "invalid_user_ip")
			httpErr := utils.HttpError{Message: "invalid ip", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}

		allowed, err := limiter.AllowRequest(c.Request.Context(), ip)
		if err != nil {
			log.Error("rate_limit_check", "reason", err.Error(), "user_ip", ip)
			utils.AbortWithError(c, nil, err)
			return
		}
		if !allowed {
			log.Warn("rate_limit_check", "reason", "rate_limit_exceeded", "user_ip", ip)
			httpErr := utils.HttpError{Message: "Rate Limit Exceeded", Code: domain.ErrCodeRateLimited, StatusCode: http.StatusTooManyRequests}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}
		c.Next()
	}
}

func LoggingRequestMiddleware(logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {

		logger.Info("http_request_start",
			"request_id", c.GetString("RequestID"),
			"method", c.Request.Method,
			"user-agent", c.Request.UserAgent(),
			"path", c.FullPath())

		c.Next()
	}
}

func PanicRecoveryMiddleware(logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {

		defer func() {
			if r := recover(); r != nil {
				logger.Error("internal server error",
					"request_id", c.GetString("RequestID"),
					"method", c.Request.Method,
					"path", c.FullPath(),
					"reason", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)

				httpErr := utils.HttpError{Message: "internal server error", Code: domain.ErrCodeInternal, StatusCode: http.StatusInternalServerError}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			}
		}()

		c.Next()
	}
}
