package domain

import (
	"fmt"
)

const (
	ErrCodeValidation   string = "VALIDATION_ERROR"
	ErrCodeNotFound     string = "NOT_FOUND"
	ErrCodeUnauthorized string = "UNAUTHORIZED"
	ErrCodeForbidden    string = "FORBIDDEN"
	ErrCodeConflict     string = "CONFLICT"
	ErrCodeInternal     string = "INTERNAL_ERROR"
	ErrCodePersisting   string = "PERSISTING_ERROR"
	ErrCodeExternal     string = "EXTERNAL_ERROR"
	ErrCodeRateLimited  string = "RATE_LIMITED"
)

type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"cause"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Message:%s, Cause:%v", e.Message, e.Cause)
	}
	return fmt.Sprintf("Message:%s", e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func NewDomainError(code, msg string, cause error) *DomainError {
	return &DomainError{Code: code, Message: msg, Cause: cause}
}

// Wrap returns a copy of the error carrying cause as its underlying error,
// so sentinel errors can be matched with errors.Is while keeping context.
func (e *DomainError) Wrap(cause error) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Cause: cause}
}

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

var ErrDbConnection = &DomainError{Code: ErrCodeInternal, Message: "failed to connect to the database"}
var ErrInvalidJWTToken = &DomainError{Code: ErrCodeUnauthorized, Message: "Invalid token"}
var ErrInvalidCredentials = &DomainError{Code: ErrCodeValidation, Message: "Invalid email or password"}
var ErrInvalidRefreshToken = &DomainError{Code: ErrCodeUnauthorized, Message: "Invalid refresh token"}
var ErrAccessDenied = &DomainError{Code: ErrCodeUnauthorized, Message: "Access denied"}
