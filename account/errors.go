package account

import (
	"errors"
	"fmt"
)

// TokenErrorKind classifies token failures reported by the account API.
type TokenErrorKind int

const (
	// KindBadToken means the token is unknown to the account API (HTTP 404).
	KindBadToken TokenErrorKind = iota + 1
	// KindExpiredToken means the token existed but is no longer valid
	// (HTTP 410). An expired token is also a bad token: predicates for the
	// broader kinds match it too.
	KindExpiredToken
)

// String returns the kind name.
func (k TokenErrorKind) String() string {
	switch k {
	case KindBadToken:
		return "bad_token"
	case KindExpiredToken:
		return "expired_token"
	default:
		return "unknown"
	}
}

// TokenError means the configured auth token cannot be used to determine
// permissions. It wraps the transport error that revealed the problem.
type TokenError struct {
	// Kind classifies the failure.
	Kind TokenErrorKind
	// StatusCode is the HTTP status the account API answered with.
	StatusCode int
	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return fmt.Sprintf("account: %s (HTTP %d)", e.Kind, e.StatusCode)
}

// Unwrap returns the underlying transport error.
func (e *TokenError) Unwrap() error {
	return e.Err
}

// NewBadTokenError creates a TokenError for an unknown token.
func NewBadTokenError(err error) *TokenError {
	return &TokenError{Kind: KindBadToken, StatusCode: 404, Err: err}
}

// NewExpiredTokenError creates a TokenError for an expired token.
func NewExpiredTokenError(err error) *TokenError {
	return &TokenError{Kind: KindExpiredToken, StatusCode: 410, Err: err}
}

// IsInvalidToken checks if an error is any kind of token failure. Callers
// that only need to know "re-authentication is required" should use this.
func IsInvalidToken(err error) bool {
	var e *TokenError
	return errors.As(err, &e)
}

// IsBadToken checks if an error means the token cannot be used, whether
// unknown or expired.
func IsBadToken(err error) bool {
	var e *TokenError
	return errors.As(err, &e) && (e.Kind == KindBadToken || e.Kind == KindExpiredToken)
}

// IsExpiredToken checks if an error means the token was valid once but has
// expired.
func IsExpiredToken(err error) bool {
	var e *TokenError
	return errors.As(err, &e) && e.Kind == KindExpiredToken
}
