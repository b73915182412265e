package models

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("user not authenticated")
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrEmailTaken         = errors.New("user already registered")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrInvalidQuery       = errors.New("invalid query")
)

type AuthErrorKind int

const (
	AuthUnknown AuthErrorKind = iota
	AuthInvalidCredentials
	AuthRateLimited
)

func (k AuthErrorKind) String() string {
	switch k {
	case AuthInvalidCredentials:
		return "InvalidCredentials"
	case AuthRateLimited:
		return "RateLimited"
	default:
		return "Unknown"
	}
}

type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return "auth: " + e.Kind.String()
	}
	return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ClassifyAuthError maps any failure of the auth service onto the three kinds callers
// can act on. nil stays nil.
func ClassifyAuthError(err error) error {
	if err == nil {
		return nil
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}

	kind := AuthUnknown
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		kind = AuthInvalidCredentials
	case errors.Is(err, ErrRateLimited):
		kind = AuthRateLimited
	}
	return &AuthError{Kind: kind, Err: err}
}

type ValidationKind string

const (
	EmptyRequiredField ValidationKind = "EmptyRequiredField"
	InvalidEmail       ValidationKind = "InvalidEmail"
	PasswordTooShort   ValidationKind = "PasswordTooShort"
)

type ValidationError struct {
	Field string
	Kind  ValidationKind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Kind)
}
