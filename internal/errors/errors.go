package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyInUse   = errors.New("email already registered")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidMFACode      = errors.New("invalid MFA code")
	ErrMFANotEnrolled      = errors.New("MFA enrollment not started")
	ErrRefreshTokenMissing = errors.New("refresh token required")
	ErrRefreshTokenInvalid = errors.New("invalid refresh token")
	ErrSessionNotFound     = errors.New("session expired")
	ErrSessionInactive     = errors.New("session timeout due to inactivity")
	ErrUserNotFound        = errors.New("user not found")
)

// AccountLockedError carries the unlock timestamp for 423 responses.
type AccountLockedError struct {
	UnlocksAt time.Time
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked until %s", e.UnlocksAt.Format(time.RFC3339))
}

// MFARequiredError signals that credentials were valid but a one-time code
// must be supplied before a session is granted.
type MFARequiredError struct {
	Method string
}

func (e *MFARequiredError) Error() string {
	return "MFA code required"
}

// PasswordExpiredError signals valid credentials with an expired password;
// the caller must force a reset instead of issuing a session.
type PasswordExpiredError struct {
	ExpiredAt time.Time
}

func (e *PasswordExpiredError) Error() string {
	return "password expired"
}

// ValidationError is a user-correctable input problem (400).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
