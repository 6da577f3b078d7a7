package domain

import "time"

const (
	MFAMethodTOTP = "totp"

	LoginStatusSuccess = "success"
	LoginStatusFailed  = "failed"
)

type User struct {
	ID                string
	Email             string
	Username          string
	PasswordHash      string
	PasswordChangedAt time.Time
	PasswordExpiresAt time.Time
	PasswordHistory   []PasswordHistoryEntry

	MFAEnabled bool
	MFAMethod  string
	MFASecret  string

	Security SecurityState

	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PasswordExpired reports whether the stored password is past its horizon.
// A zero expiry means the password never expires.
func (u *User) PasswordExpired(now time.Time) bool {
	return !u.PasswordExpiresAt.IsZero() && now.After(u.PasswordExpiresAt)
}

type PasswordHistoryEntry struct {
	Hash      string
	ChangedAt time.Time
}

// SecurityState is the cohesive lockout state of one account. All mutations
// go through its methods so the counter/lock invariants stay in one place.
type SecurityState struct {
	FailedLoginAttempts int
	Locked              bool
	LockedUntil         time.Time
}

// IsLocked reports whether the account is locked at the given instant.
// LockedUntil is only meaningful while Locked is set.
func (s *SecurityState) IsLocked(now time.Time) bool {
	return s.Locked && now.Before(s.LockedUntil)
}

// RecordFailure increments the failed counter and, once the threshold is
// reached, locks the account for lockFor. Returns true when this failure
// triggered the lock.
func (s *SecurityState) RecordFailure(now time.Time, threshold int, lockFor time.Duration) bool {
	s.FailedLoginAttempts++
	if s.FailedLoginAttempts >= threshold {
		s.Locked = true
		s.LockedUntil = now.Add(lockFor)
		return true
	}
	return false
}

// Reset clears the counter and lock after a successful full authentication.
func (s *SecurityState) Reset() {
	s.FailedLoginAttempts = 0
	s.Locked = false
	s.LockedUntil = time.Time{}
}

// Lock locks the account unconditionally until the given time (fraud report).
func (s *SecurityState) Lock(until time.Time) {
	s.Locked = true
	s.LockedUntil = until
}

type TrustedDevice struct {
	ID          string
	UserID      string
	Fingerprint string
	IPAddress   string
	Browser     string
	OS          string
	DeviceType  string
	Country     string
	City        string
	LastSeen    time.Time
	CreatedAt   time.Time
}

type BackupCode struct {
	ID        string
	UserID    string
	CodeHash  string
	Used      bool
	UsedAt    *time.Time
	CreatedAt time.Time
}

type DeviceInfo struct {
	UserAgent  string
	Browser    string
	OS         string
	DeviceType string
}

type Location struct {
	Country   string
	City      string
	Latitude  float64
	Longitude float64
}
