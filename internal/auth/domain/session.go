package domain

import "time"

// Session is one rotation-credential grant. Only the bcrypt fingerprint of
// the refresh token is stored; the raw token never touches the database.
type Session struct {
	ID         string
	UserID     string
	TokenHash  string
	Device     DeviceInfo
	IPAddress  string
	Location   Location
	CreatedAt  time.Time
	LastUsedAt time.Time
	ExpiresAt  time.Time
}

// Usable reports whether the session can still be redeemed: unexpired and
// used within the inactivity limit.
func (s *Session) Usable(now time.Time, inactivityLimit time.Duration) bool {
	return now.Before(s.ExpiresAt) && now.Sub(s.LastUsedAt) < inactivityLimit
}

// LoginRecord is an append-only audit entry for one login attempt. UserID is
// empty when the submitted email matched no account.
type LoginRecord struct {
	ID               string
	UserID           string
	Email            string
	IPAddress        string
	Location         Location
	Device           DeviceInfo
	Status           string
	Suspicious       bool
	SuspicionReasons []string
	MFAVerified      bool
	Timestamp        time.Time
}
