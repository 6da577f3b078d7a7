package domain

//go:generate mockgen -destination=../../mocks/mock_repositories.go -package=mocks github.com/codeprnv/login-security/internal/auth/domain UserRepository,SessionRepository,AttemptRepository
//go:generate mockgen -destination=../../mocks/mock_collaborators.go -package=mocks github.com/codeprnv/login-security/internal/auth/domain GeoResolver,Alerter

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateSecurityState(ctx context.Context, userID string, state SecurityState) error

	UpdateMFAEnrollment(ctx context.Context, userID, secret string, codes []BackupCode) error
	EnableMFA(ctx context.Context, userID, method string) error
	GetBackupCodes(ctx context.Context, userID string) ([]BackupCode, error)
	MarkBackupCodeUsed(ctx context.Context, codeID string, usedAt time.Time) error

	ListTrustedDevices(ctx context.Context, userID string) ([]TrustedDevice, error)
	UpsertTrustedDevice(ctx context.Context, device *TrustedDevice) error
}

type SessionRepository interface {
	Store(ctx context.Context, session *Session) error
	GetActiveByUserID(ctx context.Context, userID string, now time.Time) ([]Session, error)
	UpdateLastUsed(ctx context.Context, sessionID string, usedAt time.Time) error
	Delete(ctx context.Context, sessionID string) error
	DeleteAllByUserID(ctx context.Context, userID string) error
	DeleteOldestByUserID(ctx context.Context, userID string, keep int) error
	DeleteExpired(ctx context.Context, now time.Time) error
}

type AttemptRepository interface {
	Record(ctx context.Context, record *LoginRecord) error
	LatestSuccessful(ctx context.Context, userID string, since time.Time) (*LoginRecord, error)
	CountFailedByIP(ctx context.Context, email, ip string, since time.Time) (int, error)
}

// GeoResolver maps a client address to an approximate location. A nil
// location with a nil error means the address could not be resolved.
type GeoResolver interface {
	Lookup(ctx context.Context, ip string) (*Location, error)
}

// Alerter dispatches an out-of-band notification for a risky login.
type Alerter interface {
	SendSuspiciousLoginAlert(ctx context.Context, user *User, ip string, device DeviceInfo, loc *Location, reasons []string) error
}
