package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/codeprnv/login-security/internal/auth/domain"
)

// DB is the subset of pgxpool.Pool the repository uses; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, username, password_hash, password_changed_at, password_expires_at,
		mfa_enabled, mfa_method, mfa_secret,
		failed_login_attempts, account_locked, locked_until,
		role, created_at, updated_at`

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1;`, userColumns)
	return r.getUser(ctx, query, email)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1 LIMIT 1;`, userColumns)
	return r.getUser(ctx, query, username)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1;`, userColumns)
	return r.getUser(ctx, query, id)
}

func (r *PostgresRepository) getUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	row := r.db.QueryRow(ctx, query, arg)

	var (
		user        domain.User
		mfaMethod   *string
		mfaSecret   *string
		lockedUntil *time.Time
	)

	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&user.PasswordChangedAt, &user.PasswordExpiresAt,
		&user.MFAEnabled, &mfaMethod, &mfaSecret,
		&user.Security.FailedLoginAttempts, &user.Security.Locked, &lockedUntil,
		&user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if mfaMethod != nil {
		user.MFAMethod = *mfaMethod
	}
	if mfaSecret != nil {
		user.MFASecret = *mfaSecret
	}
	if lockedUntil != nil {
		user.Security.LockedUntil = *lockedUntil
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (
			id, email, username, password_hash, password_changed_at, password_expires_at,
			mfa_enabled, failed_login_attempts, account_locked, role, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, user.ID, user.Email, user.Username, user.PasswordHash,
		user.PasswordChangedAt, user.PasswordExpiresAt,
		user.MFAEnabled, user.Security.FailedLoginAttempts, user.Security.Locked,
		user.Role, user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *PostgresRepository) UpdateSecurityState(ctx context.Context, userID string, state domain.SecurityState) error {
	var lockedUntil *time.Time
	if !state.LockedUntil.IsZero() {
		lockedUntil = &state.LockedUntil
	}

	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET failed_login_attempts = $2, account_locked = $3, locked_until = $4, updated_at = now()
		WHERE id = $1
	`, userID, state.FailedLoginAttempts, state.Locked, lockedUntil)

	return err
}

func (r *PostgresRepository) UpdateMFAEnrollment(ctx context.Context, userID, secret string, codes []domain.BackupCode) error {
	if _, err := r.db.Exec(ctx, `
		UPDATE users SET mfa_secret = $2, updated_at = now() WHERE id = $1
	`, userID, secret); err != nil {
		return err
	}

	// Re-running setup replaces any previous code set.
	if _, err := r.db.Exec(ctx, `DELETE FROM backup_codes WHERE user_id = $1`, userID); err != nil {
		return err
	}

	for _, code := range codes {
		if _, err := r.db.Exec(ctx, `
			INSERT INTO backup_codes (id, user_id, code_hash, used, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, code.ID, code.UserID, code.CodeHash, code.Used, code.CreatedAt); err != nil {
			return err
		}
	}

	return nil
}

func (r *PostgresRepository) EnableMFA(ctx context.Context, userID, method string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET mfa_enabled = TRUE, mfa_method = $2, updated_at = now() WHERE id = $1
	`, userID, method)
	return err
}

func (r *PostgresRepository) GetBackupCodes(ctx context.Context, userID string) ([]domain.BackupCode, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, code_hash, used, used_at, created_at
		FROM backup_codes
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get backup codes: %w", err)
	}
	defer rows.Close()

	var codes []domain.BackupCode
	for rows.Next() {
		var code domain.BackupCode
		if err := rows.Scan(&code.ID, &code.UserID, &code.CodeHash, &code.Used, &code.UsedAt, &code.CreatedAt); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	return codes, rows.Err()
}

func (r *PostgresRepository) MarkBackupCodeUsed(ctx context.Context, codeID string, usedAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE backup_codes SET used = TRUE, used_at = $2 WHERE id = $1
	`, codeID, usedAt)
	return err
}

func (r *PostgresRepository) ListTrustedDevices(ctx context.Context, userID string) ([]domain.TrustedDevice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, device_fingerprint, ip_address, browser, os, device_type, country, city, last_seen, created_at
		FROM trusted_devices
		WHERE user_id = $1
		ORDER BY last_seen DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trusted devices: %w", err)
	}
	defer rows.Close()

	var devices []domain.TrustedDevice
	for rows.Next() {
		var d domain.TrustedDevice
		if err := rows.Scan(&d.ID, &d.UserID, &d.Fingerprint, &d.IPAddress,
			&d.Browser, &d.OS, &d.DeviceType, &d.Country, &d.City, &d.LastSeen, &d.CreatedAt); err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}

	return devices, rows.Err()
}

func (r *PostgresRepository) UpsertTrustedDevice(ctx context.Context, device *domain.TrustedDevice) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO trusted_devices (
			id, user_id, device_fingerprint, ip_address, browser, os, device_type, country, city, last_seen, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id, device_fingerprint)
		DO UPDATE SET
			last_seen = EXCLUDED.last_seen,
			ip_address = EXCLUDED.ip_address,
			browser = EXCLUDED.browser,
			os = EXCLUDED.os,
			device_type = EXCLUDED.device_type,
			country = EXCLUDED.country,
			city = EXCLUDED.city
	`, device.ID, device.UserID, device.Fingerprint, device.IPAddress,
		device.Browser, device.OS, device.DeviceType, device.Country, device.City,
		device.LastSeen, device.CreatedAt)

	return err
}
