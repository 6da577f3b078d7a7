package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/codeprnv/login-security/internal/auth/domain"
)

func (r *PostgresRepository) Record(ctx context.Context, record *domain.LoginRecord) error {
	var userID *string
	if record.UserID != "" {
		userID = &record.UserID
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (
			id, user_id, email, ip_address, country, city, latitude, longitude,
			user_agent, browser, os, device_type,
			status, suspicious, suspicion_reasons, mfa_verified, attempt_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, record.ID, userID, record.Email, record.IPAddress,
		record.Location.Country, record.Location.City, record.Location.Latitude, record.Location.Longitude,
		record.Device.UserAgent, record.Device.Browser, record.Device.OS, record.Device.DeviceType,
		record.Status, record.Suspicious, record.SuspicionReasons, record.MFAVerified, record.Timestamp)

	return err
}

// LatestSuccessful returns the most recent successful login for the user
// after since, or (nil, nil) when there is none.
func (r *PostgresRepository) LatestSuccessful(ctx context.Context, userID string, since time.Time) (*domain.LoginRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, ip_address, country, city, latitude, longitude, attempt_time
		FROM login_attempts
		WHERE user_id = $1 AND status = 'success' AND attempt_time > $2
		ORDER BY attempt_time DESC
		LIMIT 1
	`, userID, since)

	var record domain.LoginRecord
	record.UserID = userID
	record.Status = domain.LoginStatusSuccess

	err := row.Scan(&record.ID, &record.Email, &record.IPAddress,
		&record.Location.Country, &record.Location.City,
		&record.Location.Latitude, &record.Location.Longitude,
		&record.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest successful login: %w", err)
	}

	return &record, nil
}

func (r *PostgresRepository) CountFailedByIP(ctx context.Context, email, ip string, since time.Time) (int, error) {
	row := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM login_attempts
		WHERE email = $1 AND ip_address = $2 AND status = 'failed' AND attempt_time > $3
	`, email, ip, since)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count failed attempts: %w", err)
	}

	return count, nil
}
