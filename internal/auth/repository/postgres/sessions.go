package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/codeprnv/login-security/internal/auth/domain"
)

func (r *PostgresRepository) Store(ctx context.Context, session *domain.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sessions (
			id, user_id, token_hash, user_agent, browser, os, device_type,
			ip_address, country, city, latitude, longitude,
			created_at, last_used_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, session.ID, session.UserID, session.TokenHash,
		session.Device.UserAgent, session.Device.Browser, session.Device.OS, session.Device.DeviceType,
		session.IPAddress, session.Location.Country, session.Location.City,
		session.Location.Latitude, session.Location.Longitude,
		session.CreatedAt, session.LastUsedAt, session.ExpiresAt)

	return err
}

func (r *PostgresRepository) GetActiveByUserID(ctx context.Context, userID string, now time.Time) ([]domain.Session, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, token_hash, user_agent, browser, os, device_type,
			ip_address, country, city, latitude, longitude,
			created_at, last_used_at, expires_at
		FROM sessions
		WHERE user_id = $1 AND expires_at > $2
		ORDER BY last_used_at DESC
	`, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.TokenHash,
			&s.Device.UserAgent, &s.Device.Browser, &s.Device.OS, &s.Device.DeviceType,
			&s.IPAddress, &s.Location.Country, &s.Location.City,
			&s.Location.Latitude, &s.Location.Longitude,
			&s.CreatedAt, &s.LastUsedAt, &s.ExpiresAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func (r *PostgresRepository) UpdateLastUsed(ctx context.Context, sessionID string, usedAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE sessions SET last_used_at = $2 WHERE id = $1
	`, sessionID, usedAt)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	return err
}

func (r *PostgresRepository) DeleteAllByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}

// DeleteOldestByUserID keeps the most recently used sessions and drops the
// rest, capping concurrent sessions per user.
func (r *PostgresRepository) DeleteOldestByUserID(ctx context.Context, userID string, keep int) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM sessions
		WHERE user_id = $1 AND id NOT IN (
			SELECT id FROM sessions
			WHERE user_id = $1
			ORDER BY last_used_at DESC
			LIMIT $2
		)
	`, userID, keep)
	return err
}

// DeleteExpired is the storage-hygiene sweep; correctness does not depend on
// it since expiry is checked at redemption time.
func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	return err
}
