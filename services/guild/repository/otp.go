package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
)

const otpColumns = `id, discord_id, character, otp, created_at, expires_at`

// DeleteExpiredOTPs removes every code whose expiry is before now
func (r *GuildRepo) DeleteExpiredOTPs(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM otp_codes WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired OTPs: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted OTPs: %w", err)
	}
	return deleted, nil
}

// GetOTP returns the most recent code matching both character and value
func (r *GuildRepo) GetOTP(ctx context.Context, character, code string) (*models.OTP, error) {
	query := `
		SELECT ` + otpColumns + `
		FROM otp_codes
		WHERE character = $1 AND otp = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.getOTP(ctx, query, character, code)
}

func (r *GuildRepo) getOTP(ctx context.Context, query string, args ...interface{}) (*models.OTP, error) {
	var otp models.OTP
	if err := r.db.GetContext(ctx, &otp, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}
	return &otp, nil
}

// CreateOTP stores a new code, fills in its id and records the issue time on
// the owning member. Both writes share one transaction so the cooldown never
// lags behind an issued code.
func (r *GuildRepo) CreateOTP(ctx context.Context, otp *models.OTP) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO otp_codes (discord_id, character, otp, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err = tx.QueryRowxContext(ctx, query,
		otp.DiscordID,
		otp.Character,
		otp.Code,
		otp.CreatedAt,
		otp.ExpiresAt,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to create OTP: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE tbl_guildmember SET last_otp_at = $1 WHERE name = $2`,
		otp.CreatedAt, otp.Character,
	); err != nil {
		return fmt.Errorf("failed to record OTP issue time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	otp.ID = id
	return nil
}

// DeleteOTP removes a single code
func (r *GuildRepo) DeleteOTP(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM otp_codes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
