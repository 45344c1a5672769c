package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
)

// GetMemberByName looks a member up by character name
func (r *GuildRepo) GetMemberByName(ctx context.Context, name string) (*models.GuildMember, error) {
	query := `
		SELECT id, name, discord_id, created_at, last_otp_at
		FROM tbl_guildmember
		WHERE name = $1
	`

	var member models.GuildMember
	if err := r.db.GetContext(ctx, &member, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &member, nil
}

// ListMemberNames returns every character name in alphabetical order
func (r *GuildRepo) ListMemberNames(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM tbl_guildmember ORDER BY name`

	names := []string{}
	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return names, nil
}
