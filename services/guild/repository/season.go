package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
)

// GetActiveSeason returns the season flagged active, if any
func (r *GuildRepo) GetActiveSeason(ctx context.Context) (*models.Season, error) {
	query := `
		SELECT season_number, is_active, started_at, ended_at
		FROM seasons
		WHERE is_active = true
		LIMIT 1
	`
	return r.getSeason(ctx, query)
}

// GetSeason returns a season by number
func (r *GuildRepo) GetSeason(ctx context.Context, number int) (*models.Season, error) {
	query := `
		SELECT season_number, is_active, started_at, ended_at
		FROM seasons
		WHERE season_number = $1
	`
	return r.getSeason(ctx, query, number)
}

func (r *GuildRepo) getSeason(ctx context.Context, query string, args ...interface{}) (*models.Season, error) {
	var season models.Season
	if err := r.db.GetContext(ctx, &season, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return &season, nil
}
