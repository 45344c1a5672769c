package repository

import (
	"context"
	"fmt"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
)

// The conflict target is the (member, boss, season) unique key, so a
// submission either creates the row or updates it within one statement.
const (
	upsertScoreAdd = `
		INSERT INTO boss_scores (guildmember_id, boss_id, season, score, runs)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (guildmember_id, boss_id, season) DO UPDATE
		SET score = boss_scores.score + EXCLUDED.score,
			runs = boss_scores.runs + EXCLUDED.runs
	`
	upsertScoreOverwrite = `
		INSERT INTO boss_scores (guildmember_id, boss_id, season, score, runs)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (guildmember_id, boss_id, season) DO UPDATE
		SET score = EXCLUDED.score,
			runs = EXCLUDED.runs
	`
)

// UpsertScore adds to or replaces the record for the submission's key
func (r *GuildRepo) UpsertScore(ctx context.Context, sub models.ScoreSubmission) error {
	var query string
	switch sub.Mode {
	case models.ScoreModeAdd:
		query = upsertScoreAdd
	case models.ScoreModeOverwrite:
		query = upsertScoreOverwrite
	default:
		return fmt.Errorf("unsupported score mode %q", sub.Mode)
	}

	_, err := r.db.ExecContext(ctx, query,
		sub.GuildMemberID,
		sub.BossID,
		sub.Season,
		sub.Score,
		sub.Runs,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert score: %w", err)
	}

	return nil
}

// ListScores returns scores joined with member names, optionally for one season
func (r *GuildRepo) ListScores(ctx context.Context, season *int) ([]models.ScoreView, error) {
	query := `
		SELECT m.name, s.boss_id, s.score, s.runs, s.guildmember_id, s.season
		FROM boss_scores s
		JOIN tbl_guildmember m ON m.id = s.guildmember_id
	`
	var args []interface{}
	if season != nil {
		query += ` WHERE s.season = $1`
		args = append(args, *season)
	}
	query += ` ORDER BY s.season, m.name, s.boss_id`

	scores := []models.ScoreView{}
	if err := r.db.SelectContext(ctx, &scores, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	return scores, nil
}
