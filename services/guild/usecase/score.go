package usecase

import (
	"context"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/apperror"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/logger"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
)

// SubmitScore records a boss score for the authenticated member in the
// active season, adding to or replacing any existing record
func (u *GuildUC) SubmitScore(ctx context.Context, guildMemberID int64, req *models.SubmitScoreRequest) error {
	if req == nil || req.BossID == 0 || req.Score == 0 {
		return apperror.BadRequest("Missing boss_id or score")
	}

	var mode models.ScoreMode
	switch models.ScoreMode(req.Mode) {
	case "":
		mode = models.ScoreModeOverwrite
	case models.ScoreModeAdd, models.ScoreModeOverwrite:
		mode = models.ScoreMode(req.Mode)
	default:
		return apperror.BadRequest("Invalid mode")
	}

	runs := models.DefaultRuns
	if req.Runs != nil {
		if *req.Runs < 1 {
			return apperror.BadRequest("Invalid runs")
		}
		runs = *req.Runs
	}

	season, err := u.guildRepo.GetActiveSeason(ctx)
	if err != nil {
		return apperror.Internal("failed to get active season", err)
	}
	seasonNumber := models.DefaultSeasonNumber
	if season != nil {
		seasonNumber = season.Number
	} else {
		logger.Warn("No active season, recording score in default season",
			logger.Int("season", seasonNumber))
	}

	sub := models.ScoreSubmission{
		GuildMemberID: guildMemberID,
		BossID:        req.BossID,
		Season:        seasonNumber,
		Score:         req.Score,
		Runs:          runs,
		Mode:          mode,
	}
	if err := u.guildRepo.UpsertScore(ctx, sub); err != nil {
		return apperror.Internal("failed to save score", err)
	}

	u.metrics.ObserveScoreSubmission(string(mode))
	logger.Info("Score saved",
		logger.Int64("guildmember_id", guildMemberID),
		logger.Int("boss_id", req.BossID),
		logger.Int("season", seasonNumber),
		logger.String("mode", string(mode)))

	return nil
}
