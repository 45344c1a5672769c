package usecase

import (
	"context"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/apperror"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
)

// ListCharacters returns every member name
func (u *GuildUC) ListCharacters(ctx context.Context) ([]string, error) {
	names, err := u.guildRepo.ListMemberNames(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to list characters", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// ListScores returns scores joined with member names. A nil season lists all seasons.
func (u *GuildUC) ListScores(ctx context.Context, season *int) ([]models.ScoreView, error) {
	scores, err := u.guildRepo.ListScores(ctx, season)
	if err != nil {
		return nil, apperror.Internal("failed to list scores", err)
	}
	if scores == nil {
		scores = []models.ScoreView{}
	}
	return scores, nil
}

// ActiveSeason returns the season currently flagged active
func (u *GuildUC) ActiveSeason(ctx context.Context) (*models.Season, error) {
	season, err := u.guildRepo.GetActiveSeason(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to get active season", err)
	}
	if season == nil {
		return nil, apperror.NotFound("No active season")
	}
	return season, nil
}

// ListAttackOrders groups a season's attack slots into per-member boss name
// sequences. A nil season selects the active one.
func (u *GuildUC) ListAttackOrders(ctx context.Context, season *int) ([]models.MemberAttack, error) {
	var seasonNumber int
	if season != nil {
		s, err := u.guildRepo.GetSeason(ctx, *season)
		if err != nil {
			return nil, apperror.Internal("failed to get season", err)
		}
		if s == nil {
			return nil, apperror.NotFound("Season not found")
		}
		seasonNumber = s.Number
	} else {
		s, err := u.ActiveSeason(ctx)
		if err != nil {
			return nil, err
		}
		seasonNumber = s.Number
	}

	orders, err := u.guildRepo.ListAttackOrders(ctx, seasonNumber)
	if err != nil {
		return nil, apperror.Internal("failed to list attack orders", err)
	}

	return groupAttackOrders(orders), nil
}

// groupAttackOrders keeps members in first-seen order; rows are expected
// sorted by member then slot
func groupAttackOrders(orders []models.AttackOrder) []models.MemberAttack {
	attacks := []models.MemberAttack{}
	index := make(map[int64]int)

	for _, o := range orders {
		i, ok := index[o.MemberID]
		if !ok {
			i = len(attacks)
			index[o.MemberID] = i
			attacks = append(attacks, models.MemberAttack{
				MemberName: o.MemberName,
				BossOrder:  []string{},
			})
		}
		attacks[i].BossOrder = append(attacks[i].BossOrder, models.BossName(o.BossID))
	}

	return attacks
}
