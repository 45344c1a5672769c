package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/apperror"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCharacters(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		mockRepo.EXPECT().ListMemberNames(ctx).Return([]string{"Ace", "Rudy"}, nil)

		names, err := uc.ListCharacters(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ace", "Rudy"}, names)
	})

	t.Run("nil becomes empty", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		mockRepo.EXPECT().ListMemberNames(ctx).Return(nil, nil)

		names, err := uc.ListCharacters(ctx)
		require.NoError(t, err)
		assert.NotNil(t, names)
	})

	t.Run("repository error", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		mockRepo.EXPECT().ListMemberNames(ctx).Return(nil, errors.New("db down"))

		_, err := uc.ListCharacters(ctx)
		assert.ErrorIs(t, err, apperror.ErrInternal)
	})
}

func TestListScores(t *testing.T) {
	ctx := context.Background()
	season := 2
	rows := []models.ScoreView{{Character: "Rudy", BossID: 1, Score: 150, Runs: 2, MemberID: 7, Season: 2}}

	t.Run("season filter is passed through", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		mockRepo.EXPECT().ListScores(ctx, &season).Return(rows, nil)

		scores, err := uc.ListScores(ctx, &season)
		require.NoError(t, err)
		assert.Equal(t, rows, scores)
	})

	t.Run("nil becomes empty", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		mockRepo.EXPECT().ListScores(ctx, (*int)(nil)).Return(nil, nil)

		scores, err := uc.ListScores(ctx, nil)
		require.NoError(t, err)
		assert.NotNil(t, scores)
		assert.Empty(t, scores)
	})

	t.Run("repository error", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		mockRepo.EXPECT().ListScores(ctx, (*int)(nil)).Return(nil, errors.New("db down"))

		_, err := uc.ListScores(ctx, nil)
		assert.ErrorIs(t, err, apperror.ErrInternal)
	})
}

func TestActiveSeason(t *testing.T) {
	ctx := context.Background()

	t.Run("active", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		mockRepo.EXPECT().GetActiveSeason(ctx).Return(&models.Season{Number: 4, IsActive: true}, nil)

		season, err := uc.ActiveSeason(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, season.Number)
	})

	t.Run("none", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		mockRepo.EXPECT().GetActiveSeason(ctx).Return(nil, nil)

		_, err := uc.ActiveSeason(ctx)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestListAttackOrders_ActiveSeason(t *testing.T) {
	uc, mockRepo, _ := setupGuildUC(t)
	ctx := context.Background()

	mockRepo.EXPECT().GetActiveSeason(ctx).Return(&models.Season{Number: 3, IsActive: true}, nil)
	mockRepo.EXPECT().ListAttackOrders(ctx, 3).Return([]models.AttackOrder{
		{MemberID: 9, MemberName: "Zed", BossID: 1, SeasonNumber: 3, AttackOrder: 1},
		{MemberID: 9, MemberName: "Zed", BossID: 3, SeasonNumber: 3, AttackOrder: 2},
		{MemberID: 12, MemberName: "Ace", BossID: 5, SeasonNumber: 3, AttackOrder: 1},
		{MemberID: 12, MemberName: "Ace", BossID: 42, SeasonNumber: 3, AttackOrder: 2},
	}, nil)

	attacks, err := uc.ListAttackOrders(ctx, nil)

	require.NoError(t, err)
	assert.Equal(t, []models.MemberAttack{
		{MemberName: "Zed", BossOrder: []string{"Teo", "Karma"}},
		{MemberName: "Ace", BossOrder: []string{"Drumstick", "Unknown(42)"}},
	}, attacks)
}

func TestListAttackOrders_ExplicitSeason(t *testing.T) {
	ctx := context.Background()

	t.Run("known season", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		season := 2
		mockRepo.EXPECT().GetSeason(ctx, 2).Return(&models.Season{Number: 2}, nil)
		mockRepo.EXPECT().ListAttackOrders(ctx, 2).Return(nil, nil)

		attacks, err := uc.ListAttackOrders(ctx, &season)
		require.NoError(t, err)
		assert.NotNil(t, attacks)
		assert.Empty(t, attacks)
	})

	t.Run("unknown season", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		season := 99
		mockRepo.EXPECT().GetSeason(ctx, 99).Return(nil, nil)

		_, err := uc.ListAttackOrders(ctx, &season)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Equal(t, "Season not found", apperror.Message(err, ""))
	})

	t.Run("no active season", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		mockRepo.EXPECT().GetActiveSeason(ctx).Return(nil, nil)

		_, err := uc.ListAttackOrders(ctx, nil)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		uc, mockRepo, _ := setupGuildUC(t)
		mockRepo.EXPECT().GetActiveSeason(ctx).Return(&models.Season{Number: 3}, nil)
		mockRepo.EXPECT().ListAttackOrders(ctx, 3).Return(nil, errors.New("db down"))

		_, err := uc.ListAttackOrders(ctx, nil)
		assert.ErrorIs(t, err, apperror.ErrInternal)
	})
}
