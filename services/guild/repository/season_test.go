package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seasonColumns = []string{"season_number", "is_active", "started_at", "ended_at"}

func TestGetActiveSeason(t *testing.T) {
	t.Run("Active season", func(t *testing.T) {
		repo, mock := setupGuildRepoTest(t)
		mock.ExpectQuery("^SELECT (.+) FROM seasons WHERE is_active = true").
			WillReturnRows(sqlmock.NewRows(seasonColumns).AddRow(3, true, nil, nil))

		season, err := repo.GetActiveSeason(context.Background())

		require.NoError(t, err)
		require.NotNil(t, season)
		assert.Equal(t, 3, season.Number)
		assert.True(t, season.IsActive)
		assert.Nil(t, season.StartedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No active season", func(t *testing.T) {
		repo, mock := setupGuildRepoTest(t)
		mock.ExpectQuery("^SELECT (.+) FROM seasons WHERE is_active = true").
			WillReturnRows(sqlmock.NewRows(seasonColumns))

		season, err := repo.GetActiveSeason(context.Background())

		assert.NoError(t, err)
		assert.Nil(t, season)
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := setupGuildRepoTest(t)
		mock.ExpectQuery("^SELECT (.+) FROM seasons").
			WillReturnError(errors.New("boom"))

		season, err := repo.GetActiveSeason(context.Background())

		assert.Error(t, err)
		assert.Nil(t, season)
	})
}

func TestGetSeason(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		repo, mock := setupGuildRepoTest(t)
		mock.ExpectQuery("^SELECT (.+) FROM seasons WHERE season_number = \\$1").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows(seasonColumns).AddRow(2, false, nil, nil))

		season, err := repo.GetSeason(context.Background(), 2)

		require.NoError(t, err)
		require.NotNil(t, season)
		assert.Equal(t, 2, season.Number)
		assert.False(t, season.IsActive)
	})

	t.Run("Unknown season", func(t *testing.T) {
		repo, mock := setupGuildRepoTest(t)
		mock.ExpectQuery("^SELECT (.+) FROM seasons WHERE season_number = \\$1").
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows(seasonColumns))

		season, err := repo.GetSeason(context.Background(), 9)

		assert.NoError(t, err)
		assert.Nil(t, season)
	})
}
