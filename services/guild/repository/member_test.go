package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

var memberColumns = []string{"id", "name", "discord_id", "created_at", "last_otp_at"}

func TestGetMemberByName(t *testing.T) {
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	lastOTPAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, member *models.GuildMember, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(memberColumns).
					AddRow(int64(7), "Rudy", "123456789012345678", createdAt, lastOTPAt)
				mock.ExpectQuery("^SELECT (.+) FROM tbl_guildmember WHERE name = \\$1").
					WithArgs("Rudy").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, member *models.GuildMember, err error) {
				assert.NoError(t, err)
				assert.Equal(t, &models.GuildMember{
					ID:        7,
					Name:      "Rudy",
					DiscordID: "123456789012345678",
					CreatedAt: createdAt,
					LastOTPAt: &lastOTPAt,
				}, member)
			},
		},
		{
			name: "Not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM tbl_guildmember WHERE name = \\$1").
					WithArgs("Rudy").
					WillReturnRows(sqlmock.NewRows(memberColumns))
			},
			assertFunc: func(t *testing.T, member *models.GuildMember, err error) {
				assert.NoError(t, err)
				assert.Nil(t, member)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM tbl_guildmember WHERE name = \\$1").
					WithArgs("Rudy").
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, member *models.GuildMember, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get member")
				assert.Nil(t, member)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupGuildRepoTest(t)
			tc.mockSetup(mock)

			member, err := repo.GetMemberByName(context.Background(), "Rudy")

			tc.assertFunc(t, member, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListMemberNames(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := setupGuildRepoTest(t)
		mock.ExpectQuery("^SELECT name FROM tbl_guildmember ORDER BY name").
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Ace").AddRow("Rudy"))

		names, err := repo.ListMemberNames(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []string{"Ace", "Rudy"}, names)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty table yields empty slice", func(t *testing.T) {
		repo, mock := setupGuildRepoTest(t)
		mock.ExpectQuery("^SELECT name FROM tbl_guildmember").
			WillReturnRows(sqlmock.NewRows([]string{"name"}))

		names, err := repo.ListMemberNames(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := setupGuildRepoTest(t)
		mock.ExpectQuery("^SELECT name FROM tbl_guildmember").
			WillReturnError(errors.New("boom"))

		names, err := repo.ListMemberNames(context.Background())

		assert.Error(t, err)
		assert.Nil(t, names)
	})
}

func TestGetMemberByName_NeverSentOTP(t *testing.T) {
	repo, mock := setupGuildRepoTest(t)
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("^SELECT id, name, discord_id, created_at, last_otp_at FROM tbl_guildmember").
		WithArgs("Rudy").
		WillReturnRows(sqlmock.NewRows(memberColumns).
			AddRow(int64(7), "Rudy", "123456789012345678", createdAt, nil))

	member, err := repo.GetMemberByName(context.Background(), "Rudy")

	assert.NoError(t, err)
	if assert.NotNil(t, member) {
		assert.Nil(t, member.LastOTPAt)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
