package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupGuildRepoTest(t *testing.T) (*GuildRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewGuildRepo(&models.Config{}, sqlxDB), mock
}
