package database

import (
	"database/sql"
	"strconv"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func sqlxWrap(db *sql.DB) *sqlx.DB {
	return sqlx.NewDb(db, "sqlmock")
}

func atoiPort(t *testing.T, port string) int {
	t.Helper()
	n, err := strconv.Atoi(port)
	require.NoError(t, err)
	return n
}
