package db

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	raw, mockSQL, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return sqlx.NewDb(raw, "sqlmock"), mockSQL
}

func TestExists(t *testing.T) {
	database, mockSQL := newMockDB(t)

	mockSQL.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`)).
		WithArgs("sara@callanannycare.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	found, err := Exists(context.Background(), database, `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, "sara@callanannycare.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

func TestExistsNoRowsMeansFalse(t *testing.T) {
	database, mockSQL := newMockDB(t)

	mockSQL.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}))

	found, err := Exists(context.Background(), database, `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, "nobody@callanannycare.com")
	require.NoError(t, err)
	assert.False(t, found)
}
