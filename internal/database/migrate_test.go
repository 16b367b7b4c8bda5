package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesTables(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db))
	// second run must be a no-op
	require.NoError(t, Migrate(ctx, db))

	for _, table := range []string{"login", "ativos", "gastos", "renda", "alertas", "sugestoes"} {
		var count int
		err := db.NewRaw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(ctx, &count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s missing", table)
	}
}

func TestMigrateEnforcesUniqueEmail(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(ctx, db))

	now := time.Now()
	first := &Account{Name: "A", Email: "a@x.com", PasswordHash: "h", CreatedAt: now, UpdatedAt: now}
	_, err = db.NewInsert().Model(first).Exec(ctx)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	dup := &Account{Name: "B", Email: "a@x.com", PasswordHash: "h", CreatedAt: now, UpdatedAt: now}
	_, err = db.NewInsert().Model(dup).Exec(ctx)
	assert.Error(t, err)
}

func TestMigrateReportsFailingStatement(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "login"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "ativos"`).WillReturnError(errors.New("permission denied"))

	err = Migrate(context.Background(), NewBunDB(sqlDB))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create table ativos")
	assert.NoError(t, mock.ExpectationsWereMet())
}
