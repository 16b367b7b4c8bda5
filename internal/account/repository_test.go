package account

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/fintrack/internal/database"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

func TestCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	created, err := repo.Create(ctx, "Ana", "ana@x.com", "hash", "vhash")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.EmailVerified)

	byEmail, err := repo.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", byID.Name)

	_, err = repo.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	_, err := repo.Create(ctx, "Ana", "ana@x.com", "hash", "v1")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "Other", "ana@x.com", "hash", "v2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"lib/pq unique", &pq.Error{Code: "23505"}, true},
		{"lib/pq wrapped", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), true},
		{"lib/pq foreign key", &pq.Error{Code: "23503", Message: "duplicate key value violates unique constraint"}, false},
		{"pgx unique", &pgconn.PgError{Code: "23505"}, true},
		{"pgx not null", &pgconn.PgError{Code: "23502"}, false},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: login.email (2067)"), true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestMarkEmailAsVerified(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	created, err := repo.Create(ctx, "Ana", "ana@x.com", "hash", "vhash")
	require.NoError(t, err)

	assert.ErrorIs(t, repo.MarkEmailAsVerified(ctx, "wrong"), ErrNotFound)
	require.NoError(t, repo.MarkEmailAsVerified(ctx, "vhash"))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.EmailVerified)
	assert.Nil(t, got.VerificationCode)

	// the code is consumed
	assert.ErrorIs(t, repo.MarkEmailAsVerified(ctx, "vhash"), ErrNotFound)
}

func TestRecoveryFlow(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	created, err := repo.Create(ctx, "Ana", "ana@x.com", "old", "v")
	require.NoError(t, err)

	assert.ErrorIs(t, repo.SetRecoveryCode(ctx, "nobody@x.com", "r", time.Now().UTC()), ErrNotFound)

	sentAt := time.Now().UTC()
	require.NoError(t, repo.SetRecoveryCode(ctx, "ana@x.com", "rhash", sentAt))

	// expired window
	err = repo.ResetPassword(ctx, "rhash", "new", sentAt.Add(time.Minute))
	assert.ErrorIs(t, err, ErrNotFound)

	// wrong code
	err = repo.ResetPassword(ctx, "other", "new", sentAt.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.ResetPassword(ctx, "rhash", "new", sentAt.Add(-time.Hour)))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.PasswordHash)
	assert.Nil(t, got.RecoveryCode)

	// single use
	err = repo.ResetPassword(ctx, "rhash", "again", sentAt.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPurgeRecoveryCodes(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestDB(t))

	_, err := repo.Create(ctx, "Old", "old@x.com", "h", "v1")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Fresh", "fresh@x.com", "h", "v2")
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, repo.SetRecoveryCode(ctx, "old@x.com", "r1", now.Add(-2*time.Hour)))
	require.NoError(t, repo.SetRecoveryCode(ctx, "fresh@x.com", "r2", now))

	purged, err := repo.PurgeRecoveryCodes(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	fresh, err := repo.GetByEmail(ctx, "fresh@x.com")
	require.NoError(t, err)
	require.NotNil(t, fresh.RecoveryCode)
	assert.Equal(t, "r2", *fresh.RecoveryCode)
}
