package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/fintrack/internal/database"
)

var (
	ErrNotFound       = errors.New("account not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// Repository handles account persistence in the login table.
// Verification and recovery codes are stored as hashes; callers pass hashes in.
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new account
func (r *Repository) Create(ctx context.Context, name, email, passwordHash, verificationCodeHash string) (*Account, error) {
	now := time.Now()
	dbAccount := &database.Account{
		Name:             name,
		Email:            email,
		PasswordHash:     passwordHash,
		VerificationCode: &verificationCodeHash,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := r.db.NewInsert().
		Model(dbAccount).
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return mapDBAccountToModel(dbAccount), nil
}

// GetByEmail retrieves an account by email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	dbAccount := new(database.Account)
	err := r.db.NewSelect().
		Model(dbAccount).
		Where("email = ?", email).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return mapDBAccountToModel(dbAccount), nil
}

// GetByID retrieves an account by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Account, error) {
	dbAccount := new(database.Account)
	err := r.db.NewSelect().
		Model(dbAccount).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return mapDBAccountToModel(dbAccount), nil
}

// List returns every account. No pagination.
func (r *Repository) List(ctx context.Context) ([]Account, error) {
	var rows []database.Account
	if err := r.db.NewSelect().
		Model(&rows).
		Order("id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, *mapDBAccountToModel(&rows[i]))
	}
	return accounts, nil
}

// MarkEmailAsVerified marks the account holding the verification code as verified and clears the code
func (r *Repository) MarkEmailAsVerified(ctx context.Context, verificationCodeHash string) error {
	result, err := r.db.NewUpdate().
		Model((*database.Account)(nil)).
		Set("email_verified = ?", true).
		Set("verification_code = NULL").
		Set("updated_at = ?", time.Now()).
		Where("verification_code = ?", verificationCodeHash).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark email as verified: %w", err)
	}

	return requireAffected(result)
}

// SetRecoveryCode stores a password recovery code for the account with the given email
func (r *Repository) SetRecoveryCode(ctx context.Context, email, recoveryCodeHash string, sentAt time.Time) error {
	result, err := r.db.NewUpdate().
		Model((*database.Account)(nil)).
		Set("recovery_code = ?", recoveryCodeHash).
		Set("recovery_sent_at = ?", sentAt).
		Set("updated_at = ?", sentAt).
		Where("email = ?", email).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set recovery code: %w", err)
	}

	return requireAffected(result)
}

// ResetPassword overwrites the password of the account holding a recovery code sent after notBefore.
// The code is cleared in the same statement, so a code can be used once.
func (r *Repository) ResetPassword(ctx context.Context, recoveryCodeHash, passwordHash string, notBefore time.Time) error {
	result, err := r.db.NewUpdate().
		Model((*database.Account)(nil)).
		Set("password_hash = ?", passwordHash).
		Set("recovery_code = NULL").
		Set("recovery_sent_at = NULL").
		Set("updated_at = ?", time.Now()).
		Where("recovery_code = ?", recoveryCodeHash).
		Where("recovery_sent_at > ?", notBefore).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return requireAffected(result)
}

// PurgeRecoveryCodes clears recovery codes sent before the given time and returns how many were cleared
func (r *Repository) PurgeRecoveryCodes(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.NewUpdate().
		Model((*database.Account)(nil)).
		Set("recovery_code = NULL").
		Set("recovery_sent_at = NULL").
		Where("recovery_code IS NOT NULL").
		Where("recovery_sent_at <= ?", before).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge recovery codes: %w", err)
	}

	return result.RowsAffected()
}

func requireAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// uniqueViolation is the Postgres SQLSTATE for a duplicate key
const uniqueViolation = "23505"

// isUniqueViolation reports a duplicate-key error from any supported driver.
// lib/pq and pgx expose the SQLSTATE; SQLite only reports it in the message.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// mapDBAccountToModel converts database model to domain model
func mapDBAccountToModel(dba *database.Account) *Account {
	return &Account{
		ID:               dba.ID,
		Name:             dba.Name,
		Email:            dba.Email,
		PasswordHash:     dba.PasswordHash,
		EmailVerified:    dba.EmailVerified,
		VerificationCode: dba.VerificationCode,
		RecoveryCode:     dba.RecoveryCode,
		RecoverySentAt:   dba.RecoverySentAt,
		CreatedAt:        dba.CreatedAt,
		UpdatedAt:        dba.UpdatedAt,
	}
}
