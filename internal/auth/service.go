package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redmonkez12/fintrack/internal/account"
	"github.com/redmonkez12/fintrack/internal/logging"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("required fields are missing")
	ErrMailDelivery       = errors.New("failed to hand mail over for delivery")
)

// Service handles account lifecycle and authentication
type Service struct {
	accounts        *account.Repository
	tokenService    TokenService
	emailService    EmailService
	logger          *logging.Logger
	tokenDuration   time.Duration
	recoveryCodeTTL time.Duration
	now             func() time.Time
}

func NewService(
	accounts *account.Repository,
	tokenService TokenService,
	emailService EmailService,
	logger *logging.Logger,
	tokenDuration time.Duration,
	recoveryCodeTTL time.Duration,
) *Service {
	return &Service{
		accounts:        accounts,
		tokenService:    tokenService,
		emailService:    emailService,
		logger:          logger,
		tokenDuration:   tokenDuration,
		recoveryCodeTTL: recoveryCodeTTL,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Signup creates a new account and queues the verification email.
// The account is acknowledged once stored; a mail hand-off failure is only logged.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*account.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	verificationCode, err := generateRandomToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	newAccount, err := s.accounts.Create(ctx, name, email, passwordHash, hashToken(verificationCode))
	if err != nil {
		if errors.Is(err, account.ErrDuplicateEmail) {
			return nil, account.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := s.emailService.SendVerificationEmail(ctx, email, name, verificationCode); err != nil {
		s.logger.Warn("failed to queue verification email", "account_id", newAccount.ID, "error", err)
	}

	return newAccount, nil
}

// Login verifies the credentials and issues an identity token
func (s *Service) Login(ctx context.Context, email, password string) (string, *account.Account, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	existing, err := s.accounts.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get account: %w", err)
	}

	if !VerifyPassword(existing.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(existing.ID, existing.Name, existing.Email, s.tokenDuration)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create token: %w", err)
	}

	return token, existing, nil
}

// RequestPasswordRecovery stores a fresh recovery code and queues the reset mail.
// The plain code is returned for callers that deliver it out of band; the HTTP layer never exposes it.
func (s *Service) RequestPasswordRecovery(ctx context.Context, email string) (string, error) {
	existing, err := s.accounts.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return "", account.ErrNotFound
		}
		return "", fmt.Errorf("failed to get account: %w", err)
	}

	code, err := generateRandomToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate recovery code: %w", err)
	}

	if err := s.accounts.SetRecoveryCode(ctx, existing.Email, hashToken(code), s.now()); err != nil {
		return "", fmt.Errorf("failed to store recovery code: %w", err)
	}

	if err := s.emailService.SendPasswordResetEmail(ctx, existing.Email, existing.Name, code); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	return code, nil
}

// ResetPassword replaces the password of the account owning an unexpired recovery code.
// Unknown, used and expired codes all yield account.ErrNotFound.
func (s *Service) ResetPassword(ctx context.Context, code, newPassword string) error {
	if code == "" {
		return account.ErrNotFound
	}
	if newPassword == "" {
		return ErrMissingFields
	}

	passwordHash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	notBefore := s.now().Add(-s.recoveryCodeTTL)
	if err := s.accounts.ResetPassword(ctx, hashToken(code), passwordHash, notBefore); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.ErrNotFound
		}
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}

// VerifyEmail marks the account owning the verification code as verified
func (s *Service) VerifyEmail(ctx context.Context, code string) error {
	if code == "" {
		return account.ErrNotFound
	}

	if err := s.accounts.MarkEmailAsVerified(ctx, hashToken(code)); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.ErrNotFound
		}
		return fmt.Errorf("failed to verify email: %w", err)
	}

	return nil
}

// PurgeExpiredRecoveryCodes clears recovery codes older than the configured TTL
func (s *Service) PurgeExpiredRecoveryCodes(ctx context.Context) (int64, error) {
	return s.accounts.PurgeRecoveryCodes(ctx, s.now().Add(-s.recoveryCodeTTL))
}
