package auth

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is a kind of ErrInvalidToken.
	ErrExpiredToken = fmt.Errorf("%w: token has expired", ErrInvalidToken)
)

// TokenClaims is the identity carried by a signed token.
type TokenClaims struct {
	AccountID int64     `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// TokenService defines the interface for token creation and validation.
// Implementations include JWTService (HS256) and PasetoService (PASETO v4.local).
type TokenService interface {
	CreateToken(accountID int64, name, email string, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}

// EmailService hands account mails to the delivery pipeline.
// A nil error means the mail was accepted for delivery, not that it was delivered.
type EmailService interface {
	SendVerificationEmail(ctx context.Context, toEmail, name, code string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, name, code string) error
}
