package account

import "time"

type Account struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"` // Never expose password hash in JSON
	EmailVerified    bool       `json:"emailVerified"`
	VerificationCode *string    `json:"-"`
	RecoveryCode     *string    `json:"-"`
	RecoverySentAt   *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
