package database

import (
	"time"

	"github.com/uptrace/bun"
)

// Account is a row of the login table.
type Account struct {
	bun.BaseModel `bun:"table:login,alias:l"`

	ID               int64      `bun:"id,pk,autoincrement"`
	Name             string     `bun:"name,notnull"`
	Email            string     `bun:"email,notnull,unique"`
	PasswordHash     string     `bun:"password_hash,notnull"`
	EmailVerified    bool       `bun:"email_verified,notnull"`
	VerificationCode *string    `bun:"verification_code"`
	RecoveryCode     *string    `bun:"recovery_code"`
	RecoverySentAt   *time.Time `bun:"recovery_sent_at"`
	CreatedAt        time.Time  `bun:"created_at,notnull"`
	UpdatedAt        time.Time  `bun:"updated_at,notnull"`
}

type Asset struct {
	bun.BaseModel `bun:"table:ativos,alias:a"`

	ID        int64   `bun:"id,pk,autoincrement"`
	UserID    int64   `bun:"user_id,notnull"`
	Name      string  `bun:"nome_ativo,notnull"`
	Quantity  float64 `bun:"quantidade_ativos,notnull"`
	UnitValue float64 `bun:"valor_ativo,notnull"`
}

type Expense struct {
	bun.BaseModel `bun:"table:gastos,alias:g"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull"`
	Category  string    `bun:"categoria,notnull"`
	Amount    float64   `bun:"valor,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type Income struct {
	bun.BaseModel `bun:"table:renda,alias:r"`

	ID     int64     `bun:"id,pk,autoincrement"`
	UserID int64     `bun:"user_id,notnull"`
	Amount float64   `bun:"valor,notnull"`
	Date   time.Time `bun:"data,notnull,type:date"`
}

type Alert struct {
	bun.BaseModel `bun:"table:alertas,alias:al"`

	ID          int64   `bun:"id,pk,autoincrement"`
	UserID      int64   `bun:"user_id,notnull"`
	AssetName   string  `bun:"nome_ativo,notnull"`
	Condition   string  `bun:"condicao,notnull"`
	TargetPrice float64 `bun:"preco_alvo,notnull"`
}

type Suggestion struct {
	bun.BaseModel `bun:"table:sugestoes,alias:s"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull"`
	Content   string    `bun:"conteudo,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}
