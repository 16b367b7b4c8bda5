package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// ownedTables lists every table whose rows belong to an account.
var ownedTables = []struct {
	name  string
	model any
}{
	{"ativos", (*Asset)(nil)},
	{"gastos", (*Expense)(nil)},
	{"renda", (*Income)(nil)},
	{"alertas", (*Alert)(nil)},
	{"sugestoes", (*Suggestion)(nil)},
}

// Migrate creates the schema. It is safe to run repeatedly.
func Migrate(ctx context.Context, db bun.IDB) error {
	if _, err := db.NewCreateTable().
		Model((*Account)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create table login: %w", err)
	}

	for _, t := range ownedTables {
		if _, err := db.NewCreateTable().
			Model(t.model).
			IfNotExists().
			ForeignKey(`("user_id") REFERENCES "login" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.name, err)
		}

		if _, err := db.NewCreateIndex().
			Model(t.model).
			Index(t.name + "_user_id_idx").
			Column("user_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", t.name, err)
		}
	}

	return nil
}
