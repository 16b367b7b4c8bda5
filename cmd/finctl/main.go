package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/fintrack/cmd/finctl/ui"
	"github.com/redmonkez12/fintrack/internal/account"
	"github.com/redmonkez12/fintrack/internal/auth"
	"github.com/redmonkez12/fintrack/internal/config"
	"github.com/redmonkez12/fintrack/internal/database"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "finctl",
		Short:         "Administer a fintrack database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables",
		RunE:  runMigrate,
	}

	addUserCmd := &cobra.Command{
		Use:   "adduser",
		Short: "Create a verified account",
		Long:  "Create a verified account. Missing fields are asked for interactively.",
		RunE:  runAddUser,
	}
	addUserCmd.Flags().String("name", "", "Account name")
	addUserCmd.Flags().String("email", "", "Account email")
	addUserCmd.Flags().String("password", "", "Account password")

	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "List accounts",
		RunE:  runUsers,
	}

	rootCmd.AddCommand(migrateCmd, addUserCmd, usersCmd)

	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}

func openDB() (*bun.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return database.Open(cfg.Database)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(cmd.Context(), db); err != nil {
		return err
	}

	ui.PrintSuccess("Database is up to date")
	return nil
}

func runAddUser(cmd *cobra.Command, args []string) error {
	input := &ui.NewAccount{}
	input.Name, _ = cmd.Flags().GetString("name")
	input.Email, _ = cmd.Flags().GetString("email")
	input.Password, _ = cmd.Flags().GetString("password")

	if !input.Complete() {
		if err := ui.RunAccountForm(input); err != nil {
			return fmt.Errorf("form cancelled: %w", err)
		}
	}
	if err := input.Validate(); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	created, err := createVerifiedAccount(cmd.Context(), account.NewRepository(db), input)
	if err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Account %d created for %s", created.ID, created.Email))
	return nil
}

// createVerifiedAccount stores the account and consumes its verification code right away
func createVerifiedAccount(ctx context.Context, repo *account.Repository, input *ui.NewAccount) (*account.Account, error) {
	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code := uuid.NewString()
	created, err := repo.Create(ctx, input.Name, input.Email, passwordHash, code)
	if err != nil {
		if errors.Is(err, account.ErrDuplicateEmail) {
			return nil, fmt.Errorf("email %s is already registered", input.Email)
		}
		return nil, err
	}

	if err := repo.MarkEmailAsVerified(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to verify account: %w", err)
	}
	created.EmailVerified = true

	return created, nil
}

func runUsers(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	accounts, err := account.NewRepository(db).List(cmd.Context())
	if err != nil {
		return err
	}

	ui.PrintAccounts(cmd.OutOrStdout(), accounts)
	return nil
}
