package ui

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/charmbracelet/huh"
)

// NewAccount is the input of the adduser command
type NewAccount struct {
	Name     string
	Email    string
	Password string
}

// Complete reports whether every field is already set
func (a *NewAccount) Complete() bool {
	return a.Name != "" && a.Email != "" && a.Password != ""
}

// Validate trims the fields and checks them
func (a *NewAccount) Validate() error {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)

	if err := requireName(a.Name); err != nil {
		return err
	}
	if err := requireEmail(a.Email); err != nil {
		return err
	}
	return requirePassword(a.Password)
}

// RunAccountForm prompts for the fields of a that are still empty
func RunAccountForm(a *NewAccount) error {
	var fields []huh.Field

	if a.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Name").
			Value(&a.Name).
			Validate(requireName))
	}
	if a.Email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("ana@example.com").
			Value(&a.Email).
			Validate(requireEmail))
	}
	if a.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&a.Password).
			Validate(requirePassword))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(huh.ThemeCatppuccin()).
		Run()
}

func requireName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func requireEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("invalid email %q", s)
	}
	return nil
}

func requirePassword(s string) error {
	if s == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
