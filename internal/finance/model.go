package finance

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Asset is a holding ("ativo") owned by an account
type Asset struct {
	ID        int64   `json:"id"`
	Name      string  `json:"nome"`
	Quantity  float64 `json:"quantidade"`
	UnitValue float64 `json:"valor"`
}

// AssetInput is the request body for creating or updating an asset
type AssetInput struct {
	Name      string  `json:"nomeAtivo"`
	Quantity  float64 `json:"quantidadeAtivos"`
	UnitValue float64 `json:"valorAtivo"`
}

// Expense is a spending entry ("gasto")
type Expense struct {
	ID        int64     `json:"id"`
	Category  string    `json:"categoria"`
	Amount    float64   `json:"valor"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ExpenseInput struct {
	Category string  `json:"categoria"`
	Amount   float64 `json:"valor"`
}

// Income is an earnings entry ("renda")
type Income struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"valor"`
	Date   Date    `json:"data"`
}

type IncomeInput struct {
	Amount float64 `json:"valor"`
	Date   Date    `json:"data"`
}

// Alert is a price alert on an asset
type Alert struct {
	ID          int64   `json:"id"`
	AssetName   string  `json:"nomeAtivo"`
	Condition   string  `json:"condicao"`
	TargetPrice float64 `json:"precoAlvo"`
}

type AlertInput struct {
	AssetName   string  `json:"nomeAtivo"`
	Condition   string  `json:"condicao"`
	TargetPrice float64 `json:"precoAlvo"`
}

// Suggestion is free-text feedback ("sugestão")
type Suggestion struct {
	ID        int64     `json:"id"`
	Content   string    `json:"conteudo"`
	CreatedAt time.Time `json:"createdAt"`
}

type SuggestionInput struct {
	Content string `json:"conteudo"`
}

const dateLayout = "2006-01-02"

// Date is a calendar day encoded as "YYYY-MM-DD".
// Full RFC 3339 timestamps are accepted on input and truncated to the day.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}
