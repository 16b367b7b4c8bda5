package finance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/redmonkez12/fintrack/internal/database"
)

// ErrNotFound covers both a missing row and a row owned by another account
var ErrNotFound = errors.New("resource not found")

// Repository persists owned resources. Every statement is filtered by the owning account id.
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

// Assets

func (r *Repository) CreateAsset(ctx context.Context, accountID int64, in AssetInput) (*Asset, error) {
	row := &database.Asset{
		UserID:    accountID,
		Name:      in.Name,
		Quantity:  in.Quantity,
		UnitValue: in.UnitValue,
	}
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return mapAsset(row), nil
}

func (r *Repository) ListAssets(ctx context.Context, accountID int64) ([]Asset, error) {
	var rows []database.Asset
	if err := r.selectOwned(ctx, &rows, accountID); err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]Asset, 0, len(rows))
	for i := range rows {
		assets = append(assets, *mapAsset(&rows[i]))
	}
	return assets, nil
}

func (r *Repository) UpdateAsset(ctx context.Context, id, accountID int64, in AssetInput) error {
	row := &database.Asset{Name: in.Name, Quantity: in.Quantity, UnitValue: in.UnitValue}
	return r.updateOwned(ctx, row, id, accountID, "nome_ativo", "quantidade_ativos", "valor_ativo")
}

func (r *Repository) DeleteAsset(ctx context.Context, id, accountID int64) error {
	return r.deleteOwned(ctx, (*database.Asset)(nil), id, accountID)
}

// Expenses

func (r *Repository) CreateExpense(ctx context.Context, accountID int64, in ExpenseInput) (*Expense, error) {
	now := time.Now().UTC()
	row := &database.Expense{
		UserID:    accountID,
		Category:  in.Category,
		Amount:    in.Amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return mapExpense(row), nil
}

func (r *Repository) ListExpenses(ctx context.Context, accountID int64) ([]Expense, error) {
	var rows []database.Expense
	if err := r.selectOwned(ctx, &rows, accountID); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	expenses := make([]Expense, 0, len(rows))
	for i := range rows {
		expenses = append(expenses, *mapExpense(&rows[i]))
	}
	return expenses, nil
}

func (r *Repository) UpdateExpense(ctx context.Context, id, accountID int64, in ExpenseInput) error {
	row := &database.Expense{Category: in.Category, Amount: in.Amount, UpdatedAt: time.Now().UTC()}
	return r.updateOwned(ctx, row, id, accountID, "categoria", "valor", "updated_at")
}

func (r *Repository) DeleteExpense(ctx context.Context, id, accountID int64) error {
	return r.deleteOwned(ctx, (*database.Expense)(nil), id, accountID)
}

// Income

func (r *Repository) CreateIncome(ctx context.Context, accountID int64, in IncomeInput) (*Income, error) {
	row := &database.Income{
		UserID: accountID,
		Amount: in.Amount,
		Date:   in.Date.Time,
	}
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}
	return mapIncome(row), nil
}

func (r *Repository) ListIncome(ctx context.Context, accountID int64) ([]Income, error) {
	var rows []database.Income
	if err := r.selectOwned(ctx, &rows, accountID); err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}

	income := make([]Income, 0, len(rows))
	for i := range rows {
		income = append(income, *mapIncome(&rows[i]))
	}
	return income, nil
}

func (r *Repository) UpdateIncome(ctx context.Context, id, accountID int64, in IncomeInput) error {
	row := &database.Income{Amount: in.Amount, Date: in.Date.Time}
	return r.updateOwned(ctx, row, id, accountID, "valor", "data")
}

func (r *Repository) DeleteIncome(ctx context.Context, id, accountID int64) error {
	return r.deleteOwned(ctx, (*database.Income)(nil), id, accountID)
}

// Alerts

func (r *Repository) CreateAlert(ctx context.Context, accountID int64, in AlertInput) (*Alert, error) {
	row := &database.Alert{
		UserID:      accountID,
		AssetName:   in.AssetName,
		Condition:   in.Condition,
		TargetPrice: in.TargetPrice,
	}
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	return mapAlert(row), nil
}

func (r *Repository) ListAlerts(ctx context.Context, accountID int64) ([]Alert, error) {
	var rows []database.Alert
	if err := r.selectOwned(ctx, &rows, accountID); err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	alerts := make([]Alert, 0, len(rows))
	for i := range rows {
		alerts = append(alerts, *mapAlert(&rows[i]))
	}
	return alerts, nil
}

func (r *Repository) UpdateAlert(ctx context.Context, id, accountID int64, in AlertInput) error {
	row := &database.Alert{AssetName: in.AssetName, Condition: in.Condition, TargetPrice: in.TargetPrice}
	return r.updateOwned(ctx, row, id, accountID, "nome_ativo", "condicao", "preco_alvo")
}

func (r *Repository) DeleteAlert(ctx context.Context, id, accountID int64) error {
	return r.deleteOwned(ctx, (*database.Alert)(nil), id, accountID)
}

// Suggestions

func (r *Repository) CreateSuggestion(ctx context.Context, accountID int64, in SuggestionInput) (*Suggestion, error) {
	row := &database.Suggestion{
		UserID:    accountID,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}
	return mapSuggestion(row), nil
}

func (r *Repository) ListSuggestions(ctx context.Context, accountID int64) ([]Suggestion, error) {
	var rows []database.Suggestion
	if err := r.selectOwned(ctx, &rows, accountID); err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(rows))
	for i := range rows {
		suggestions = append(suggestions, *mapSuggestion(&rows[i]))
	}
	return suggestions, nil
}

func (r *Repository) UpdateSuggestion(ctx context.Context, id, accountID int64, in SuggestionInput) error {
	row := &database.Suggestion{Content: in.Content}
	return r.updateOwned(ctx, row, id, accountID, "conteudo")
}

func (r *Repository) DeleteSuggestion(ctx context.Context, id, accountID int64) error {
	return r.deleteOwned(ctx, (*database.Suggestion)(nil), id, accountID)
}

// selectOwned scans every row of the account into dest, a pointer to a model slice
func (r *Repository) selectOwned(ctx context.Context, dest any, accountID int64) error {
	return r.db.NewSelect().
		Model(dest).
		Where("user_id = ?", accountID).
		Order("id ASC").
		Scan(ctx)
}

// updateOwned writes the given columns of model to the row matching both id and owner
func (r *Repository) updateOwned(ctx context.Context, model any, id, accountID int64, columns ...string) error {
	result, err := r.db.NewUpdate().
		Model(model).
		Column(columns...).
		Where("id = ?", id).
		Where("user_id = ?", accountID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}
	return requireAffected(result)
}

func (r *Repository) deleteOwned(ctx context.Context, model any, id, accountID int64) error {
	result, err := r.db.NewDelete().
		Model(model).
		Where("id = ?", id).
		Where("user_id = ?", accountID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete: %w", err)
	}
	return requireAffected(result)
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

func mapAsset(row *database.Asset) *Asset {
	return &Asset{ID: row.ID, Name: row.Name, Quantity: row.Quantity, UnitValue: row.UnitValue}
}

func mapExpense(row *database.Expense) *Expense {
	return &Expense{
		ID:        row.ID,
		Category:  row.Category,
		Amount:    row.Amount,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapIncome(row *database.Income) *Income {
	return &Income{ID: row.ID, Amount: row.Amount, Date: Date{row.Date.UTC()}}
}

func mapAlert(row *database.Alert) *Alert {
	return &Alert{ID: row.ID, AssetName: row.AssetName, Condition: row.Condition, TargetPrice: row.TargetPrice}
}

func mapSuggestion(row *database.Suggestion) *Suggestion {
	return &Suggestion{ID: row.ID, Content: row.Content, CreatedAt: row.CreatedAt}
}
