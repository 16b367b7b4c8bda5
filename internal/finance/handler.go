package finance

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/redmonkez12/fintrack/internal/auth"
	"github.com/redmonkez12/fintrack/internal/httputil"
	"github.com/redmonkez12/fintrack/internal/logging"
)

// Handler serves the owned-resource endpoints. Routes must sit behind an auth gate.
type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Routes mounts list/create/update/delete for every resource kind on r
func (h *Handler) Routes(r chi.Router) {
	r.Get("/ativo", h.ListAssets)
	r.Post("/ativo", h.CreateAsset)
	r.Put("/ativo/{id}", h.UpdateAsset)
	r.Delete("/ativo/{id}", h.DeleteAsset)

	r.Get("/gastos", h.ListExpenses)
	r.Post("/gastos", h.CreateExpense)
	r.Put("/gastos/{id}", h.UpdateExpense)
	r.Delete("/gastos/{id}", h.DeleteExpense)

	r.Get("/renda", h.ListIncome)
	r.Post("/renda", h.CreateIncome)
	r.Put("/renda/{id}", h.UpdateIncome)
	r.Delete("/renda/{id}", h.DeleteIncome)

	r.Get("/alerta", h.ListAlerts)
	r.Post("/alerta", h.CreateAlert)
	r.Put("/alerta/{id}", h.UpdateAlert)
	r.Delete("/alerta/{id}", h.DeleteAlert)

	r.Get("/sugestoes", h.ListSuggestions)
	r.Post("/sugestoes", h.CreateSuggestion)
	r.Put("/sugestoes/{id}", h.UpdateSuggestion)
	r.Delete("/sugestoes/{id}", h.DeleteSuggestion)
}

// ListAssets returns the caller's assets
// @Summary      List assets
// @Tags         ativos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Asset
// @Failure      401 {string} string "Token não fornecido"
// @Failure      403 {string} string "Token inválido"
// @Failure      500 {string} string "Error"
// @Router       /ativo [get]
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	list(w, r, "assets", h.repo.ListAssets)
}

// CreateAsset adds an asset
// @Summary      Create asset
// @Tags         ativos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AssetInput true "Asset"
// @Success      200 {string} string "Success"
// @Failure      400 {string} string "Requisição inválida"
// @Failure      500 {string} string "Error"
// @Router       /ativo [post]
func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	create(w, r, "asset", h.repo.CreateAsset)
}

// UpdateAsset replaces an asset owned by the caller
// @Summary      Update asset
// @Description  Responds "Falha" when no asset with this id belongs to the caller
// @Tags         ativos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Asset ID"
// @Param        request body AssetInput true "Asset"
// @Success      200 {string} string "Success or Falha"
// @Failure      400 {string} string "Requisição inválida"
// @Failure      500 {string} string "Error"
// @Router       /ativo/{id} [put]
func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	update(w, r, "asset", h.repo.UpdateAsset)
}

// DeleteAsset removes an asset owned by the caller
// @Summary      Delete asset
// @Tags         ativos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Asset ID"
// @Success      200 {string} string "Success or Falha"
// @Failure      400 {string} string "Requisição inválida"
// @Failure      500 {string} string "Error"
// @Router       /ativo/{id} [delete]
func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	remove(w, r, "asset", h.repo.DeleteAsset)
}

// ListExpenses returns the caller's expenses
// @Summary      List expenses
// @Tags         gastos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Expense
// @Router       /gastos [get]
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	list(w, r, "expenses", h.repo.ListExpenses)
}

// CreateExpense adds an expense
// @Summary      Create expense
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ExpenseInput true "Expense"
// @Success      200 {string} string "Success"
// @Router       /gastos [post]
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	create(w, r, "expense", h.repo.CreateExpense)
}

// UpdateExpense replaces an expense owned by the caller
// @Summary      Update expense
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Expense ID"
// @Param        request body ExpenseInput true "Expense"
// @Success      200 {string} string "Success or Falha"
// @Router       /gastos/{id} [put]
func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	update(w, r, "expense", h.repo.UpdateExpense)
}

// DeleteExpense removes an expense owned by the caller
// @Summary      Delete expense
// @Tags         gastos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Expense ID"
// @Success      200 {string} string "Success or Falha"
// @Router       /gastos/{id} [delete]
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	remove(w, r, "expense", h.repo.DeleteExpense)
}

// ListIncome returns the caller's income entries
// @Summary      List income
// @Tags         renda
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Income
// @Router       /renda [get]
func (h *Handler) ListIncome(w http.ResponseWriter, r *http.Request) {
	list(w, r, "income", h.repo.ListIncome)
}

// CreateIncome adds an income entry
// @Summary      Create income entry
// @Tags         renda
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body IncomeInput true "Income, data as YYYY-MM-DD"
// @Success      200 {string} string "Success"
// @Router       /renda [post]
func (h *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	create(w, r, "income", h.repo.CreateIncome)
}

// UpdateIncome replaces an income entry owned by the caller
// @Summary      Update income entry
// @Tags         renda
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Income ID"
// @Param        request body IncomeInput true "Income"
// @Success      200 {string} string "Success or Falha"
// @Router       /renda/{id} [put]
func (h *Handler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	update(w, r, "income", h.repo.UpdateIncome)
}

// DeleteIncome removes an income entry owned by the caller
// @Summary      Delete income entry
// @Tags         renda
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Income ID"
// @Success      200 {string} string "Success or Falha"
// @Router       /renda/{id} [delete]
func (h *Handler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	remove(w, r, "income", h.repo.DeleteIncome)
}

// ListAlerts returns the caller's price alerts
// @Summary      List alerts
// @Tags         alertas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Alert
// @Router       /alerta [get]
func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	list(w, r, "alerts", h.repo.ListAlerts)
}

// CreateAlert adds a price alert
// @Summary      Create alert
// @Tags         alertas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AlertInput true "Alert"
// @Success      200 {string} string "Success"
// @Router       /alerta [post]
func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	create(w, r, "alert", h.repo.CreateAlert)
}

// UpdateAlert replaces a price alert owned by the caller
// @Summary      Update alert
// @Tags         alertas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Alert ID"
// @Param        request body AlertInput true "Alert"
// @Success      200 {string} string "Success or Falha"
// @Router       /alerta/{id} [put]
func (h *Handler) UpdateAlert(w http.ResponseWriter, r *http.Request) {
	update(w, r, "alert", h.repo.UpdateAlert)
}

// DeleteAlert removes a price alert owned by the caller
// @Summary      Delete alert
// @Tags         alertas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Alert ID"
// @Success      200 {string} string "Success or Falha"
// @Router       /alerta/{id} [delete]
func (h *Handler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	remove(w, r, "alert", h.repo.DeleteAlert)
}

// ListSuggestions returns the caller's suggestions
// @Summary      List suggestions
// @Tags         sugestoes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Suggestion
// @Router       /sugestoes [get]
func (h *Handler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	list(w, r, "suggestions", h.repo.ListSuggestions)
}

// CreateSuggestion adds a suggestion
// @Summary      Create suggestion
// @Tags         sugestoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SuggestionInput true "Suggestion"
// @Success      200 {string} string "Success"
// @Router       /sugestoes [post]
func (h *Handler) CreateSuggestion(w http.ResponseWriter, r *http.Request) {
	create(w, r, "suggestion", h.repo.CreateSuggestion)
}

// UpdateSuggestion replaces a suggestion owned by the caller
// @Summary      Update suggestion
// @Tags         sugestoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Suggestion ID"
// @Param        request body SuggestionInput true "Suggestion"
// @Success      200 {string} string "Success or Falha"
// @Router       /sugestoes/{id} [put]
func (h *Handler) UpdateSuggestion(w http.ResponseWriter, r *http.Request) {
	update(w, r, "suggestion", h.repo.UpdateSuggestion)
}

// DeleteSuggestion removes a suggestion owned by the caller
// @Summary      Delete suggestion
// @Tags         sugestoes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Suggestion ID"
// @Success      200 {string} string "Success or Falha"
// @Router       /sugestoes/{id} [delete]
func (h *Handler) DeleteSuggestion(w http.ResponseWriter, r *http.Request) {
	remove(w, r, "suggestion", h.repo.DeleteSuggestion)
}

// caller returns the account id attached by the auth gate.
// A route mounted without a gate answers 401 instead of reading someone else's rows.
func caller(w http.ResponseWriter, r *http.Request) (int64, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		logging.GetLoggerFromContext(r.Context()).Error("owned resource reached without identity")
		httputil.RespondMessage(w, httputil.MsgMissingToken, http.StatusUnauthorized)
		return 0, false
	}
	return identity.AccountID, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.RespondMessage(w, httputil.MsgInvalidRequest, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func list[T any](w http.ResponseWriter, r *http.Request, kind string, fetch func(context.Context, int64) ([]T, error)) {
	accountID, ok := caller(w, r)
	if !ok {
		return
	}

	items, err := fetch(r.Context(), accountID)
	if err != nil {
		logging.GetLoggerFromContext(r.Context()).Error("failed to list "+kind, "error", err.Error())
		httputil.RespondMessage(w, httputil.MsgError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, items, http.StatusOK)
}

func create[In any, Out any](w http.ResponseWriter, r *http.Request, kind string, insert func(context.Context, int64, In) (Out, error)) {
	logger := logging.GetLoggerFromContext(r.Context())

	accountID, ok := caller(w, r)
	if !ok {
		return
	}

	var in In
	if err := httputil.DecodeJSON(r, &in); err != nil {
		logger.Warn("invalid "+kind+" request body", "error", err.Error())
		httputil.RespondMessage(w, httputil.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	if _, err := insert(r.Context(), accountID, in); err != nil {
		logger.Error("failed to create "+kind, "error", err.Error())
		httputil.RespondMessage(w, httputil.MsgError, http.StatusInternalServerError)
		return
	}

	httputil.RespondMessage(w, httputil.MsgSuccess, http.StatusOK)
}

func update[In any](w http.ResponseWriter, r *http.Request, kind string, apply func(context.Context, int64, int64, In) error) {
	logger := logging.GetLoggerFromContext(r.Context())

	accountID, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in In
	if err := httputil.DecodeJSON(r, &in); err != nil {
		logger.Warn("invalid "+kind+" request body", "error", err.Error())
		httputil.RespondMessage(w, httputil.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	respondMutation(w, r, kind, apply(r.Context(), id, accountID, in))
}

func remove(w http.ResponseWriter, r *http.Request, kind string, del func(context.Context, int64, int64) error) {
	accountID, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	respondMutation(w, r, kind, del(r.Context(), id, accountID))
}

// respondMutation maps an update or delete outcome. Zero affected rows is "Falha" with 200.
func respondMutation(w http.ResponseWriter, r *http.Request, kind string, err error) {
	switch {
	case err == nil:
		httputil.RespondMessage(w, httputil.MsgSuccess, http.StatusOK)
	case errors.Is(err, ErrNotFound):
		logging.GetLoggerFromContext(r.Context()).Info(kind + " not found for caller")
		httputil.RespondMessage(w, httputil.MsgNoRowsAffected, http.StatusOK)
	default:
		logging.GetLoggerFromContext(r.Context()).Error("failed to change "+kind, "error", err.Error())
		httputil.RespondMessage(w, httputil.MsgError, http.StatusInternalServerError)
	}
}
