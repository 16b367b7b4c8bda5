package account

import (
	"net/http"

	"github.com/redmonkez12/fintrack/internal/httputil"
	"github.com/redmonkez12/fintrack/internal/logging"
)

// Handler serves account listings
type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List returns every account without password material
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Account
// @Failure      401 {string} string "Token não fornecido"
// @Failure      403 {string} string "Token inválido"
// @Failure      500 {string} string "Error"
// @Router       /users [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.repo.List(r.Context())
	if err != nil {
		logging.GetLoggerFromContext(r.Context()).Error("failed to list accounts", "error", err.Error())
		httputil.RespondMessage(w, httputil.MsgError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, accounts, http.StatusOK)
}
