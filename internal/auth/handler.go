package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/redmonkez12/fintrack/internal/account"
	"github.com/redmonkez12/fintrack/internal/httputil"
	"github.com/redmonkez12/fintrack/internal/logging"
)

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service *Service
	cookie  CookieConfig
}

func NewHandler(service *Service, cookie CookieConfig) *Handler {
	return &Handler{service: service, cookie: cookie}
}

// SignupRequest represents the signup request body
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the identity token
type LoginResponse struct {
	Token string `json:"token"`
}

// RecoverPasswordRequest represents the password recovery request
type RecoverPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest carries the new password; the code travels in the path
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// Signup handles account creation
// @Summary      Create an account
// @Description  Creates an account and sends a verification email. The response does not wait for mail delivery.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Account data"
// @Success      200 {string} string "Success"
// @Failure      400 {string} string "Requisição inválida"
// @Failure      409 {string} string "Failed"
// @Failure      500 {string} string "Error"
// @Router       /signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req SignupRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid signup request body", "error", err.Error())
		httputil.RespondMessage(w, httputil.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	newAccount, err := h.service.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrDuplicateEmail):
			logger.Warn("signup failed: email already exists")
			httputil.RespondMessage(w, httputil.MsgFailed, http.StatusConflict)
		case errors.Is(err, ErrMissingFields):
			logger.Warn("signup failed: missing fields")
			httputil.RespondMessage(w, httputil.MsgInvalidRequest, http.StatusBadRequest)
		default:
			logger.Error("signup failed: internal error", "error", err.Error())
			httputil.RespondMessage(w, httputil.MsgError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("account created", "account_id", newAccount.ID)
	httputil.RespondMessage(w, httputil.MsgSuccess, http.StatusOK)
}

// Login handles authentication
// @Summary      Log in
// @Description  Verifies credentials and returns an identity token, also set as an httpOnly cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} LoginResponse
// @Failure      400 {string} string "Requisição inválida"
// @Failure      401 {string} string "Credenciais inválidas"
// @Failure      500 {string} string "Error"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid login request body", "error", err.Error())
		httputil.RespondMessage(w, httputil.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	token, acc, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn("login failed: invalid credentials")
			httputil.RespondMessage(w, httputil.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		logger.Error("login failed: internal error", "error", err.Error())
		httputil.RespondMessage(w, httputil.MsgError, http.StatusInternalServerError)
		return
	}

	logger.Info("account logged in", "account_id", acc.ID)

	SetAuthCookie(w, h.cookie, token)
	httputil.RespondJSON(w, LoginResponse{Token: token}, http.StatusOK)
}

// Logout clears the auth cookie
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200 {string} string "Success"
// @Router       /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ClearAuthCookie(w, h.cookie)
	httputil.RespondMessage(w, httputil.MsgSuccess, http.StatusOK)
}

// Me returns the identity carried by the caller's token
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Identity
// @Failure      401 {string} string "Token não fornecido"
// @Failure      403 {string} string "Token inválido"
// @Router       /me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondMessage(w, httputil.MsgMissingToken, http.StatusUnauthorized)
		return
	}

	httputil.RespondJSON(w, identity, http.StatusOK)
}

// RecoverPassword starts password recovery
// @Summary      Request password recovery
// @Description  Stores a single-use recovery code and emails a reset link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RecoverPasswordRequest true "Account email"
// @Success      200 {string} string "Success"
// @Failure      400 {string} string "Requisição inválida"
// @Failure      404 {string} string "Usuário não encontrado"
// @Failure      500 {string} string "Error"
// @Router       /recover-password [post]
func (h *Handler) RecoverPassword(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req RecoverPasswordRequest
	if err := httputil.DecodeJSON(r, &req); err != nil || req.Email == "" {
		logger.Warn("invalid recover password request body")
		httputil.RespondMessage(w, httputil.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	if _, err := h.service.RequestPasswordRecovery(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, account.ErrNotFound):
			logger.Warn("password recovery for unknown email")
			httputil.RespondMessage(w, httputil.MsgAccountNotFound, http.StatusNotFound)
		case errors.Is(err, ErrMailDelivery):
			logger.Error("password recovery mail not queued", "error", err.Error())
			httputil.RespondMessage(w, httputil.MsgError, http.StatusInternalServerError)
		default:
			logger.Error("password recovery failed: internal error", "error", err.Error())
			httputil.RespondMessage(w, httputil.MsgError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("password recovery requested")
	httputil.RespondMessage(w, httputil.MsgSuccess, http.StatusOK)
}

// ResetPassword sets a new password using a recovery code
// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        recoveryToken path string true "Recovery code from the email"
// @Param        request body ResetPasswordRequest true "New password"
// @Success      200 {string} string "Success"
// @Failure      400 {string} string "Requisição inválida"
// @Failure      404 {string} string "Token inválido ou expirado"
// @Failure      500 {string} string "Error"
// @Router       /reset-password/{recoveryToken} [put]
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req ResetPasswordRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("invalid reset password request body", "error", err.Error())
		httputil.RespondMessage(w, httputil.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	err := h.service.ResetPassword(r.Context(), chi.URLParam(r, "recoveryToken"), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrNotFound):
			logger.Warn("password reset failed: invalid or expired code")
			httputil.RespondMessage(w, httputil.MsgInvalidOrExpiredCode, http.StatusNotFound)
		case errors.Is(err, ErrMissingFields):
			httputil.RespondMessage(w, httputil.MsgInvalidRequest, http.StatusBadRequest)
		default:
			logger.Error("password reset failed: internal error", "error", err.Error())
			httputil.RespondMessage(w, httputil.MsgError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("password reset")
	httputil.RespondMessage(w, httputil.MsgSuccess, http.StatusOK)
}

// VerifyEmail confirms an email address
// @Summary      Verify email address
// @Tags         auth
// @Produce      json
// @Param        code path string true "Verification code from the email"
// @Success      200 {string} string "Success"
// @Failure      404 {string} string "Token inválido ou expirado"
// @Failure      500 {string} string "Error"
// @Router       /verify-email/{code} [get]
func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	if err := h.service.VerifyEmail(r.Context(), chi.URLParam(r, "code")); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			logger.Warn("email verification failed: unknown code")
			httputil.RespondMessage(w, httputil.MsgInvalidOrExpiredCode, http.StatusNotFound)
			return
		}
		logger.Error("email verification failed: internal error", "error", err.Error())
		httputil.RespondMessage(w, httputil.MsgError, http.StatusInternalServerError)
		return
	}

	logger.Info("email verified")
	httputil.RespondMessage(w, httputil.MsgSuccess, http.StatusOK)
}
