package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/redmonkez12/fintrack/internal/httputil"
	"github.com/redmonkez12/fintrack/internal/logging"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const identityContextKey ContextKey = "identity"

// PathTokenParam is the chi URL parameter holding a token on legacy routes
const PathTokenParam = "token"

// Identity is the verified caller attached to the request context
type Identity struct {
	AccountID int64  `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// Middleware handles authentication for protected routes
type Middleware struct {
	tokenService TokenService
	cookieName   string
}

func NewMiddleware(tokenService TokenService, cookieName string) *Middleware {
	return &Middleware{tokenService: tokenService, cookieName: cookieName}
}

// RequireAuth validates the token from the Authorization header, falling back to the auth cookie.
// A missing token is 401; an invalid or expired one is 403.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.GetLoggerFromContext(r.Context())

		var token string

		// Priority 1: Authorization header
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			scheme, value, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(value) == "" {
				logger.Warn("malformed authorization header")
				httputil.RespondMessage(w, httputil.MsgInvalidToken, http.StatusForbidden)
				return
			}
			token = strings.TrimSpace(value)
		}

		// Priority 2: Cookie (fallback)
		if token == "" {
			cookieToken, err := GetTokenFromCookie(r, m.cookieName)
			if err != nil {
				httputil.RespondMessage(w, httputil.MsgMissingToken, http.StatusUnauthorized)
				return
			}
			token = cookieToken
		}

		claims, err := m.tokenService.VerifyToken(token)
		if err != nil {
			logger.Warn("token rejected", "error", err.Error())
			httputil.RespondMessage(w, httputil.MsgInvalidToken, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
	})
}

// RequirePathToken validates the token carried in the {token} path segment of legacy routes.
func (m *Middleware) RequirePathToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.tokenService.VerifyToken(chi.URLParam(r, PathTokenParam))
		if err != nil {
			logging.GetLoggerFromContext(r.Context()).Warn("path token rejected", "error", err.Error())
			httputil.RespondMessage(w, httputil.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
	})
}

func withIdentity(ctx context.Context, claims *TokenClaims) context.Context {
	return ContextWithIdentity(ctx, Identity{
		AccountID: claims.AccountID,
		Name:      claims.Name,
		Email:     claims.Email,
	})
}

// IdentityFromContext returns the identity attached by RequireAuth or RequirePathToken
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(Identity)
	return identity, ok
}

// ContextWithIdentity attaches an identity to ctx.
func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}
