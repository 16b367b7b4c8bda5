package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareRouter(t *testing.T) (http.Handler, TokenService) {
	t.Helper()
	tokens, err := NewJWTService(testKey)
	require.NoError(t, err)
	m := NewMiddleware(tokens, "token")

	echo := func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-Account", identity.Email)
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.With(m.RequireAuth).Get("/me", echo)
	r.With(m.RequirePathToken).Get("/user/{token}", echo)
	return r, tokens
}

func TestRequireAuth(t *testing.T) {
	router, tokens := newMiddlewareRouter(t)
	valid, err := tokens.CreateToken(1, "A", "a@x.com", time.Hour)
	require.NoError(t, err)
	expired, err := tokens.CreateToken(1, "A", "a@x.com", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
		wantBody   string
	}{
		{name: "bearer header", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "cookie fallback", cookie: valid, wantStatus: http.StatusOK},
		{name: "missing", wantStatus: http.StatusUnauthorized, wantBody: `"Token não fornecido"`},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusForbidden, wantBody: `"Token inválido"`},
		{name: "garbage", header: "Bearer nope", wantStatus: http.StatusForbidden, wantBody: `"Token inválido"`},
		{name: "wrong scheme", header: "Basic " + valid, wantStatus: http.StatusForbidden, wantBody: `"Token inválido"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				assert.Equal(t, "a@x.com", w.Header().Get("X-Account"))
			}
		})
	}
}

func TestRequirePathToken(t *testing.T) {
	router, tokens := newMiddlewareRouter(t)
	valid, err := tokens.CreateToken(1, "A", "a@x.com", time.Hour)
	require.NoError(t, err)
	expired, err := tokens.CreateToken(1, "A", "a@x.com", -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/"+valid, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", w.Header().Get("X-Account"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/"+expired, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `"Token inválido"`, w.Body.String())
}

func TestIdentityFromContextEmpty(t *testing.T) {
	_, ok := IdentityFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
