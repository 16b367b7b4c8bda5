package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/fintrack/internal/account"
	"github.com/redmonkez12/fintrack/internal/auth"
	"github.com/redmonkez12/fintrack/internal/config"
	"github.com/redmonkez12/fintrack/internal/database"
	"github.com/redmonkez12/fintrack/internal/finance"
	"github.com/redmonkez12/fintrack/internal/logging"
	"github.com/redmonkez12/fintrack/internal/metrics"
)

var testSecret = []byte("router-test-secret")

// mailbox keeps the last code mailed to each address
type mailbox struct {
	mu    sync.Mutex
	codes map[string]string
}

func (m *mailbox) SendVerificationEmail(_ context.Context, to, _, code string) error {
	return m.put("verify:"+to, code)
}

func (m *mailbox) SendPasswordResetEmail(_ context.Context, to, _, code string) error {
	return m.put("reset:"+to, code)
}

func (m *mailbox) put(key, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[key] = code
	return nil
}

func (m *mailbox) get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[key]
}

func newTestConfig(legacy bool) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Env:              "prod",
			TrustedOrigins:   []string{"http://localhost:3000"},
			LegacyPathTokens: legacy,
		},
		Auth: config.AuthConfig{
			TokenStrategy: config.TokenStrategyJWT,
			Secret:        testSecret,
			TokenDuration: time.Hour,
			CookieName:    "token",
		},
	}
}

func newTestRouter(t *testing.T, legacy bool) (http.Handler, *mailbox) {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db))

	cfg := newTestConfig(legacy)
	logger := logging.NewLogger(false)

	tokens, err := auth.NewJWTService(cfg.Auth.Secret)
	require.NoError(t, err)

	mail := &mailbox{codes: map[string]string{}}
	accounts := account.NewRepository(db)
	service := auth.NewService(accounts, tokens, mail, logger, cfg.Auth.TokenDuration, time.Hour)

	router := NewRouter(cfg, Handlers{
		Auth:     auth.NewHandler(service, auth.CookieConfig{Name: cfg.Auth.CookieName, Duration: cfg.Auth.TokenDuration}),
		Accounts: account.NewHandler(accounts),
		Finance:  finance.NewHandler(finance.NewRepository(db)),
	}, auth.NewMiddleware(tokens, cfg.Auth.CookieName), metrics.New(), logger)

	return router, mail
}

func send(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func signupAndLogin(t *testing.T, h http.Handler, name, email, password string) string {
	t.Helper()

	w := send(t, h, http.MethodPost, "/signup", `{"name":"`+name+`","email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `"Success"`, w.Body.String())

	w = send(t, h, http.MethodPost, "/login", `{"email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp auth.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestSignupLoginAndPathTokenIdentity(t *testing.T) {
	router, _ := newTestRouter(t, true)

	token := signupAndLogin(t, router, "A", "a@x.com", "p")

	w := send(t, router, http.MethodGet, "/user/"+token, "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var identity map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
	assert.Equal(t, "A", identity["name"])
	assert.Equal(t, "a@x.com", identity["email"])
	assert.NotZero(t, identity["userId"])

	w = send(t, router, http.MethodGet, "/me", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, w.Body.String(), send(t, router, http.MethodGet, "/user/"+token+"/", "", "").Body.String())
}

func TestDuplicateSignupAndBadLogin(t *testing.T) {
	router, _ := newTestRouter(t, true)
	signupAndLogin(t, router, "A", "a@x.com", "p")

	w := send(t, router, http.MethodPost, "/signup", `{"name":"A2","email":"a@x.com","password":"q"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `"Failed"`, w.Body.String())

	w = send(t, router, http.MethodPost, "/login", `{"email":"a@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `"Credenciais inválidas"`, w.Body.String())
}

func TestCrossAccountDeleteFails(t *testing.T) {
	router, _ := newTestRouter(t, true)
	tokenA := signupAndLogin(t, router, "A", "a@x.com", "p")
	tokenB := signupAndLogin(t, router, "B", "b@x.com", "q")

	w := send(t, router, http.MethodPost, "/user/"+tokenA+"/ativo", `{"nomeAtivo":"PETR4","quantidadeAtivos":10,"valorAtivo":35.5}`, "")
	require.JSONEq(t, `"Success"`, w.Body.String())

	var assets []finance.Asset
	require.NoError(t, json.Unmarshal(send(t, router, http.MethodGet, "/ativo", "", tokenA).Body.Bytes(), &assets))
	require.Len(t, assets, 1)
	id := assets[0].ID

	path := "/user/" + tokenB + "/ativo/" + jsonID(id)
	w = send(t, router, http.MethodDelete, path, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"Falha"`, w.Body.String())

	w = send(t, router, http.MethodDelete, "/ativo/"+jsonID(id), "", tokenA)
	assert.JSONEq(t, `"Success"`, w.Body.String())
}

func TestExpiredTokenIsRejectedEverywhere(t *testing.T) {
	router, _ := newTestRouter(t, true)
	token := signupAndLogin(t, router, "A", "a@x.com", "p")

	tokens, err := auth.NewJWTService(testSecret)
	require.NoError(t, err)
	expired, err := tokens.CreateToken(1, "A", "a@x.com", -time.Minute)
	require.NoError(t, err)

	type call struct{ method, path string }

	headerCalls := []call{
		{http.MethodGet, "/me"},
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/all"},
	}
	pathCalls := []call{{http.MethodGet, "/"}}
	for _, resource := range []string{"/ativo", "/gastos", "/renda", "/alerta", "/sugestoes"} {
		for _, c := range []call{
			{http.MethodGet, resource},
			{http.MethodPost, resource},
			{http.MethodPut, resource + "/1"},
			{http.MethodDelete, resource + "/1"},
		} {
			headerCalls = append(headerCalls, c)
			pathCalls = append(pathCalls, c)
		}
	}

	for _, c := range headerCalls {
		w := send(t, router, c.method, c.path, `{}`, expired)
		assert.Equal(t, http.StatusForbidden, w.Code, c.method+" "+c.path)
		assert.JSONEq(t, `"Token inválido"`, w.Body.String(), c.method+" "+c.path)
	}

	for _, c := range pathCalls {
		path := "/user/" + expired + c.path
		w := send(t, router, c.method, path, `{}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, c.method+" /user/{token}"+c.path)
		assert.JSONEq(t, `"Token inválido"`, w.Body.String(), c.method+" /user/{token}"+c.path)
	}

	// nothing was written under the expired identity
	w := send(t, router, http.MethodGet, "/ativo", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUsersRequireCredentials(t *testing.T) {
	router, _ := newTestRouter(t, true)
	token := signupAndLogin(t, router, "A", "a@x.com", "p")

	w := send(t, router, http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `"Token não fornecido"`, w.Body.String())

	for _, path := range []string{"/users", "/users/all"} {
		w = send(t, router, http.MethodGet, path, "", token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "a@x.com")
		assert.NotContains(t, w.Body.String(), "argon2id")
	}
}

func TestPasswordRecoveryAndEmailVerification(t *testing.T) {
	router, mail := newTestRouter(t, true)
	signupAndLogin(t, router, "A", "a@x.com", "p")

	w := send(t, router, http.MethodGet, "/verify-email/"+mail.get("verify:a@x.com"), "", "")
	assert.JSONEq(t, `"Success"`, w.Body.String())

	w = send(t, router, http.MethodPost, "/recover-password", `{"email":"nobody@x.com"}`, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `"Usuário não encontrado"`, w.Body.String())

	w = send(t, router, http.MethodPost, "/recover-password", `{"email":"a@x.com"}`, "")
	require.JSONEq(t, `"Success"`, w.Body.String())
	code := mail.get("reset:a@x.com")
	require.NotEmpty(t, code)

	w = send(t, router, http.MethodPut, "/reset-password/"+code, `{"password":"novaSenha"}`, "")
	require.JSONEq(t, `"Success"`, w.Body.String())

	w = send(t, router, http.MethodPut, "/reset-password/"+code, `{"password":"outra"}`, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `"Token inválido ou expirado"`, w.Body.String())

	w = send(t, router, http.MethodPost, "/login", `{"email":"a@x.com","password":"novaSenha"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLegacyRoutesCanBeDisabled(t *testing.T) {
	router, _ := newTestRouter(t, false)
	token := signupAndLogin(t, router, "A", "a@x.com", "p")

	w := send(t, router, http.MethodGet, "/user/"+token+"/ativo", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = send(t, router, http.MethodGet, "/ativo", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthMetricsAndHeaders(t *testing.T) {
	router, _ := newTestRouter(t, true)

	w := send(t, router, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"api is running"}`, w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	token := signupAndLogin(t, router, "A", "a@x.com", "p")
	send(t, router, http.MethodGet, "/user/"+token+"/ativo", "", "")

	w = send(t, router, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/user/{token}/ativo"`)
	assert.NotContains(t, w.Body.String(), token)

	// swagger is only mounted in development
	w = send(t, router, http.MethodGet, "/swagger/index.html", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
