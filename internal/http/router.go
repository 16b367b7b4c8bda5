package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/redmonkez12/fintrack/internal/account"
	"github.com/redmonkez12/fintrack/internal/auth"
	"github.com/redmonkez12/fintrack/internal/config"
	"github.com/redmonkez12/fintrack/internal/finance"
	"github.com/redmonkez12/fintrack/internal/httputil"
	"github.com/redmonkez12/fintrack/internal/logging"
	"github.com/redmonkez12/fintrack/internal/metrics"
)

// Handlers groups the endpoint handlers mounted by NewRouter
type Handlers struct {
	Auth     *auth.Handler
	Accounts *account.Handler
	Finance  *finance.Handler
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, h Handlers, authMiddleware *auth.Middleware, m *metrics.Metrics, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	r.Use(SecurityHeaders)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	if m != nil {
		r.Use(m.InstrumentHandler)
	}
	r.Use(middleware.Compress(5))

	r.Get("/health", handleHealth)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	if cfg.Server.IsDevelopment() {
		logger.Info("swagger UI enabled", "path", "/swagger/")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Post("/signup", h.Auth.Signup)
	r.Post("/login", h.Auth.Login)
	r.Post("/logout", h.Auth.Logout)
	r.Post("/recover-password", h.Auth.RecoverPassword)
	r.Put("/reset-password/{recoveryToken}", h.Auth.ResetPassword)
	r.Get("/verify-email/{code}", h.Auth.VerifyEmail)

	// Header or cookie credentials
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Get("/me", h.Auth.Me)
		r.Get("/users", h.Accounts.List)
		r.Get("/users/all", h.Accounts.List)
		h.Finance.Routes(r)
	})

	// Token as the first path segment
	if cfg.Server.LegacyPathTokens {
		r.Route("/user/{"+auth.PathTokenParam+"}", func(r chi.Router) {
			r.Use(authMiddleware.RequirePathToken)

			r.Get("/", h.Auth.Me)
			h.Finance.Routes(r)
		})
	}

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
