package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"

	_ "github.com/redmonkez12/fintrack/docs" // Swagger docs (generated)
	"github.com/redmonkez12/fintrack/internal/account"
	"github.com/redmonkez12/fintrack/internal/auth"
	"github.com/redmonkez12/fintrack/internal/config"
	"github.com/redmonkez12/fintrack/internal/database"
	"github.com/redmonkez12/fintrack/internal/email"
	"github.com/redmonkez12/fintrack/internal/finance"
	httpServer "github.com/redmonkez12/fintrack/internal/http"
	"github.com/redmonkez12/fintrack/internal/jobs"
	"github.com/redmonkez12/fintrack/internal/logging"
	"github.com/redmonkez12/fintrack/internal/metrics"
)

// @title           Fintrack API
// @version         1.0
// @description     Personal finance backend: accounts, assets, expenses, income, price alerts and suggestions.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8081
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

const mailWorkers = 2

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
		"token_strategy", cfg.Auth.TokenStrategy,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, logger)
}

// serve wires the application and blocks until ctx is done or the server fails.
// Every return path cancels the background workers before waiting for them.
func serve(parent context.Context, cfg *config.Config, logger *logging.Logger) error {
	ctx, stop := context.WithCancel(parent)
	defer stop()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	tokenService, err := newTokenService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	mailer, err := email.NewService(cfg.Email, cfg.Auth.RecoveryCodeTTL, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize email service: %w", err)
	}

	// Background workers stop when ctx is cancelled
	var workers sync.WaitGroup
	defer func() {
		stop()
		workers.Wait()
	}()

	var queue email.Queue
	switch cfg.Email.Queue {
	case config.MailQueueRedis:
		redisClient, err := initRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis: %w", err)
		}
		defer func() {
			stop()
			workers.Wait()
			redisClient.Close()
		}()

		redisQueue := email.NewRedisQueue(redisClient, cfg.Email.QueueKey, mailer, logger)
		workers.Add(1)
		go func() {
			defer workers.Done()
			redisQueue.Run(ctx)
		}()
		queue = redisQueue
	default:
		inlineQueue := email.NewInlineQueue(mailer, 100, logger)
		workers.Add(1)
		go func() {
			defer workers.Done()
			inlineQueue.Run(ctx, mailWorkers)
		}()
		queue = inlineQueue
	}

	accountRepo := account.NewRepository(db)
	financeRepo := finance.NewRepository(db)

	authService := auth.NewService(
		accountRepo,
		tokenService,
		email.NewOutbox(queue),
		logger,
		cfg.Auth.TokenDuration,
		cfg.Auth.RecoveryCodeTTL,
	)

	m := metrics.New()

	scheduler := jobs.NewScheduler(logger, m)
	if err := scheduler.Add(jobs.RecoveryPurgeJob, cfg.Jobs.RecoveryPurgeSchedule, authService.PurgeExpiredRecoveryCodes); err != nil {
		return fmt.Errorf("failed to schedule jobs: %w", err)
	}
	scheduler.RunNow(jobs.RecoveryPurgeJob, authService.PurgeExpiredRecoveryCodes)
	scheduler.Start(ctx)

	router := httpServer.NewRouter(cfg, httpServer.Handlers{
		Auth: auth.NewHandler(authService, auth.CookieConfig{
			Name:     cfg.Auth.CookieName,
			Secure:   !cfg.Server.IsDevelopment(),
			Duration: cfg.Auth.TokenDuration,
		}),
		Accounts: account.NewHandler(accountRepo),
		Finance:  finance.NewHandler(financeRepo),
	}, auth.NewMiddleware(tokenService, cfg.Auth.CookieName), m, logger)

	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

func newTokenService(cfg config.AuthConfig) (auth.TokenService, error) {
	if cfg.TokenStrategy == config.TokenStrategyPaseto {
		return auth.NewPasetoService(cfg.Secret)
	}
	return auth.NewJWTService(cfg.Secret)
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
