package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/school-portal/internal/api/http"
	"github.com/spec-kit/school-portal/internal/api/http/handlers"
	"github.com/spec-kit/school-portal/internal/auth"
	"github.com/spec-kit/school-portal/internal/config"
	"github.com/spec-kit/school-portal/internal/events"
	"github.com/spec-kit/school-portal/internal/observability"
	"github.com/spec-kit/school-portal/internal/persistence"
	"github.com/spec-kit/school-portal/internal/repository"
	"github.com/spec-kit/school-portal/internal/service"
	"github.com/spec-kit/school-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var userRepo repository.UserRepository
	if pg.Enabled() {
		userRepo = repository.NewUserRepository(pg.PoolHandle())
	} else {
		userRepo = repository.NewMemoryUserRepository()
	}

	var verifier auth.CredentialVerifier
	switch cfg.Auth.CredentialMode {
	case config.CredentialModeStored:
		verifier = auth.NewStoredHashVerifier(userRepo)
	default:
		logger.Warn("fixed per-role secrets in use; set AUTH_CREDENTIAL_MODE=stored for per-user passwords")
		verifier = auth.NewFixedSecretVerifier(auth.RoleSecrets{
			Admin:   cfg.Auth.AdminSecret,
			Staff:   cfg.Auth.StaffSecret,
			Learner: cfg.Auth.LearnerSecret,
		})
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), cfg.App.Name)
	if err != nil {
		logger.Fatal("failed to init token manager", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	authService := service.NewAuthService(service.AuthDependencies{
		Verifier:   verifier,
		Tokens:     tokens,
		Limiter:    auth.NewRedisLimiter(redis.Cmdable(), cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow(), logger),
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(logger, metrics),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Auth: handlers.NewAuthHandler(authService, handlers.CookieSettings{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.App.IsProduction(),
			MaxAge: tokens.TTL(),
		}),
		Users:         handlers.NewUsersHandler(userService),
		Profiles:      handlers.NewProfileHandler(userRepo),
		Authenticator: auth.NewAuthenticator(tokens, cfg.Auth.CookieName, metrics),
		Gate:          auth.NewGate(metrics),
		Gatherer:      registry,
	})

	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
