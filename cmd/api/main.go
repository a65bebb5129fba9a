package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/riwi/jobboard-backend/api/routes"
	"github.com/riwi/jobboard-backend/internal/applications"
	"github.com/riwi/jobboard-backend/internal/auth"
	"github.com/riwi/jobboard-backend/internal/users"
	"github.com/riwi/jobboard-backend/internal/vacancies"
	"github.com/riwi/jobboard-backend/pkg/auth/session"
	"github.com/riwi/jobboard-backend/pkg/config"
	"github.com/riwi/jobboard-backend/pkg/db"
	"github.com/riwi/jobboard-backend/pkg/instance"
	"github.com/riwi/jobboard-backend/pkg/logger"
	"github.com/riwi/jobboard-backend/pkg/metrics"
	"github.com/riwi/jobboard-backend/pkg/migrate"
	"github.com/riwi/jobboard-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "jobboard-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "jobboard-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.Open(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Interface values stay untyped nil when Redis is disabled so the
	// middleware sees a missing store rather than a nil client.
	var (
		redisClient    *redis.Client
		redisStore     routes.RedisStore
		sessionChecker session.AccessSessionChecker
		sessionManager *session.Manager
	)
	if cfg.Redis.Enabled {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		sessionManager, err = session.NewManager(redisClient, cfg.JWT)
		if err != nil {
			logg.Error(context.Background(), "failed to create session manager", err)
			os.Exit(1)
		}
		redisStore = redisClient
		sessionChecker = sessionManager
	} else {
		logg.Warn(context.Background(), "redis disabled: sessions, idempotency and auth rate limits are off")
	}

	userRepo := users.NewRepository(dbClient.DB())

	authParams := auth.ServiceParams{
		UserRepo:  userRepo,
		JWTConfig: cfg.JWT,
		Logger:    logg,
	}
	registerParams := auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
		JWTConfig:      cfg.JWT,
		Logger:         logg,
	}
	if sessionManager != nil {
		authParams.SessionManager = sessionManager
		registerParams.SessionManager = sessionManager
	}

	authService, err := auth.NewService(authParams)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}
	registerService, err := auth.NewRegisterService(registerParams)
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	if cfg.App.SeedOnBoot {
		seeder, err := auth.NewSeeder(dbClient, cfg.Password, cfg.Seed, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create seeder", err)
			os.Exit(1)
		}
		if _, err := seeder.Seed(context.Background()); err != nil {
			logg.Error(context.Background(), "failed to seed staff accounts", err)
			os.Exit(1)
		}
	}

	registry := metrics.NewRegistry()

	vacancyService, err := vacancies.NewService(vacancies.NewRepository(dbClient.DB()), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create vacancy service", err)
		os.Exit(1)
	}
	applicationService, err := applications.NewService(applications.ServiceParams{
		Repo:    applications.NewRepository(dbClient.DB()),
		Tx:      dbClient,
		Metrics: metrics.NewApplicationMetrics(registry),
		Logger:  logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create application service", err)
		os.Exit(1)
	}
	userService, err := users.NewService(userRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisStore,
			sessionChecker,
			metrics.NewHTTPMetrics(registry),
			registry,
			authService,
			registerService,
			vacancyService,
			applicationService,
			userService,
		),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(ctx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	closeErr := server.Shutdown(shutdownCtx)
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if redisClient != nil {
		closeErr = multierr.Append(closeErr, redisClient.Close())
	}
	if closeErr != nil {
		logg.Error(context.Background(), "error during shutdown", closeErr)
		exitCode = 1
	}

	logg.Info(context.Background(), "api server stopped")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
