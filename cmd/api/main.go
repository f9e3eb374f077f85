package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/zencrm-backend/api/routes"
	"github.com/angelmondragon/zencrm-backend/internal/auth"
	"github.com/angelmondragon/zencrm-backend/internal/contacts"
	"github.com/angelmondragon/zencrm-backend/internal/dashboard"
	"github.com/angelmondragon/zencrm-backend/internal/deals"
	"github.com/angelmondragon/zencrm-backend/internal/interactions"
	"github.com/angelmondragon/zencrm-backend/internal/tasks"
	"github.com/angelmondragon/zencrm-backend/internal/users"
	"github.com/angelmondragon/zencrm-backend/pkg/config"
	"github.com/angelmondragon/zencrm-backend/pkg/db"
	"github.com/angelmondragon/zencrm-backend/pkg/logger"
	"github.com/angelmondragon/zencrm-backend/pkg/metrics"
	"github.com/angelmondragon/zencrm-backend/pkg/migrate"
	"github.com/angelmondragon/zencrm-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	userRepo := users.NewRepository(dbClient.DB())
	contactRepo := contacts.NewRepository(dbClient.DB())
	interactionRepo := interactions.NewRepository(dbClient.DB())
	taskRepo := tasks.NewRepository(dbClient.DB())
	dealRepo := deals.NewRepository(dbClient.DB())
	dashboardRepo := dashboard.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  userRepo,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	userService, err := users.NewService(userRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}

	contactService, err := contacts.NewService(contacts.ServiceParams{
		Repo: contactRepo,
		Tx:   dbClient,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	interactionService, err := interactions.NewService(interactions.ServiceParams{
		Repo:     interactionRepo,
		Contacts: contactRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create interaction service", err)
		os.Exit(1)
	}

	taskService, err := tasks.NewService(tasks.ServiceParams{
		Repo:     taskRepo,
		Contacts: contactRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create task service", err)
		os.Exit(1)
	}

	dealService, err := deals.NewService(deals.ServiceParams{
		Repo:     dealRepo,
		Contacts: contactRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create deal service", err)
		os.Exit(1)
	}

	dashboardService, err := dashboard.NewService(dashboardRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Dependencies{
			Config:           cfg,
			Logger:           logg,
			DB:               dbClient,
			Redis:            redisClient,
			HTTPMetrics:      httpMetrics,
			AuthService:      authService,
			RegisterService:  registerService,
			UserService:      userService,
			ContactService:   contactService,
			InteractionSvc:   interactionService,
			TaskService:      taskService,
			DealService:      dealService,
			DashboardService: dashboardService,
		}),
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
		logg.Info(ctx, "api server stopped")
	}
}
