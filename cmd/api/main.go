package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/venturehub/venturehub-backend/api/routes"
	"github.com/venturehub/venturehub-backend/internal/adminops"
	"github.com/venturehub/venturehub-backend/internal/applications"
	"github.com/venturehub/venturehub-backend/internal/auth"
	"github.com/venturehub/venturehub-backend/internal/connections"
	"github.com/venturehub/venturehub-backend/internal/favorites"
	"github.com/venturehub/venturehub-backend/internal/investors"
	"github.com/venturehub/venturehub-backend/internal/manufacturers"
	"github.com/venturehub/venturehub-backend/internal/messages"
	"github.com/venturehub/venturehub-backend/internal/profiles"
	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/internal/users"
	"github.com/venturehub/venturehub-backend/pkg/auth/session"
	"github.com/venturehub/venturehub-backend/pkg/config"
	"github.com/venturehub/venturehub-backend/pkg/db"
	"github.com/venturehub/venturehub-backend/pkg/logger"
	"github.com/venturehub/venturehub-backend/pkg/metrics"
	"github.com/venturehub/venturehub-backend/pkg/migrate"
	"github.com/venturehub/venturehub-backend/pkg/redis"
)

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

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)
	lifecycle := metrics.NewLifecycleMetrics(promRegistry)

	userRepo := users.NewRepository(dbClient.DB())
	startupRepo := startups.NewRepository(dbClient.DB())
	investorRepo := investors.NewRepository(dbClient.DB())
	manufacturerRepo := manufacturers.NewRepository(dbClient.DB())
	applicationRepo := applications.NewRepository(dbClient.DB())
	connectionRepo := connections.NewRepository(dbClient.DB())
	favoriteRepo := favorites.NewRepository(dbClient.DB())
	messageRepo := messages.NewRepository(dbClient.DB())

	profilesService, err := profiles.NewService(profiles.ServiceParams{
		StartupRepo:      startupRepo,
		InvestorRepo:     investorRepo,
		ManufacturerRepo: manufacturerRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create profiles service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		Profiles:       profilesService,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
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

	startupService, err := startups.NewService(startups.ServiceParams{Repo: startupRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create startups service", err)
		os.Exit(1)
	}

	applicationService, err := applications.NewService(applications.ServiceParams{
		Repo:         applicationRepo,
		InvestorRepo: investorRepo,
		Lifecycle:    lifecycle,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create applications service", err)
		os.Exit(1)
	}

	connectionService, err := connections.NewService(connections.ServiceParams{
		Repo:        connectionRepo,
		StartupRepo: startupRepo,
		Lifecycle:   lifecycle,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create connections service", err)
		os.Exit(1)
	}

	favoriteService, err := favorites.NewService(favorites.ServiceParams{
		Repo:        favoriteRepo,
		StartupRepo: startupRepo,
		Lifecycle:   lifecycle,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create favorites service", err)
		os.Exit(1)
	}

	investorService, err := investors.NewService(investors.ServiceParams{Repo: investorRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create investors service", err)
		os.Exit(1)
	}

	manufacturerService, err := manufacturers.NewService(manufacturers.ServiceParams{Repo: manufacturerRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create manufacturers service", err)
		os.Exit(1)
	}

	messageService, err := messages.NewService(messages.ServiceParams{
		Repo:     messageRepo,
		UserRepo: userRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create messages service", err)
		os.Exit(1)
	}

	adminService, err := adminops.NewService(adminops.ServiceParams{
		Users:         userRepo,
		Startups:      startupRepo,
		Investors:     investorRepo,
		Manufacturers: manufacturerRepo,
		Applications:  applicationRepo,
		Connections:   connectionRepo,
		Favorites:     favoriteRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
		os.Exit(1)
	}

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
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, sessionManager, httpMetrics, promRegistry, routes.Services{
			Auth:          authService,
			Register:      registerService,
			Startups:      startupService,
			Applications:  applicationService,
			Connections:   connectionService,
			Favorites:     favoriteService,
			Investors:     investorService,
			Manufacturers: manufacturerService,
			Messages:      messageService,
			Admin:         adminService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
