package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	auth "cargotrail/contexts/identity-access/auth-service"
	jwtadapter "cargotrail/contexts/identity-access/auth-service/adapters/jwt"
	authpostgres "cargotrail/contexts/identity-access/auth-service/adapters/postgres"
	catalog "cargotrail/contexts/logistics/catalog-service"
	catalogpostgres "cargotrail/contexts/logistics/catalog-service/adapters/postgres"
	shipping "cargotrail/contexts/logistics/shipping-service"
	shippingpostgres "cargotrail/contexts/logistics/shipping-service/adapters/postgres"
	"cargotrail/internal/platform/config"
	"cargotrail/internal/platform/db"
	"cargotrail/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	codec, err := jwtadapter.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	authModule := auth.NewModule(auth.Dependencies{
		Users:        authpostgres.NewRepository(pg.DB, logger),
		Tokens:       codec,
		Clock:        authpostgres.SystemClock{},
		StoreTimeout: cfg.StoreTimeout,
		Logger:       logger,
	})

	catalogRepo := catalogpostgres.NewRepository(pg.DB, logger)
	catalogModule := catalog.NewModule(catalog.Dependencies{
		Repository:   catalogRepo,
		StoreTimeout: cfg.StoreTimeout,
		Logger:       logger,
	})

	shippingModule := shipping.NewModule(shipping.Dependencies{
		Repository:        shippingpostgres.NewRepository(pg.DB, logger),
		Catalog:           catalogRepo,
		StoreTimeout:      cfg.StoreTimeout,
		StrictTransitions: cfg.StrictStatusTransitions,
		Logger:            logger,
	})

	server := httpserver.New(authModule, catalogModule, shippingModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
