package catalog

import (
	"log/slog"
	"time"

	httpadapter "cargotrail/contexts/logistics/catalog-service/adapters/http"
	"cargotrail/contexts/logistics/catalog-service/adapters/memory"
	"cargotrail/contexts/logistics/catalog-service/application"
	"cargotrail/contexts/logistics/catalog-service/ports"
)

// Module is the catalog-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Refs    ports.RefChecker
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository   ports.Repository
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:         deps.Repository,
		Logger:       deps.Logger,
		StoreTimeout: deps.StoreTimeout,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
		Refs:    deps.Repository,
	}
}

// NewInMemoryModule builds a development/testing module with an in-memory
// store.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
