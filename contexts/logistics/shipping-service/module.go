package shipping

import (
	"log/slog"
	"time"

	httpadapter "cargotrail/contexts/logistics/shipping-service/adapters/http"
	"cargotrail/contexts/logistics/shipping-service/adapters/memory"
	"cargotrail/contexts/logistics/shipping-service/application"
	"cargotrail/contexts/logistics/shipping-service/ports"
)

// Module is the shipping-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository        ports.Repository
	Catalog           ports.CatalogRefs
	StoreTimeout      time.Duration
	StrictTransitions bool
	Logger            *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:              deps.Repository,
		Catalog:           deps.Catalog,
		Logger:            deps.Logger,
		StoreTimeout:      deps.StoreTimeout,
		StrictTransitions: deps.StrictTransitions,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with an in-memory
// store. Catalog references still come from deps so the caller can wire the
// catalog module's checker.
func NewInMemoryModule(catalog ports.CatalogRefs, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Catalog:    catalog,
		Logger:     logger,
	})
	module.Store = store
	return module
}
