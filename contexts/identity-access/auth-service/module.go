package auth

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	httpadapter "cargotrail/contexts/identity-access/auth-service/adapters/http"
	jwtadapter "cargotrail/contexts/identity-access/auth-service/adapters/jwt"
	"cargotrail/contexts/identity-access/auth-service/adapters/memory"
	"cargotrail/contexts/identity-access/auth-service/application"
	"cargotrail/contexts/identity-access/auth-service/domain/entities"
	"cargotrail/contexts/identity-access/auth-service/ports"
)

// Module is the auth-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Guard   application.Guard
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Users        ports.UserRepository
	Tokens       ports.TokenCodec
	Clock        ports.Clock
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Users:        deps.Users,
		Tokens:       deps.Tokens,
		Clock:        deps.Clock,
		Logger:       deps.Logger,
		StoreTimeout: deps.StoreTimeout,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
		Guard:   application.NewGuard(),
	}
}

// NewInMemoryModule builds a development/testing module with an in-memory
// credential store seeded with the three stock users.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := NewSeededStore()
	codec, _ := jwtadapter.NewCodec("cargotrail-dev-secret", 24*time.Hour)
	module := NewModule(Dependencies{
		Users:  store,
		Tokens: codec,
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}

// NewSeededStore returns an in-memory store with admin/manager/driver users.
// Secrets follow the stock "<username>123" convention.
func NewSeededStore() *memory.Store {
	store := memory.NewStore()
	for _, seed := range SeedUsers() {
		_, _ = store.CreateUser(context.Background(), seed)
	}
	return store
}

// SeedUsers returns the stock user records with bcrypt-hashed secrets.
func SeedUsers() []entities.User {
	users := make([]entities.User, 0, 3)
	for _, seed := range []struct {
		username string
		secret   string
		role     string
	}{
		{"admin", "admin123", ports.RoleAdmin},
		{"manager", "manager123", ports.RoleManager},
		{"driver", "driver123", ports.RoleDriver},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.secret), bcrypt.DefaultCost)
		if err != nil {
			continue
		}
		users = append(users, entities.User{
			Username:     seed.username,
			PasswordHash: string(hash),
			Role:         seed.role,
		})
	}
	return users
}
