package ports

import (
	"context"
	"time"

	"cargotrail/contexts/identity-access/auth-service/domain/entities"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleDriver  = "driver"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleDriver:
		return true
	default:
		return false
	}
}

type Clock interface {
	Now() time.Time
}

// Claims is the verified token payload. Only values decoded from a token
// whose signature and expiry checks passed may populate it.
type Claims struct {
	UserID uint
	Role   string
}

type TokenCodec interface {
	Issue(claims Claims, issuedAt time.Time) (string, error)
	Verify(raw string, now time.Time) (Claims, error)
}

type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (entities.User, bool, error)
	CreateUser(ctx context.Context, user entities.User) (entities.User, error)
}
