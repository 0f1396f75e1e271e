package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cargotrail/contexts/identity-access/auth-service/domain/entities"
	domainerrors "cargotrail/contexts/identity-access/auth-service/domain/errors"
	"cargotrail/contexts/identity-access/auth-service/ports"
)

// LoginResult is returned on successful authentication. User.PasswordHash is
// cleared before the result leaves the service.
type LoginResult struct {
	Token string
	User  entities.User
}

type Service struct {
	Users        ports.UserRepository
	Tokens       ports.TokenCodec
	Clock        ports.Clock
	Logger       *slog.Logger
	StoreTimeout time.Duration
}

// Authenticate validates a username/secret pair and issues a bearer token
// binding the user id and role. The failure error is identical for unknown
// users and wrong secrets so callers cannot enumerate identities.
func (s Service) Authenticate(ctx context.Context, username string, secret string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || secret == "" {
		return LoginResult{}, domainerrors.ErrInvalidCredentials
	}

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	user, found, err := s.Users.GetUserByUsername(opCtx, username)
	if err != nil {
		return LoginResult{}, err
	}
	if !found {
		return LoginResult{}, domainerrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)) != nil {
		return LoginResult{}, domainerrors.ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(ports.Claims{UserID: user.ID, Role: user.Role}, s.now())
	if err != nil {
		return LoginResult{}, err
	}

	ResolveLogger(s.Logger).Info("user authenticated",
		"event", "auth_login_succeeded",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", user.ID,
		"role", user.Role,
	)

	user.PasswordHash = ""
	return LoginResult{Token: token, User: user}, nil
}

// VerifyBearer extracts and verifies the token from an Authorization header
// value. An absent or malformed header is a missing token; a present token
// that fails signature, expiry, or payload checks is invalid.
func (s Service) VerifyBearer(_ context.Context, authorization string) (ports.Claims, error) {
	raw := strings.TrimSpace(authorization)
	if raw == "" {
		return ports.Claims{}, domainerrors.ErrMissingToken
	}

	parts := strings.SplitN(raw, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ports.Claims{}, domainerrors.ErrMissingToken
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return ports.Claims{}, domainerrors.ErrMissingToken
	}

	claims, err := s.Tokens.Verify(token, s.now())
	if err != nil {
		return ports.Claims{}, domainerrors.ErrInvalidOrExpiredToken
	}
	if claims.UserID == 0 || !ports.IsValidRole(claims.Role) {
		return ports.Claims{}, domainerrors.ErrInvalidOrExpiredToken
	}
	return claims, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.StoreTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}
