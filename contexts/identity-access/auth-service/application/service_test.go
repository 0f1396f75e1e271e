package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	jwtadapter "cargotrail/contexts/identity-access/auth-service/adapters/jwt"
	"cargotrail/contexts/identity-access/auth-service/adapters/memory"
	"cargotrail/contexts/identity-access/auth-service/domain/entities"
	domainerrors "cargotrail/contexts/identity-access/auth-service/domain/errors"
	"cargotrail/contexts/identity-access/auth-service/ports"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestService(t *testing.T, now time.Time) (Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash secret: %v", err)
	}
	if _, err := store.CreateUser(context.Background(), entities.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         ports.RoleAdmin,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	codec, err := jwtadapter.NewCodec("test-secret", 24*time.Hour)
	if err != nil {
		t.Fatalf("build codec: %v", err)
	}
	return Service{
		Users:  store,
		Tokens: codec,
		Clock:  fixedClock{now: now},
	}, store
}

func TestAuthenticateIssuesVerifiableToken(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service, _ := newTestService(t, now)

	result, err := service.Authenticate(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.User.Username != "admin" || result.User.Role != ports.RoleAdmin {
		t.Fatalf("unexpected user payload: %+v", result.User)
	}
	if result.User.PasswordHash != "" {
		t.Fatal("password hash leaked into login result")
	}

	claims, err := service.VerifyBearer(context.Background(), "Bearer "+result.Token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Role != ports.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthenticateFailureIsGeneric(t *testing.T) {
	service, _ := newTestService(t, time.Now().UTC())

	_, unknownErr := service.Authenticate(context.Background(), "nobody", "admin123")
	_, wrongSecretErr := service.Authenticate(context.Background(), "admin", "wrong")

	if !errors.Is(unknownErr, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected invalid credentials, got %v", unknownErr)
	}
	if !errors.Is(wrongSecretErr, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("wrong secret: expected invalid credentials, got %v", wrongSecretErr)
	}
	if unknownErr.Error() != wrongSecretErr.Error() {
		t.Fatalf("error messages differ, identity existence leaks: %q vs %q",
			unknownErr.Error(), wrongSecretErr.Error())
	}
}

func TestVerifyBearerMissingToken(t *testing.T) {
	service, _ := newTestService(t, time.Now().UTC())

	for _, header := range []string{"", "Bearer", "Bearer ", "Token abc"} {
		if _, err := service.VerifyBearer(context.Background(), header); !errors.Is(err, domainerrors.ErrMissingToken) {
			t.Fatalf("header %q: expected missing token, got %v", header, err)
		}
	}
}

func TestVerifyBearerExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service, _ := newTestService(t, issuedAt)

	result, err := service.Authenticate(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	late := Service{
		Users:  service.Users,
		Tokens: service.Tokens,
		Clock:  fixedClock{now: issuedAt.Add(25 * time.Hour)},
	}
	if _, err := late.VerifyBearer(context.Background(), "Bearer "+result.Token); !errors.Is(err, domainerrors.ErrInvalidOrExpiredToken) {
		t.Fatalf("expected invalid or expired token, got %v", err)
	}
}

func TestVerifyBearerTamperedToken(t *testing.T) {
	now := time.Now().UTC()
	service, _ := newTestService(t, now)

	result, err := service.Authenticate(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	tampered := result.Token[:len(result.Token)-2] + "xx"
	if _, err := service.VerifyBearer(context.Background(), "Bearer "+tampered); !errors.Is(err, domainerrors.ErrInvalidOrExpiredToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestGuardDeletePolicy(t *testing.T) {
	guard := NewGuard()

	for _, op := range []Operation{
		OpSupplierDelete, OpWarehouseDelete, OpCustomerDelete, OpItemDelete,
		OpVehicleDelete, OpDriverDelete, OpShipmentDelete,
	} {
		if err := guard.Authorize(ports.Claims{UserID: 1, Role: ports.RoleAdmin}, op); err != nil {
			t.Fatalf("%s: admin should be allowed, got %v", op, err)
		}
		if err := guard.Authorize(ports.Claims{UserID: 2, Role: ports.RoleManager}, op); err != nil {
			t.Fatalf("%s: manager should be allowed, got %v", op, err)
		}
		if err := guard.Authorize(ports.Claims{UserID: 3, Role: ports.RoleDriver}, op); !errors.Is(err, domainerrors.ErrForbidden) {
			t.Fatalf("%s: driver should be forbidden, got %v", op, err)
		}
	}

	if err := guard.Authorize(ports.Claims{}, Operation("suppliers.list")); err != nil {
		t.Fatalf("ungated operation should be allowed, got %v", err)
	}
}
