package jwtadapter

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "cargotrail/contexts/identity-access/auth-service/domain/errors"
	"cargotrail/contexts/identity-access/auth-service/ports"
)

// Codec issues and verifies HMAC-signed bearer tokens carrying the user id
// and role. Tokens are bounded by a fixed TTL from issue time.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

func (c *Codec) Issue(claims ports.Claims, issuedAt time.Time) (string, error) {
	issuedAt = issuedAt.UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   claims.UserID,
		"role": claims.Role,
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(c.ttl).Unix(),
	})
	return token.SignedString(c.secret)
}

func (c *Codec) Verify(raw string, now time.Time) (ports.Claims, error) {
	parsed, err := jwt.Parse(raw,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now.UTC() }),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return ports.Claims{}, domainerrors.ErrInvalidOrExpiredToken
	}

	payload, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ports.Claims{}, domainerrors.ErrInvalidOrExpiredToken
	}
	id, idOK := payload["id"].(float64)
	role, roleOK := payload["role"].(string)
	if !idOK || !roleOK || id <= 0 {
		return ports.Claims{}, domainerrors.ErrInvalidOrExpiredToken
	}
	return ports.Claims{UserID: uint(id), Role: role}, nil
}
