package token

import (
	"time"

	"food-order/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the caller identity: sub is the user id, role is
// "user" or "admin".
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256 tokens.
type Manager struct {
	secret []byte
	expiry time.Duration
}

func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Generate signs a token for the given user id and role.
func (m *Manager) Generate(userID, role string) (string, error) {
	if len(m.secret) == 0 {
		return "", apperr.New(apperr.KindInternal, "Server misconfiguration: JWT_SECRET not set")
	}

	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "Failed to sign token", err)
	}

	return signed, nil
}

// Verify parses and validates a token, returning its claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	if len(m.secret) == 0 {
		return nil, apperr.New(apperr.KindInternal, "Server misconfiguration: JWT_SECRET not set")
	}

	tok, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apperr.Newf(apperr.KindUnauthorized, "Unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		},
	)

	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnauthorized, "Invalid or expired token", err)
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, apperr.New(apperr.KindUnauthorized, "Invalid or expired token")
	}

	if claims.Role == "" {
		claims.Role = "user"
	}

	return claims, nil
}
